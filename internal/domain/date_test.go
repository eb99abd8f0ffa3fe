package domain

import "testing"

func TestToDateInput(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-03-05T00:00:00Z", "2024-03-05"},
		{"2024-03-05T13:45:10.123+02:00", "2024-03-05"},
		{"2024-03-05T13:45:10", "2024-03-05"},
		{"2024-03-05", "2024-03-05"},
		{"", ""},
		{"not a date", ""},
	}
	for _, tt := range tests {
		if got := ToDateInput(tt.in); got != tt.want {
			t.Errorf("ToDateInput(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromDateInput(t *testing.T) {
	got, err := FromDateInput("2024-03-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-03-05T00:00:00Z" {
		t.Errorf("FromDateInput() = %q", got)
	}

	if got, err := FromDateInput("  "); err != nil || got != "" {
		t.Errorf("FromDateInput(blank) = %q, %v", got, err)
	}
	if _, err := FromDateInput("05/03/2024"); err == nil {
		t.Error("expected error for wrong layout")
	}
}

func TestJobApplicationInput_NormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: " 2024-03-01 ", want: "2024-03-01T00:00:00Z"},
		{in: "2024-03-01T08:15:00", want: "2024-03-01T00:00:00Z"},
		{in: "2024-03-01T08:15:00+02:00", want: "2024-03-01T08:15:00+02:00"},
		{in: "yesterday", want: "yesterday"},
	}
	for _, tt := range tests {
		in := JobApplicationInput{AppliedDate: tt.in}
		in.Normalize()
		if in.AppliedDate != tt.want {
			t.Errorf("Normalize(%q) = %q; want %q", tt.in, in.AppliedDate, tt.want)
		}
	}
}
