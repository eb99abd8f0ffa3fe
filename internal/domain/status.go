package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplicationStatus is the lifecycle stage of a job application. The ordinal
// values are part of the wire contract.
type ApplicationStatus int

const (
	StatusPlanned ApplicationStatus = iota
	StatusApplied
	StatusInterview
	StatusOffer
	StatusRejected
	StatusHired
)

var statusLabels = [...]string{
	StatusPlanned:   "Planned",
	StatusApplied:   "Applied",
	StatusInterview: "Interview",
	StatusOffer:     "Offer",
	StatusRejected:  "Rejected",
	StatusHired:     "Hired",
}

// AllStatuses returns every status in ordinal order.
func AllStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		StatusPlanned,
		StatusApplied,
		StatusInterview,
		StatusOffer,
		StatusRejected,
		StatusHired,
	}
}

// Valid reports whether s is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	return s >= StatusPlanned && s <= StatusHired
}

// String returns the human-readable label.
func (s ApplicationStatus) String() string {
	if !s.Valid() {
		return "Unknown(" + strconv.Itoa(int(s)) + ")"
	}
	return statusLabels[s]
}

// ParseApplicationStatus accepts a label (case-insensitive) or an ordinal.
func ParseApplicationStatus(v string) (ApplicationStatus, error) {
	v = strings.TrimSpace(v)
	if n, err := strconv.Atoi(v); err == nil {
		s := ApplicationStatus(n)
		if !s.Valid() {
			return 0, fmt.Errorf("unknown application status %d", n)
		}
		return s, nil
	}
	for _, s := range AllStatuses() {
		if strings.EqualFold(statusLabels[s], v) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown application status %q", v)
}
