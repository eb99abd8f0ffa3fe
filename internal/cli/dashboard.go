package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/simp-lee/jobtracker/internal/module/dashboard"
)

func runDashboard(ctx context.Context, r *Runner, args []string) error {
	if err := parseFlags(newFlagSet(r, "dashboard"), args); err != nil {
		return err
	}
	svc, err := r.Services()
	if err != nil {
		return err
	}
	o, err := svc.Dashboard.Overview(ctx)
	if err != nil {
		return err
	}

	v := dashboard.BuildView(*o)
	if r.json {
		return writeJSON(r.io.Out, v)
	}

	w := r.io.Out
	fmt.Fprintf(w, "Companies:     %d\n", v.TotalCompanies)
	fmt.Fprintf(w, "Applications:  %d\n", v.TotalApplications)
	fmt.Fprintf(w, "Avg/company:   %s\n\n", v.AverageApplicationsPerCompany)

	rows := make([][]string, 0, len(v.StatusBuckets))
	for _, b := range v.StatusBuckets {
		rows = append(rows, []string{b.Label, strconv.Itoa(b.Count)})
	}
	if err := table(w, []string{"STATUS", "COUNT"}, rows); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nRecent applications:")
	if len(v.RecentApplications) == 0 {
		fmt.Fprintln(w, "  none")
	} else if err := printApplications(r, v.RecentApplications); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nTop companies:")
	if len(v.TopCompanies) == 0 {
		fmt.Fprintln(w, "  none")
		return nil
	}
	rows = rows[:0]
	for _, c := range v.TopCompanies {
		rows = append(rows, []string{c.CompanyName, strconv.Itoa(c.ApplicationsCount)})
	}
	return table(w, []string{"COMPANY", "APPLICATIONS"}, rows)
}
