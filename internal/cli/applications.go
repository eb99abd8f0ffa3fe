package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/simp-lee/jobtracker/internal/domain"
)

var applicationSubcommands = map[string]func(context.Context, *Runner, []string) error{
	"list":   applicationsList,
	"get":    applicationsGet,
	"create": applicationsCreate,
	"update": applicationsUpdate,
	"delete": applicationsDelete,
}

func runApplications(ctx context.Context, r *Runner, args []string) error {
	return subcommand(ctx, r, "applications", args, applicationSubcommands)
}

func applicationsList(ctx context.Context, r *Runner, args []string) error {
	var q domain.JobApplicationQuery
	fs := newFlagSet(r, "applications list")
	fs.StringVar(&q.Search, "search", "", "match position title or company name")
	fs.Func("status", "filter by status ("+statusNames()+")", func(v string) error {
		s, err := domain.ParseApplicationStatus(v)
		if err != nil {
			return err
		}
		q.Status = &s
		return nil
	})
	fs.StringVar(&q.CompanyID, "company", "", "filter by company id")
	fs.Func("from", "applied on or after `yyyy-MM-dd`", dateFlag(&q.FromDate))
	fs.Func("to", "applied on or before `yyyy-MM-dd`", dateFlag(&q.ToDate))
	fs.IntVar(&q.PageNumber, "page", 0, "page number (backend default when 0)")
	fs.IntVar(&q.PageSize, "size", 0, "page size (backend default when 0)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	svc, err := r.Services()
	if err != nil {
		return err
	}
	page, err := svc.Applications.ListApplications(ctx, q)
	if err != nil {
		return err
	}
	if r.json {
		return writeJSON(r.io.Out, page)
	}
	if err := printApplications(r, page.Items); err != nil {
		return err
	}
	pageFooter(r.io.Out, page)
	return nil
}

func applicationsGet(ctx context.Context, r *Runner, args []string) error {
	id, rest, err := splitID("applications get", args)
	if err != nil {
		return err
	}
	if err := parseFlags(newFlagSet(r, "applications get"), rest); err != nil {
		return err
	}
	svc, err := r.Services()
	if err != nil {
		return err
	}
	a, err := svc.Applications.GetApplication(ctx, id)
	if err != nil {
		return err
	}
	return writeJSON(r.io.Out, a)
}

func applicationsCreate(ctx context.Context, r *Runner, args []string) error {
	var in domain.JobApplicationInput
	fs := newFlagSet(r, "applications create")
	applicationFlags(fs, &in)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	svc, err := r.Services()
	if err != nil {
		return err
	}
	a, err := svc.Applications.CreateApplication(ctx, in)
	if err != nil {
		return err
	}
	return writeJSON(r.io.Out, a)
}

// applicationsUpdate loads the application first; flags that are not given
// keep the stored values because an update replaces the whole record.
func applicationsUpdate(ctx context.Context, r *Runner, args []string) error {
	id, rest, err := splitID("applications update", args)
	if err != nil {
		return err
	}
	svc, err := r.Services()
	if err != nil {
		return err
	}
	current, err := svc.Applications.GetApplication(ctx, id)
	if err != nil {
		return err
	}

	in := domain.InputFromJobApplication(*current)
	fs := newFlagSet(r, "applications update")
	applicationFlags(fs, &in)
	if err := parseFlags(fs, rest); err != nil {
		return err
	}
	a, err := svc.Applications.UpdateApplication(ctx, id, in)
	if err != nil {
		return err
	}
	return writeJSON(r.io.Out, a)
}

func applicationsDelete(ctx context.Context, r *Runner, args []string) error {
	id, rest, err := splitID("applications delete", args)
	if err != nil {
		return err
	}
	fs := newFlagSet(r, "applications delete")
	yes := fs.Bool("yes", false, "delete without asking")
	if err := parseFlags(fs, rest); err != nil {
		return err
	}
	if err := r.confirmDelete(*yes, "job application "+id); err != nil {
		return err
	}
	svc, err := r.Services()
	if err != nil {
		return err
	}
	if err := svc.Applications.DeleteApplication(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(r.io.Out, "deleted job application %s\n", id)
	return nil
}

// applicationFlags binds the input fields; current values become the defaults.
func applicationFlags(fs *flag.FlagSet, in *domain.JobApplicationInput) {
	fs.StringVar(&in.CompanyID, "company", in.CompanyID, "company id (required)")
	fs.StringVar(&in.PositionTitle, "title", in.PositionTitle, "position title (required, at least 2 characters)")
	fs.Func("status", "status ("+statusNames()+"), default "+in.Status.String(), func(v string) error {
		s, err := domain.ParseApplicationStatus(v)
		if err != nil {
			return err
		}
		in.Status = s
		return nil
	})
	fs.StringVar(&in.AppliedDate, "applied", domain.ToDateInput(in.AppliedDate), "applied date `yyyy-MM-dd`")
	fs.StringVar(&in.ContactEmail, "email", in.ContactEmail, "contact email")
	fs.StringVar(&in.ContactPhone, "phone", in.ContactPhone, "contact phone")
	fs.StringVar(&in.Source, "source", in.Source, "where the position was found")
	fs.Func("priority", "priority 1-5, 0 clears it", func(v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid priority %q", v)
		}
		if n == 0 {
			in.Priority = nil
			return nil
		}
		in.Priority = &n
		return nil
	})
	fs.StringVar(&in.Notes, "notes", in.Notes, "free-form notes")
}

// dateFlag converts a yyyy-MM-dd flag into the ISO timestamp the backend
// filters on.
func dateFlag(target *string) func(string) error {
	return func(v string) error {
		iso, err := domain.FromDateInput(v)
		if err != nil {
			return err
		}
		*target = iso
		return nil
	}
}

func statusNames() string {
	all := domain.AllStatuses()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}

func printApplications(r *Runner, items []domain.JobApplication) error {
	rows := make([][]string, 0, len(items))
	for _, a := range items {
		rows = append(rows, []string{
			a.ID,
			a.PositionTitle,
			orDash(a.CompanyName),
			a.Status.String(),
			orDash(domain.ToDateInput(a.AppliedDate)),
			priorityText(a.Priority),
		})
	}
	return table(r.io.Out, []string{"ID", "POSITION", "COMPANY", "STATUS", "APPLIED", "PRIORITY"}, rows)
}
