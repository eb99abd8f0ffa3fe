package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/simp-lee/jobtracker/internal/domain"
)

var companySubcommands = map[string]func(context.Context, *Runner, []string) error{
	"list":    companiesList,
	"options": companiesOptions,
	"get":     companiesGet,
	"create":  companiesCreate,
	"update":  companiesUpdate,
	"delete":  companiesDelete,
}

func runCompanies(ctx context.Context, r *Runner, args []string) error {
	return subcommand(ctx, r, "companies", args, companySubcommands)
}

func companiesList(ctx context.Context, r *Runner, args []string) error {
	var q domain.CompanyQuery
	fs := newFlagSet(r, "companies list")
	fs.StringVar(&q.Search, "search", "", "match name or other text")
	fs.StringVar(&q.City, "city", "", "filter by city")
	fs.StringVar(&q.Country, "country", "", "filter by country")
	fs.StringVar(&q.Industry, "industry", "", "filter by industry")
	fs.IntVar(&q.PageNumber, "page", 0, "page number (backend default when 0)")
	fs.IntVar(&q.PageSize, "size", 0, "page size (backend default when 0)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	svc, err := r.Services()
	if err != nil {
		return err
	}
	page, err := svc.Companies.ListCompanies(ctx, q)
	if err != nil {
		return err
	}
	if r.json {
		return writeJSON(r.io.Out, page)
	}
	if err := printCompanies(r, page.Items); err != nil {
		return err
	}
	pageFooter(r.io.Out, page)
	return nil
}

func companiesOptions(ctx context.Context, r *Runner, args []string) error {
	if err := parseFlags(newFlagSet(r, "companies options"), args); err != nil {
		return err
	}
	svc, err := r.Services()
	if err != nil {
		return err
	}
	items, err := svc.Companies.CompanyOptions(ctx)
	if err != nil {
		return err
	}
	if r.json {
		return writeJSON(r.io.Out, items)
	}
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		rows = append(rows, []string{c.ID, c.Name})
	}
	return table(r.io.Out, []string{"ID", "NAME"}, rows)
}

func companiesGet(ctx context.Context, r *Runner, args []string) error {
	id, rest, err := splitID("companies get", args)
	if err != nil {
		return err
	}
	if err := parseFlags(newFlagSet(r, "companies get"), rest); err != nil {
		return err
	}
	svc, err := r.Services()
	if err != nil {
		return err
	}
	c, err := svc.Companies.GetCompany(ctx, id)
	if err != nil {
		return err
	}
	return writeJSON(r.io.Out, c)
}

func companiesCreate(ctx context.Context, r *Runner, args []string) error {
	var in domain.CompanyInput
	fs := newFlagSet(r, "companies create")
	companyFlags(fs, &in)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	svc, err := r.Services()
	if err != nil {
		return err
	}
	c, err := svc.Companies.CreateCompany(ctx, in)
	if err != nil {
		return err
	}
	return writeJSON(r.io.Out, c)
}

// companiesUpdate loads the company first; flags that are not given keep the
// stored values because an update replaces the whole record.
func companiesUpdate(ctx context.Context, r *Runner, args []string) error {
	id, rest, err := splitID("companies update", args)
	if err != nil {
		return err
	}
	svc, err := r.Services()
	if err != nil {
		return err
	}
	current, err := svc.Companies.GetCompany(ctx, id)
	if err != nil {
		return err
	}

	in := domain.InputFromCompany(*current)
	fs := newFlagSet(r, "companies update")
	companyFlags(fs, &in)
	if err := parseFlags(fs, rest); err != nil {
		return err
	}
	c, err := svc.Companies.UpdateCompany(ctx, id, in)
	if err != nil {
		return err
	}
	return writeJSON(r.io.Out, c)
}

func companiesDelete(ctx context.Context, r *Runner, args []string) error {
	id, rest, err := splitID("companies delete", args)
	if err != nil {
		return err
	}
	fs := newFlagSet(r, "companies delete")
	yes := fs.Bool("yes", false, "delete without asking")
	if err := parseFlags(fs, rest); err != nil {
		return err
	}
	if err := r.confirmDelete(*yes, "company "+id); err != nil {
		return err
	}
	svc, err := r.Services()
	if err != nil {
		return err
	}
	if err := svc.Companies.DeleteCompany(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(r.io.Out, "deleted company %s\n", id)
	return nil
}

// companyFlags binds the input fields; current values become the defaults.
func companyFlags(fs *flag.FlagSet, in *domain.CompanyInput) {
	fs.StringVar(&in.Name, "name", in.Name, "company name (required, at most 100 characters)")
	fs.StringVar(&in.OrgNumber, "org", in.OrgNumber, "organisation number")
	fs.StringVar(&in.City, "city", in.City, "city")
	fs.StringVar(&in.Country, "country", in.Country, "country")
	fs.StringVar(&in.Industry, "industry", in.Industry, "industry")
	fs.StringVar(&in.WebsiteURL, "website", in.WebsiteURL, "website URL")
	fs.StringVar(&in.Notes, "notes", in.Notes, "free-form notes")
}

func printCompanies(r *Runner, items []domain.Company) error {
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		rows = append(rows, []string{c.ID, c.Name, orDash(c.City), orDash(c.Country), orDash(c.Industry)})
	}
	return table(r.io.Out, []string{"ID", "NAME", "CITY", "COUNTRY", "INDUSTRY"}, rows)
}
