// Package cli implements the jobtracker command line. Every command goes
// through the same cached services as the view server.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/simp-lee/logger"

	"github.com/simp-lee/jobtracker/internal/app"
	"github.com/simp-lee/jobtracker/internal/config"
	"github.com/simp-lee/jobtracker/internal/domain"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// IO bundles the streams a command reads from and writes to.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdIO returns the process streams.
func StdIO() IO {
	return IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// usageError reports a malformed command line.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

type command struct {
	summary string
	run     func(ctx context.Context, r *Runner, args []string) error
}

var commands = map[string]command{
	"dashboard":    {"show the dashboard overview", runDashboard},
	"companies":    {"list, show, create, update or delete companies", runCompanies},
	"applications": {"list, show, create, update or delete job applications", runApplications},
	"serve":        {"start the view server", runServe},
	"fake-backend": {"run an in-memory job-tracker backend", runFakeBackend},
}

// Runner carries the state shared by the commands of one invocation.
type Runner struct {
	io      IO
	cfg     *config.Config
	json    bool
	confirm Confirmer

	log      *logger.Logger
	services *app.Services
}

// Run parses args (without the program name), executes the command and
// returns the process exit code.
func Run(ctx context.Context, args []string, stdio IO) int {
	fs := flag.NewFlagSet("jobtracker", flag.ContinueOnError)
	fs.SetOutput(stdio.Err)
	configPath := fs.String("config", "", "path to YAML configuration file (optional)")
	jsonOut := fs.Bool("json", false, "print results as JSON")
	fs.Usage = func() { printUsage(stdio.Err, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return ExitUsage
	}
	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(stdio.Err, "unknown command %q\n\n", rest[0])
		fs.Usage()
		return ExitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stdio.Err, "error: %v\n", err)
		return ExitError
	}

	r := &Runner{
		io:      stdio,
		cfg:     cfg,
		json:    *jsonOut,
		confirm: NewTerminalConfirmer(stdio.In, stdio.Err),
	}
	defer r.close()

	return r.report(cmd.run(ctx, r, rest[1:]))
}

// Services builds the resource services on first use. Logs go to the error
// stream so command output stays clean.
func (r *Runner) Services() (*app.Services, error) {
	if r.services != nil {
		return r.services, nil
	}
	opts := append(config.BuildLoggerOpts(&r.cfg.Log), logger.WithConsoleWriter(r.io.Err))
	log, err := logger.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	services, err := app.NewServices(r.cfg, log.Logger)
	if err != nil {
		_ = log.Close()
		return nil, err
	}
	r.log = log
	r.services = services
	return services, nil
}

func (r *Runner) close() {
	if r.log != nil {
		if err := r.log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}
}

// report prints err the way users see failures: one line per message.
func (r *Runner) report(err error) int {
	if err == nil {
		return ExitOK
	}
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(r.io.Err, "usage: %s\n", ue.msg)
		return ExitUsage
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(r.io.Err, "error: interrupted")
		return ExitError
	}
	for _, msg := range domain.Messages(err) {
		fmt.Fprintf(r.io.Err, "error: %s\n", msg)
	}
	return ExitError
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: jobtracker [flags] <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-14s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}

// subcommand dispatches args[0] to one of subs.
func subcommand(ctx context.Context, r *Runner, group string, args []string, subs map[string]func(context.Context, *Runner, []string) error) error {
	names := make([]string, 0, len(subs))
	for name := range subs {
		names = append(names, name)
	}
	slices.Sort(names)
	if len(args) == 0 {
		return usagef("jobtracker %s {%s}", group, strings.Join(names, "|"))
	}
	run, ok := subs[args[0]]
	if !ok {
		return usagef("unknown %s command %q; want one of %s", group, args[0], strings.Join(names, ", "))
	}
	return run(ctx, r, args[1:])
}

// newFlagSet returns a flag set whose parse errors are usage errors.
func newFlagSet(r *Runner, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(r.io.Err)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usagef("jobtracker %s [flags]", fs.Name())
		}
		return usagef("%s: %v", fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return usagef("%s: unexpected arguments %v", fs.Name(), fs.Args())
	}
	return nil
}

// splitID takes the leading positional id so flags may follow it.
func splitID(name string, args []string) (string, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", nil, usagef("jobtracker %s <id> [flags]", name)
	}
	return args[0], args[1:], nil
}
