package primesum

import (
	"fmt"
	"io"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/logging"
)

// Command is the CLI entry point that prints the sum of the primes below Bound.
type Command struct {
	// Bound is the exclusive upper limit; zero means DefaultBound.
	Bound   int64 `flag:"bound,b" env:"PRIMESUM_BOUND" desc:"exclusive upper limit below which primes are summed (default 2000000)"`
	Verbose bool  `flag:"verbose,v" env:"PRIMESUM_VERBOSE" desc:"list every summed prime on the error output"`

	// Logger is injected; it defaults to a logger writing to STDERR.
	Logger *logging.Logger
	// Producer is injected; it defaults to a fresh primekit.Producer.
	Producer func() iterkit.PullIter[int64]
}

func (cmd Command) Summary() string {
	return "sum of all primes strictly below the bound"
}

func (cmd Command) ServeCLI(w cli.Response, r *cli.Request) {
	var (
		ctx    = r.Context()
		stderr = errOut(w)
	)

	d := Driver{
		Bound:    cmd.bound(),
		Producer: cmd.Producer,
		Logger:   cmd.logger(),
	}
	if cmd.Verbose {
		d.Visit = func(prime int64) {
			fmt.Fprintf(stderr, "%d, ", prime)
		}
	}

	sum, err := d.Sum(ctx)
	if cmd.Verbose {
		fmt.Fprintln(stderr)
	}
	if err != nil {
		d.Logger.Fatal(ctx, "prime summing failed",
			logging.Field("bound", d.Bound),
			logging.ErrField(err))
		w.ExitCode(cli.ExitCodeError)
		fmt.Fprintln(stderr, err.Error())
		return
	}

	fmt.Fprintln(w, sum)
}

func (cmd Command) bound() int64 {
	if cmd.Bound == 0 {
		return DefaultBound
	}
	return cmd.Bound
}

var stderrLogger = &logging.Logger{Out: os.Stderr}

func (cmd Command) logger() *logging.Logger {
	if cmd.Logger != nil {
		return cmd.Logger
	}
	return stderrLogger
}

func errOut(w cli.Response) io.Writer {
	if ew, ok := w.(cli.ErrorWriter); ok {
		if o := ew.Stderr(); o != nil {
			return o
		}
	}
	return io.Discard
}
