package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search a shoe by code" }
func (*searchCmd) Usage() string {
	return `inv search <code>

  Displays the first shoe whose code is exactly <code> (case-sensitive).
  Exits with a failure status when no shoe matches.
`
}

func (*searchCmd) SetFlags(f *flag.FlagSet) {}

func (*searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: search expects exactly one shoe code.")
		return subcommands.ExitUsageError
	}
	s, ok := openSession()
	if !ok {
		return subcommands.ExitFailure
	}
	if !s.SearchCode(f.Arg(0)) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
