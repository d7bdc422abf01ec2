package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type highestCmd struct{}

func (*highestCmd) Name() string     { return "highest" }
func (*highestCmd) Synopsis() string { return "display the shoe with the highest quantity" }
func (*highestCmd) Usage() string {
	return `inv highest

  Displays the shoe with the highest quantity. On a tie, the first one in the
  inventory file wins.
`
}

func (*highestCmd) SetFlags(f *flag.FlagSet) {}

func (*highestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, ok := openSession()
	if !ok {
		return subcommands.ExitFailure
	}
	if err := s.Highest(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
