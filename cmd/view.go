package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type viewCmd struct{}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "display all the shoes in the inventory" }
func (*viewCmd) Usage() string {
	return `inv view

  Displays every shoe of the inventory file in file order.
`
}

func (*viewCmd) SetFlags(f *flag.FlagSet) {}

func (*viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, ok := openSession()
	if !ok {
		return subcommands.ExitFailure
	}
	if err := s.ViewAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
