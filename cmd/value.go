package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type valueCmd struct{}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "display the stock value of each shoe" }
func (*valueCmd) Usage() string {
	return `inv [-currency <code>] value

  Displays cost, quantity and value (cost x quantity) of every shoe.
  The global -currency flag sets how costs and values are displayed.
`
}

func (*valueCmd) SetFlags(f *flag.FlagSet) {}

func (*valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, ok := openSession()
	if !ok {
		return subcommands.ExitFailure
	}
	if err := s.ValuePerItem(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
