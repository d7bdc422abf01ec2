package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type restockCmd struct {
	add int64
}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "add stock to the shoe with the lowest quantity" }
func (*restockCmd) Usage() string {
	return `inv restock [-add <quantity>]

  Finds the shoe with the lowest quantity and adds stock to it. The updated
  shoe is appended as a new line to the inventory file.
  Without -add, asks for confirmation and quantity interactively.
`
}

func (c *restockCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.add, "add", -1, "quantity to add without asking")
}

func (c *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, ok := openSession()
	if !ok {
		return subcommands.ExitFailure
	}
	defer s.log.Sync()

	var err error
	if c.add < 0 {
		err = s.Restock()
	} else {
		err = s.RestockLowest(inventory.Quantity(c.add))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
