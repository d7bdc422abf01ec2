package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type addCmd struct {
	country  string
	code     string
	product  string
	cost     string
	quantity string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append a new shoe to the inventory file" }
func (*addCmd) Usage() string {
	return `inv add -country <country> -code <code> -product <name> -cost <cost> -q <quantity>

  Appends a new shoe line to the inventory file. The file is created with a
  header line if it does not exist.

Usage Examples:
$ inv add -country US -code A1 -product Runner -cost 59.99 -q 10
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.country, "country", "", "country of origin")
	f.StringVar(&c.code, "code", "", "shoe code")
	f.StringVar(&c.product, "product", "", "product name")
	f.StringVar(&c.cost, "cost", "", "cost of one pair, e.g. 59.99")
	f.StringVar(&c.quantity, "q", "", "quantity in stock")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.record()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	filename := InventoryFile()
	if err := inventory.AppendRecord(filename, r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended %v to %s\n", r, filename)
	return subcommands.ExitSuccess
}

// record builds the record from the flags.
func (c *addCmd) record() (*inventory.Record, error) {
	cost, err := parseCost(c.cost)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cost %q", inventory.ErrMalformedInput, c.cost)
	}
	quantity, err := inventory.ParseQuantity(c.quantity)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid quantity %q", inventory.ErrMalformedInput, c.quantity)
	}
	return inventory.NewRecord(c.country, c.code, c.product, cost, quantity), nil
}
