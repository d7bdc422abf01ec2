package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/subcommands"
	"go.uber.org/zap"
)

const menu = `********* MAIN MENU ********
1. Read Shoes Data From File
2. Capture Shoes
3. View All Shoes
4. Re-stock Shoes
5. Search Shoe
6. Value Per Item
7. Product With Highest Quantity
8. Exit
`

// Run drives the interactive menu until the user exits or the input ends.
// Operation errors are reported and never stop the loop.
func (s *Session) Run(ctx context.Context) error {
	operations := map[string]func() error{
		"1": s.Load,
		"2": s.Capture,
		"3": s.ViewAll,
		"4": s.Restock,
		"5": s.Search,
		"6": s.ValuePerItem,
		"7": s.Highest,
	}
	log := named(s.log, "menu")

	for ctx.Err() == nil {
		fmt.Fprint(s.out, menu)
		choice, err := s.in.Ask("Enter your choice (1-8): ")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		choice = strings.TrimSpace(choice)
		if choice == "8" {
			break
		}

		op, ok := operations[choice]
		if !ok {
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
			fmt.Fprintln(s.out)
			continue
		}
		log.Debug("menu choice", zap.String("choice", choice))
		if err := op(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			s.report(err)
		}
	}

	fmt.Fprintln(s.out, "Thank you for using the Shoe Inventory System. Goodbye!")
	return ctx.Err()
}

// Menu runs the interactive menu on the standard streams.
// It is the default action when no subcommand is given.
func Menu(ctx context.Context) subcommands.ExitStatus {
	return (&menuCmd{}).Execute(ctx, flag.CommandLine)
}

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive inventory menu" }
func (*menuCmd) Usage() string {
	return `inv menu

  Runs the interactive menu: read the inventory file, capture new shoes,
  view them, re-stock the lowest stocked shoe, search by code, and report
  value per item or the highest stocked shoe.
  This is the default when inv is called without a subcommand.
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (*menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := newSessionFromFlags()
	defer s.log.Sync()

	if err := s.Run(ctx); err != nil {
		s.report(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
