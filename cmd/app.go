// Package cmd implements the CLI application to manage a shoe inventory.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("inventory-file", "", "Path to the inventory file. Defaults to $"+EnvInventoryFile+" or "+DefaultInventoryFile)
var currency = flag.String("currency", "", "Currency used to display costs (e.g. USD). Defaults to $"+EnvCurrency+", none for plain numbers")
var Verbose = flag.Bool("v", false, "verbose logging on stderr")

// DefaultInventoryFile is the inventory file used when neither the flag nor the environment set one.
const DefaultInventoryFile = "inventory.txt"

// commands holds every registered subcommand, builtins included.
var commands []subcommands.Command

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	register(c, c.HelpCommand(), "")
	register(c, c.FlagsCommand(), "")
	register(c, c.CommandsCommand(), "")

	register(c, &menuCmd{}, "inventory")
	register(c, &viewCmd{}, "inventory")
	register(c, &valueCmd{}, "inventory")
	register(c, &highestCmd{}, "inventory")
	register(c, &searchCmd{}, "inventory")

	register(c, &addCmd{}, "stock")
	register(c, &restockCmd{}, "stock")
}

func register(c *subcommands.Commander, cmd subcommands.Command, group string) {
	c.Register(cmd, group)
	commands = append(commands, cmd)
}

// IsCommand reports whether name is a registered subcommand.
func IsCommand(name string) bool {
	for _, c := range commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// InventoryFile returns the inventory file path, from the flag, the environment or the default.
func InventoryFile() string {
	if *inventoryFile != "" {
		return *inventoryFile
	}
	if f := os.Getenv(EnvInventoryFile); f != "" {
		return f
	}
	return DefaultInventoryFile
}

// Currency returns the display currency, from the flag or the environment.
func Currency() string {
	if *currency != "" {
		return *currency
	}
	return os.Getenv(EnvCurrency)
}

// IsVerbose returns true if verbose logging was requested by flag or environment.
func IsVerbose() bool {
	if *Verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// renderMarkdown renders md for the terminal, falling back to the raw markdown.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// openSession creates a session from the flags and loads the inventory file into it.
// Errors are reported on stderr.
func openSession() (*Session, bool) {
	s := newSessionFromFlags()
	if _, err := inventory.Load(s.file, s.store); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return nil, false
	}
	return s, true
}
