package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/renderer"
	"go.uber.org/zap"
)

var errEmptyInventory = errors.New("no shoes in the inventory, read the inventory file first")

// Session is the application controller: it owns the store for the lifetime of
// the process and runs every inventory operation against it.
type Session struct {
	store    *inventory.Store
	file     string
	currency string

	in       *prompter
	out      io.Writer
	markdown func(string) string // renders markdown for out
	log      *zap.Logger
}

// NewSession creates a session with an empty store, backed by file.
func NewSession(file, currency string, in io.Reader, out io.Writer, log *zap.Logger) *Session {
	return &Session{
		store:    inventory.NewStore(),
		file:     file,
		currency: currency,
		in:       newPrompter(in, out),
		out:      out,
		markdown: renderMarkdown,
		log:      named(log, "session"),
	}
}

// newSessionFromFlags creates a session on the standard streams, configured by the global flags.
func newSessionFromFlags() *Session {
	return NewSession(InventoryFile(), Currency(), os.Stdin, os.Stdout, newLogger(IsVerbose()))
}

// Store returns the session store.
func (s *Session) Store() *inventory.Store { return s.store }

// Load reads the inventory file into the store.
func (s *Session) Load() error {
	log := named(s.log, "loader")
	n, err := inventory.Load(s.file, s.store)
	log.Debug("inventory file decoded", zap.String("file", s.file), zap.Int("records", n), zap.Error(err))
	if err != nil {
		if n > 0 {
			fmt.Fprintf(s.out, "%d shoes read before the error.\n", n)
		}
		return err
	}
	fmt.Fprintf(s.out, "%d shoes read from %s.\n\n", n, s.file)
	return nil
}

// Capture asks the user for every field of a new record and appends it to the store.
func (s *Session) Capture() error {
	country, err := s.in.Ask("Enter the country of origin: ")
	if err != nil {
		return err
	}
	code, err := s.in.Ask("Enter the shoe code: ")
	if err != nil {
		return err
	}
	product, err := s.in.Ask("Enter the shoe product name: ")
	if err != nil {
		return err
	}
	cost, err := askParsed(s.in, "Enter the cost of the shoe: ", parseCost)
	if err != nil {
		return err
	}
	quantity, err := askParsed(s.in, "Enter the quantity of shoes: ", inventory.ParseQuantity)
	if err != nil {
		return err
	}

	s.store.Append(inventory.NewRecord(country, code, product, cost, quantity))
	fmt.Fprintln(s.out, "Shoe added successfully!")
	fmt.Fprintln(s.out)
	return nil
}

// ViewAll prints every record as a table.
func (s *Session) ViewAll() error {
	fmt.Fprint(s.out, s.markdown(renderer.RenderView(renderer.NewInventory(s.store, s.currency))))
	fmt.Fprintln(s.out)
	return nil
}

// Restock offers to add stock to the record with the lowest quantity.
func (s *Session) Restock() error {
	r, ok := s.store.Lowest()
	if !ok {
		return errEmptyInventory
	}
	fmt.Fprintf(s.out, "%v needs to be re-stocked.\n\n", r)

	choice, err := s.in.Ask("Do you want to add more shoes to the stock? (Y/N) ")
	if err != nil {
		return err
	}
	if strings.ToUpper(strings.TrimSpace(choice)) != "Y" {
		return nil
	}

	add, err := askParsed(s.in, fmt.Sprintf("Enter the quantity of %s to add: ", r.Product), parseRestockQuantity)
	if err != nil {
		return err
	}
	return s.restock(r, add)
}

// RestockLowest adds quantity to the record with the lowest quantity without asking.
func (s *Session) RestockLowest(add inventory.Quantity) error {
	r, ok := s.store.Lowest()
	if !ok {
		return errEmptyInventory
	}
	fmt.Fprintf(s.out, "%v needs to be re-stocked.\n\n", r)
	return s.restock(r, add)
}

func (s *Session) restock(r *inventory.Record, add inventory.Quantity) error {
	before := r.Quantity
	if err := inventory.Restock(s.file, r, add); err != nil {
		return err
	}
	named(s.log, "restock").Info("stock updated",
		zap.String("code", r.Code),
		zap.Stringer("from", before),
		zap.Stringer("to", r.Quantity),
	)
	fmt.Fprintln(s.out, "Stock updated successfully!")
	fmt.Fprintln(s.out)
	return nil
}

// Search asks for a code and prints the first matching record.
func (s *Session) Search() error {
	code, err := s.in.Ask("Enter the shoe code to search: ")
	if err != nil {
		return err
	}
	s.SearchCode(code)
	return nil
}

// SearchCode prints the first record with code, and reports whether there was one.
func (s *Session) SearchCode(code string) bool {
	r, ok := s.store.Find(code)
	if !ok {
		fmt.Fprintln(s.out, "Shoe not found!")
		fmt.Fprintln(s.out)
		return false
	}
	fmt.Fprintf(s.out, "Shoe details: %v\n\n", r)
	return true
}

// ValuePerItem prints the stock value of every record.
func (s *Session) ValuePerItem() error {
	fmt.Fprint(s.out, s.markdown(renderer.RenderValue(renderer.NewInventory(s.store, s.currency))))
	fmt.Fprintln(s.out)
	return nil
}

// Highest prints the record with the highest quantity.
func (s *Session) Highest() error {
	r, ok := s.store.Highest()
	if !ok {
		return errEmptyInventory
	}
	fmt.Fprintf(s.out, "The product with highest quantity is %v\n\n", r)
	return nil
}

// report prints a user-facing message for err.
func (s *Session) report(err error) {
	s.log.Debug("operation failed", zap.Error(err))
	switch {
	case errors.Is(err, inventory.ErrSourceNotFound):
		fmt.Fprintf(s.out, "File not found! (%s)\n\n", s.file)
	case errors.Is(err, inventory.ErrMalformedRecord):
		fmt.Fprintf(s.out, "Invalid data in the file! %v\n\n", err)
	case errors.Is(err, inventory.ErrMalformedInput):
		fmt.Fprintf(s.out, "Invalid input, operation cancelled: %v\n\n", err)
	case errors.Is(err, errEmptyInventory):
		fmt.Fprintf(s.out, "%v.\n\n", capitalize(err.Error()))
	default:
		fmt.Fprintf(s.out, "Error: %v\n\n", err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
