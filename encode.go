package inventory

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Separator is the field delimiter of the inventory file.
const Separator = ","

// Header is the first line written to a new inventory file.
const Header = "Country,Code,Product,Cost,Quantity"

const fieldCount = 5

// ParseRecord parses a single inventory line "country,code,product,cost,quantity".
func ParseRecord(line string) (*Record, error) {
	fields := strings.Split(strings.TrimSpace(line), Separator)
	if len(fields) != fieldCount {
		return nil, fmt.Errorf("expected %d fields, got %d", fieldCount, len(fields))
	}
	cost, err := ParseMoney(strings.TrimSpace(fields[3]), "")
	if err != nil {
		return nil, fmt.Errorf("invalid cost %q: %w", fields[3], err)
	}
	quantity, err := ParseQuantity(strings.TrimSpace(fields[4]))
	if err != nil {
		return nil, fmt.Errorf("invalid quantity %q: %w", fields[4], err)
	}
	return NewRecord(fields[0], fields[1], fields[2], cost, quantity), nil
}

// Decode reads an inventory stream and appends every record to s.
//
// The first line is a header and is always discarded. Decoding stops at the
// first malformed line: records decoded before it stay in s. It returns the
// number of records appended.
func Decode(r io.Reader, s *Store) (int, error) {
	scanner := bufio.NewScanner(r)
	n, lineNo := 0, 1
	if !scanner.Scan() {
		return 0, tooLong(scanner.Err(), lineNo)
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue // restock lines are written with a leading newline
		}
		rec, err := ParseRecord(line)
		if err != nil {
			return n, &MalformedRecordError{Line: lineNo, Text: line, Err: err}
		}
		s.Append(rec)
		n++
	}
	return n, tooLong(scanner.Err(), lineNo+1)
}

// tooLong reports a line exceeding the scanner buffer as a malformed record.
func tooLong(err error, lineNo int) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return &MalformedRecordError{Line: lineNo, Err: err}
	}
	return err
}

// EncodeRecord writes r as a new inventory line, prefixed with a newline.
func EncodeRecord(w io.Writer, r *Record) error {
	_, err := fmt.Fprintf(w, "\n%s", strings.Join([]string{
		r.Country,
		r.Code,
		r.Product,
		r.Cost.Text(),
		r.Quantity.String(),
	}, Separator))
	return err
}
