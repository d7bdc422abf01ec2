package inventory

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Load decodes the inventory file into s.
//
// A missing file returns an error matching ErrSourceNotFound and leaves s
// untouched.
func Load(filename string, s *Store) (int, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	}
	if err != nil {
		return 0, fmt.Errorf("could not open inventory file %q: %w", filename, err)
	}
	defer f.Close()

	n, err := Decode(f, s)
	if err != nil {
		return n, fmt.Errorf("could not decode inventory file %q: %w", filename, err)
	}
	return n, nil
}

// AppendRecord appends r as a new line at the end of the inventory file.
// The file is created with a header line if it does not exist yet.
func AppendRecord(filename string, r *Record) error {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open inventory file %q: %w", filename, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("could not stat inventory file %q: %w", filename, err)
	}
	if info.Size() == 0 {
		if _, err := io.WriteString(f, Header); err != nil {
			return fmt.Errorf("could not write header to inventory file %q: %w", filename, err)
		}
	}

	if err := EncodeRecord(f, r); err != nil {
		return fmt.Errorf("could not write to inventory file %q: %w", filename, err)
	}
	return f.Close()
}
