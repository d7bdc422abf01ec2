package inventory

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRecord(t *testing.T) {
	testCases := []struct {
		line    string
		want    *Record
		wantErr bool
	}{
		{line: "US,A1,Runner,59.99,10", want: rec("US", "A1", "Runner", 59.99, 10)},
		{line: "  South Korea,SKU90000,Air Jordan,2.5,4\r\n", want: rec("South Korea", "SKU90000", "Air Jordan", 2.5, 4)},
		{line: "US,A1,Runner, 59.99 , 10", want: rec("US", "A1", "Runner", 59.99, 10)},
		{line: "US,A1,Runner,abc,10", wantErr: true},
		{line: "US,A1,Runner,59.99,ten", wantErr: true},
		{line: "US,A1,Runner,59.99,1.5", wantErr: true},
		{line: "US,A1,Runner,59.99", wantErr: true},
		{line: "US,A1,Runner,59.99,10,extra", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseRecord(tc.line)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseRecord(%q) error = %v, wantErr %v", tc.line, err, tc.wantErr)
			continue
		}
		if diff := cmp.Diff(tc.want, got, moneyEqual); diff != "" {
			t.Errorf("ParseRecord(%q) mismatch (-want +got):\n%s", tc.line, diff)
		}
	}
}

func TestDecode(t *testing.T) {
	input := `Country,Code,Product,Cost,Quantity
South Africa,SKU44386,Air Max 90,2300,20
China,SKU90000,Jordan 1,3200,50

Vietnam,SKU63221,Blazer,1700,19`

	s := NewStore()
	n, err := Decode(strings.NewReader(input), s)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Decode() = %d records, want 3", n)
	}
	want := []*Record{
		rec("South Africa", "SKU44386", "Air Max 90", 2300, 20),
		rec("China", "SKU90000", "Jordan 1", 3200, 50),
		rec("Vietnam", "SKU63221", "Blazer", 1700, 19),
	}
	if diff := cmp.Diff(want, records(s), moneyEqual); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_HeaderIsNotValidated(t *testing.T) {
	s := NewStore()
	n, err := Decode(strings.NewReader("US,A1,Runner,59.99,10\nUS,B1,Trail,20,2"), s)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if n != 1 || s.Len() != 1 {
		t.Errorf("Decode() = %d records (store %d), want the first line dropped", n, s.Len())
	}
}

func TestDecode_Empty(t *testing.T) {
	s := NewStore()
	n, err := Decode(strings.NewReader(""), s)
	if err != nil || n != 0 {
		t.Errorf("Decode(\"\") = %d, %v, want 0, nil", n, err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	input := `Country,Code,Product,Cost,Quantity
US,A1,Runner,59.99,10
US,B1,Trail,20,2
US,C1,Broken,x,3
US,D1,Never,1,1`

	s := NewStore()
	n, err := Decode(strings.NewReader(input), s)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("Decode() error = %v, want ErrMalformedRecord", err)
	}
	var merr *MalformedRecordError
	if !errors.As(err, &merr) {
		t.Fatalf("Decode() error = %T, want *MalformedRecordError", err)
	}
	if merr.Line != 4 {
		t.Errorf("MalformedRecordError.Line = %d, want 4", merr.Line)
	}
	if n != 2 || s.Len() != 2 {
		t.Errorf("Decode() kept %d records (store %d), want 2", n, s.Len())
	}
	if _, ok := s.Find("D1"); ok {
		t.Errorf("Decode() read past the malformed line")
	}
}

func TestEncodeRecord(t *testing.T) {
	var b strings.Builder
	if err := EncodeRecord(&b, rec("US", "A1", "Runner", 59.99, 8)); err != nil {
		t.Fatalf("EncodeRecord() failed: %v", err)
	}
	if got, want := b.String(), "\nUS,A1,Runner,59.99,8"; got != want {
		t.Errorf("EncodeRecord() = %q, want %q", got, want)
	}
}

func TestDecode_LineTooLong(t *testing.T) {
	input := "Country,Code,Product,Cost,Quantity\nUS,A1,Runner,59.99,10\n" +
		strings.Repeat("x", 70000) + "\nUS,C1,Court,1,1"

	s := NewStore()
	n, err := Decode(strings.NewReader(input), s)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("Decode() error = %v, want ErrMalformedRecord", err)
	}
	var merr *MalformedRecordError
	if !errors.As(err, &merr) || merr.Line != 3 {
		t.Errorf("Decode() error = %v, want a malformed line 3", err)
	}
	if n != 1 || s.Len() != 1 {
		t.Errorf("Decode() kept %d records (store %d), want 1", n, s.Len())
	}
}
