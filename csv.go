package heredity

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
)

var csvColumns = []string{"name", "mother", "father", "trait"}

// ReadCSV loads a pedigree from CSV with a header naming the columns name,
// mother, father and trait (in any order; other columns are ignored). mother
// and father are blank for founders. trait is 1, 0, or blank when unknown.
//
// The result has not been validated; see Pedigree.Validate.
func ReadCSV(r io.Reader) (Pedigree, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, pfx.Err(err)
	}

	cols := make(map[string]int, len(header))
	for i, col := range header {
		cols[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, want := range csvColumns {
		if _, ok := cols[want]; !ok {
			return nil, pfx.Err(fmt.Errorf("CSV header %v has no %q column", header, want))
		}
	}

	pedigree := make(Pedigree)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}

		name := strings.TrimSpace(row[cols["name"]])
		if name == "" {
			line, _ := cr.FieldPos(0)
			return nil, pfx.Err(fmt.Errorf("line %d: empty name", line))
		}
		if _, dup := pedigree[name]; dup {
			return nil, pfx.Err(fmt.Errorf("%q appears more than once", name))
		}

		trait, err := parseEvidence(row[cols["trait"]])
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%q: %w", name, err))
		}

		pedigree[name] = Person{
			Name:   name,
			Mother: strings.TrimSpace(row[cols["mother"]]),
			Father: strings.TrimSpace(row[cols["father"]]),
			Trait:  trait,
		}
	}

	return pedigree, nil
}

func parseEvidence(field string) (Evidence, error) {
	switch strings.TrimSpace(field) {
	case "":
		return Unobserved, nil
	case "1":
		return Present, nil
	case "0":
		return Absent, nil
	}
	return Unobserved, fmt.Errorf("trait must be 1, 0 or blank, got %q", field)
}
