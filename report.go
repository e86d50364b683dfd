package heredity

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Format selects how distributions are rendered.
type Format int

const (
	FormatText Format = iota
	FormatTable
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatTable:
		return "table"
	case FormatJSON:
		return "json"

	default:
		return "Illegal selection"
	}
}

// ParseFormat accepts text, table or json.
func ParseFormat(s string) (Format, error) {
	for _, f := range []Format{FormatText, FormatTable, FormatJSON} {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return FormatText, fmt.Errorf("unknown format %q: expected text, table or json", s)
}

// Write renders d in the given format.
func Write(w io.Writer, d Distributions, f Format) error {
	switch f {
	case FormatTable:
		return WriteTable(w, d)
	case FormatJSON:
		return WriteJSON(w, d)
	}
	return WriteText(w, d)
}

// WriteText prints each person's distributions, one value per line with four
// decimals, gene counts from 2 down to 0 and the trait present before absent.
func WriteText(w io.Writer, d Distributions) error {
	var sb strings.Builder
	for _, name := range d.Names() {
		m := d[name]
		fmt.Fprintf(&sb, "%s:\n", name)
		sb.WriteString("  Gene:\n")
		for g := NumGeneCounts - 1; g >= 0; g-- {
			fmt.Fprintf(&sb, "    %s: %.4f\n", GeneCount(g), m.Gene[g])
		}
		sb.WriteString("  Trait:\n")
		fmt.Fprintf(&sb, "    True: %.4f\n", m.TraitProbability(true))
		fmt.Fprintf(&sb, "    False: %.4f\n", m.TraitProbability(false))
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// WriteTable prints one row per person.
func WriteTable(w io.Writer, d Distributions) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Person", "P(0)", "P(1)", "P(2)", "P(trait)"})
	for _, name := range d.Names() {
		m := d[name]
		tw.AppendRow(table.Row{
			name,
			fmt.Sprintf("%.4f", m.Gene[Zero]),
			fmt.Sprintf("%.4f", m.Gene[One]),
			fmt.Sprintf("%.4f", m.Gene[Two]),
			fmt.Sprintf("%.4f", m.TraitProbability(true)),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	if _, err := io.WriteString(w, tw.Render()+"\n"); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// WriteJSON prints d as a JSON object keyed by person.
func WriteJSON(w io.Writer, d Distributions) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return pfx.Err(err)
	}
	return nil
}
