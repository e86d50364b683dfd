package heredity

import (
	"fmt"
	"io"
	"math"

	"github.com/carbocation/pfx"
	"gopkg.in/yaml.v3"
)

// Table holds the parameters of the inheritance model. It is passed by value
// into an Engine and never modified afterwards.
type Table struct {
	// Gene is the unconditional prior over gene counts, used for founders.
	Gene [NumGeneCounts]float64

	// Trait is P(trait=true | gene count). The complement is used for people
	// without the trait.
	Trait [NumGeneCounts]float64

	// Mutation is the probability that a copy passed from parent to child
	// flips state.
	Mutation float64
}

// DefaultTable returns the standard parameters of the model.
func DefaultTable() Table {
	return Table{
		Gene:     [NumGeneCounts]float64{Zero: 0.96, One: 0.03, Two: 0.01},
		Trait:    [NumGeneCounts]float64{Zero: 0.01, One: 0.56, Two: 0.65},
		Mutation: 0.01,
	}
}

const tableTolerance = 1e-9

// Validate checks that every entry is a probability and that the gene prior
// sums to 1.
func (t Table) Validate() error {
	sum := 0.0
	for g, p := range t.Gene {
		if !isProbability(p) {
			return fmt.Errorf("%w: gene prior for %s copies is %v", ErrInvalidTable, GeneCount(g), p)
		}
		sum += p
	}
	if math.Abs(sum-1) > tableTolerance {
		return fmt.Errorf("%w: gene prior sums to %v, expected 1", ErrInvalidTable, sum)
	}

	for g, p := range t.Trait {
		if !isProbability(p) {
			return fmt.Errorf("%w: trait probability for %s copies is %v", ErrInvalidTable, GeneCount(g), p)
		}
	}

	if !isProbability(t.Mutation) {
		return fmt.Errorf("%w: mutation probability is %v", ErrInvalidTable, t.Mutation)
	}

	return nil
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}

// traitGiven is P(hasTrait | g).
func (t Table) traitGiven(g GeneCount, hasTrait bool) float64 {
	if hasTrait {
		return t.Trait[g]
	}
	return 1 - t.Trait[g]
}

type parentPair struct {
	father, mother GeneCount
}

// Inheritance returns the distribution of a child's gene count given the gene
// counts of both parents. A parent with 0 copies passes the gene with
// probability m, one with 2 copies with probability 1-m, and one with a single
// copy with probability exactly 0.5.
func (t Table) Inheritance(father, mother GeneCount) [NumGeneCounts]float64 {
	m := t.Mutation
	k := 1 - m

	switch (parentPair{father, mother}) {
	case parentPair{Zero, Zero}:
		return [NumGeneCounts]float64{k * k, 2 * m * k, m * m}
	case parentPair{One, One}:
		return [NumGeneCounts]float64{0.25, 0.5, 0.25}
	case parentPair{Two, Two}:
		return [NumGeneCounts]float64{m * m, 2 * m * k, k * k}
	case parentPair{Zero, One}, parentPair{One, Zero}:
		return [NumGeneCounts]float64{0.5 * k, 0.5, 0.5 * m}
	case parentPair{Zero, Two}, parentPair{Two, Zero}:
		return [NumGeneCounts]float64{m * k, k*k + m*m, m * k}
	case parentPair{One, Two}, parentPair{Two, One}:
		return [NumGeneCounts]float64{0.5 * m, 0.5, 0.5 * k}
	}

	// Only reachable with an out of range GeneCount
	return [NumGeneCounts]float64{}
}

// yamlTable is the on-disk form of a Table. Maps are keyed by gene count so
// that files read the same way the model is usually written down.
type yamlTable struct {
	Gene     map[int]float64 `yaml:"gene"`
	Trait    map[int]float64 `yaml:"trait"`
	Mutation *float64        `yaml:"mutation"`
}

// LoadTable reads a YAML probability table, e.g.:
//
//	gene: {0: 0.96, 1: 0.03, 2: 0.01}
//	trait: {0: 0.01, 1: 0.56, 2: 0.65}
//	mutation: 0.01
//
// Every gene count must be present in both maps.
func LoadTable(r io.Reader) (Table, error) {
	var raw yamlTable
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return Table{}, pfx.Err(err)
	}

	var t Table
	for g := 0; g < NumGeneCounts; g++ {
		p, ok := raw.Gene[g]
		if !ok {
			return Table{}, fmt.Errorf("%w: gene prior for %d copies is missing", ErrInvalidTable, g)
		}
		t.Gene[g] = p

		p, ok = raw.Trait[g]
		if !ok {
			return Table{}, fmt.Errorf("%w: trait probability for %d copies is missing", ErrInvalidTable, g)
		}
		t.Trait[g] = p
	}
	if len(raw.Gene) != NumGeneCounts || len(raw.Trait) != NumGeneCounts {
		return Table{}, fmt.Errorf("%w: only gene counts 0, 1 and 2 are allowed", ErrInvalidTable)
	}

	if raw.Mutation == nil {
		return Table{}, fmt.Errorf("%w: mutation probability is missing", ErrInvalidTable)
	}
	t.Mutation = *raw.Mutation

	if err := t.Validate(); err != nil {
		return Table{}, err
	}

	return t, nil
}
