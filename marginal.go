package heredity

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Marginal is one person's distribution over gene counts and over trait
// presence. During inference it holds unnormalized mass.
type Marginal struct {
	Gene [NumGeneCounts]float64

	// Trait is indexed by traitIndex: [0] is the trait absent, [1] present.
	Trait [2]float64
}

func traitIndex(hasTrait bool) int {
	if hasTrait {
		return 1
	}
	return 0
}

// TraitProbability returns the mass on the trait being present (or absent).
func (m *Marginal) TraitProbability(hasTrait bool) float64 {
	return m.Trait[traitIndex(hasTrait)]
}

func (m *Marginal) add(g GeneCount, hasTrait bool, p float64) {
	m.Gene[g] += p
	m.Trait[traitIndex(hasTrait)] += p
}

// Normalize rescales the gene and the trait distributions independently so
// that each sums to 1.
func (m *Marginal) Normalize() error {
	geneTotal := 0.0
	for _, p := range m.Gene {
		geneTotal += p
	}
	traitTotal := m.Trait[0] + m.Trait[1]

	if geneTotal == 0 || traitTotal == 0 {
		return ErrZeroMass
	}

	for g := range m.Gene {
		m.Gene[g] /= geneTotal
	}
	for i := range m.Trait {
		m.Trait[i] /= traitTotal
	}

	return nil
}

type marginalJSON struct {
	Gene  map[string]float64 `json:"gene"`
	Trait map[string]float64 `json:"trait"`
}

func (m *Marginal) MarshalJSON() ([]byte, error) {
	out := marginalJSON{
		Gene:  make(map[string]float64, NumGeneCounts),
		Trait: map[string]float64{"true": m.Trait[1], "false": m.Trait[0]},
	}
	for g, p := range m.Gene {
		out.Gene[GeneCount(g).String()] = p
	}
	return json.Marshal(out)
}

// Distributions holds a Marginal for every person, keyed by name.
type Distributions map[string]*Marginal

// Names returns the people in sorted order.
func (d Distributions) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize normalizes every person's distributions. The error names the
// first person, in sorted order, whose mass was zero.
func (d Distributions) Normalize() error {
	for _, name := range d.Names() {
		if err := d[name].Normalize(); err != nil {
			return fmt.Errorf("%w (person %q)", err, name)
		}
	}
	return nil
}
