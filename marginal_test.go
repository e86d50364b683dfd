package heredity

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestMarginalNormalize(t *testing.T) {
	m := &Marginal{
		Gene:  [NumGeneCounts]float64{2, 1, 1},
		Trait: [2]float64{3, 1},
	}
	if err := m.Normalize(); err != nil {
		t.Fatal(err)
	}

	if expected := [NumGeneCounts]float64{0.5, 0.25, 0.25}; m.Gene != expected {
		t.Errorf("Got %v, expected %v", m.Gene, expected)
	}
	if m.TraitProbability(true) != 0.25 || m.TraitProbability(false) != 0.75 {
		t.Errorf("Got %v, expected [0.75 0.25]", m.Trait)
	}
}

func TestMarginalNormalizeZeroMass(t *testing.T) {
	m := &Marginal{Trait: [2]float64{1, 0}}
	if err := m.Normalize(); !errors.Is(err, ErrZeroMass) {
		t.Errorf("Got %v, expected ErrZeroMass", err)
	}
	for _, p := range append(m.Gene[:], m.Trait[:]...) {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			t.Errorf("Normalize left %v behind", m)
		}
	}

	d := Distributions{
		"A": {Gene: [NumGeneCounts]float64{1, 0, 0}, Trait: [2]float64{1, 0}},
		"B": {},
	}
	if err := d.Normalize(); !errors.Is(err, ErrZeroMass) {
		t.Errorf("Got %v, expected ErrZeroMass", err)
	}
}

func TestMarginalJSON(t *testing.T) {
	m := &Marginal{
		Gene:  [NumGeneCounts]float64{0.5, 0.25, 0.25},
		Trait: [2]float64{0.75, 0.25},
	}
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}

	expected := `{"gene":{"0":0.5,"1":0.25,"2":0.25},"trait":{"false":0.75,"true":0.25}}`
	if string(b) != expected {
		t.Errorf("Got %s, expected %s", b, expected)
	}
}
