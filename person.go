package heredity

import (
	"fmt"
	"sort"
)

// Person is one member of a pedigree. Founders have neither Mother nor
// Father; everyone else has both.
type Person struct {
	Name   string
	Mother string
	Father string
	Trait  Evidence
}

// Founder reports whether the person has no recorded parents.
func (p Person) Founder() bool {
	return p.Mother == "" && p.Father == ""
}

// Pedigree maps each person's name to their record.
type Pedigree map[string]Person

// Names returns every name in the pedigree in sorted order.
func (p Pedigree) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the structural invariants of the pedigree: names match
// their keys, parents come in pairs and exist, and nobody is their own
// ancestor.
func (p Pedigree) Validate() error {
	for _, key := range p.Names() {
		person := p[key]
		if person.Name != "" && person.Name != key {
			return fmt.Errorf("%w: record %q is stored under %q", ErrMalformedPedigree, person.Name, key)
		}
		if person.Trait > Present {
			return fmt.Errorf("%w: %q has unknown trait evidence %d", ErrMalformedPedigree, key, person.Trait)
		}
		if (person.Mother == "") != (person.Father == "") {
			return fmt.Errorf("%w: %q has only one parent", ErrMalformedPedigree, key)
		}
		for _, parent := range []string{person.Mother, person.Father} {
			if parent == "" {
				continue
			}
			if _, exists := p[parent]; !exists {
				return fmt.Errorf("%w: parent %q of %q is not in the pedigree", ErrMalformedPedigree, parent, key)
			}
		}
		if !person.Founder() && person.Mother == person.Father {
			return fmt.Errorf("%w: %q has the same person as mother and father", ErrMalformedPedigree, key)
		}
	}

	return p.checkAcyclic()
}

const (
	unvisited = iota
	visiting
	visited
)

func (p Pedigree) checkAcyclic() error {
	state := make(map[string]int, len(p))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visiting:
			return fmt.Errorf("%w: %q is their own ancestor", ErrMalformedPedigree, name)
		case visited:
			return nil
		}
		state[name] = visiting
		person := p[name]
		if !person.Founder() {
			if err := visit(person.Mother); err != nil {
				return err
			}
			if err := visit(person.Father); err != nil {
				return err
			}
		}
		state[name] = visited
		return nil
	}

	for _, name := range p.Names() {
		if err := visit(name); err != nil {
			return err
		}
	}

	return nil
}

// family is a validated pedigree indexed by position in sorted name order,
// so that sets of people can be represented as bitmasks.
type family struct {
	names  []string
	index  map[string]int
	mother []int // -1 for founders
	father []int

	// Bitmasks of people observed with and without the trait
	observed uint64
	present  uint64
}

func newFamily(p Pedigree) *family {
	names := p.Names()
	f := &family{
		names:  names,
		index:  make(map[string]int, len(names)),
		mother: make([]int, len(names)),
		father: make([]int, len(names)),
	}
	for i, name := range names {
		f.index[name] = i
	}
	for i, name := range names {
		person := p[name]
		f.mother[i], f.father[i] = -1, -1
		if !person.Founder() {
			f.mother[i] = f.index[person.Mother]
			f.father[i] = f.index[person.Father]
		}
		if hasTrait, known := person.Trait.Observed(); known {
			f.observed |= 1 << uint(i)
			if hasTrait {
				f.present |= 1 << uint(i)
			}
		}
	}

	return f
}

func (f *family) size() int {
	return len(f.names)
}

func (f *family) founder(i int) bool {
	return f.mother[i] < 0
}

// consistent reports whether haveTrait agrees with every observation.
func (f *family) consistent(haveTrait uint64) bool {
	return haveTrait&f.observed == f.present
}

// mask converts a list of names to a bitmask.
func (f *family) mask(names []string) (uint64, error) {
	var m uint64
	for _, name := range names {
		i, ok := f.index[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownPerson, name)
		}
		m |= 1 << uint(i)
	}
	return m, nil
}

// assign expands a (oneGene, twoGenes) pair of bitmasks into a gene count per
// person. The masks must be disjoint.
func (f *family) assign(genes []GeneCount, oneGene, twoGenes uint64) {
	for i := range genes {
		bit := uint64(1) << uint(i)
		switch {
		case twoGenes&bit != 0:
			genes[i] = Two
		case oneGene&bit != 0:
			genes[i] = One
		default:
			genes[i] = Zero
		}
	}
}

func (f *family) namesIn(mask uint64) []string {
	var names []string
	for i, name := range f.names {
		if mask&(1<<uint(i)) != 0 {
			names = append(names, name)
		}
	}
	return names
}
