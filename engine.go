package heredity

import (
	"context"
	"fmt"
)

const (
	// DefaultMaxPeople bounds the population Infer will enumerate unless
	// overridden with WithMaxPeople. The work grows as 6^n.
	DefaultMaxPeople = 20

	// maxPeopleLimit is the most people a uint64 mask can address while
	// leaving the subset walk free of overflow.
	maxPeopleLimit = 62
)

// Engine performs exact inference over a pedigree by enumerating every gene
// and trait assignment. An Engine is immutable and safe for concurrent use.
type Engine struct {
	table     Table
	maxPeople int
}

// Option configures an Engine.
type Option func(*Engine) error

// WithMaxPeople sets the largest pedigree the engine will accept.
func WithMaxPeople(n int) Option {
	return func(e *Engine) error {
		if n < 1 || n > maxPeopleLimit {
			return fmt.Errorf("max people must be between 1 and %d, got %d", maxPeopleLimit, n)
		}
		e.maxPeople = n
		return nil
	}
}

// New returns an Engine for the given probability table.
func New(table Table, opts ...Option) (*Engine, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		table:     table,
		maxPeople: DefaultMaxPeople,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Table returns the probability table the engine was built with.
func (e *Engine) Table() Table {
	return e.table
}

func (e *Engine) index(p Pedigree) (*family, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(p) > e.maxPeople {
		return nil, fmt.Errorf("%w: %d people, limit is %d", ErrPedigreeTooLarge, len(p), e.maxPeople)
	}
	return newFamily(p), nil
}

// Infer computes the normalized gene and trait distributions of every person
// in the pedigree, conditioned on the observed traits.
//
// Every trait assignment that agrees with the evidence is combined with every
// split of the population into people with one and two copies of the gene,
// and the joint probability of each combination is added to each person's
// marginals. The context is checked once per trait assignment.
func (e *Engine) Infer(ctx context.Context, p Pedigree) (Distributions, error) {
	f, err := e.index(p)
	if err != nil {
		return nil, err
	}

	n := f.size()
	everyone := uint64(1)<<uint(n) - 1
	marginals := make([]Marginal, n)
	genes := make([]GeneCount, n)

	traits := newSubsetReader(everyone)
	ones := newSubsetReader(everyone)
	twos := newSubsetReader(0)

	for haveTrait, ok := traits.Read(); ok; haveTrait, ok = traits.Read() {
		if !f.consistent(haveTrait) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ones.Reset(everyone)
		for oneGene, ok := ones.Read(); ok; oneGene, ok = ones.Read() {
			twos.Reset(everyone &^ oneGene)
			for twoGenes, ok := twos.Read(); ok; twoGenes, ok = twos.Read() {
				f.assign(genes, oneGene, twoGenes)
				joint := e.joint(f, genes, haveTrait)
				for i := range marginals {
					marginals[i].add(genes[i], haveTrait&(1<<uint(i)) != 0, joint)
				}
			}
		}
	}

	out := make(Distributions, n)
	for i, name := range f.names {
		m := marginals[i]
		out[name] = &m
	}
	if err := out.Normalize(); err != nil {
		return nil, err
	}

	return out, nil
}
