package heredity

import "fmt"

// joint is the probability that every person has exactly the gene count in
// genes and that exactly the people in haveTrait exhibit the trait.
func (e *Engine) joint(f *family, genes []GeneCount, haveTrait uint64) float64 {
	p := 1.0
	for i, g := range genes {
		if f.founder(i) {
			p *= e.table.Gene[g]
		} else {
			p *= e.table.Inheritance(genes[f.father[i]], genes[f.mother[i]])[g]
		}
		p *= e.table.traitGiven(g, haveTrait&(1<<uint(i)) != 0)
	}
	return p
}

// JointProbability returns the probability that everyone in oneGene carries
// one copy of the gene, everyone in twoGenes carries two, everyone else
// carries none, and that exactly the people in haveTrait exhibit the trait.
// Observed evidence is not consulted.
func (e *Engine) JointProbability(p Pedigree, oneGene, twoGenes, haveTrait []string) (float64, error) {
	f, err := e.index(p)
	if err != nil {
		return 0, err
	}

	one, err := f.mask(oneGene)
	if err != nil {
		return 0, err
	}
	two, err := f.mask(twoGenes)
	if err != nil {
		return 0, err
	}
	trait, err := f.mask(haveTrait)
	if err != nil {
		return 0, err
	}
	if one&two != 0 {
		return 0, fmt.Errorf("%w: %v", ErrOverlappingGeneSets, f.namesIn(one&two))
	}

	genes := make([]GeneCount, f.size())
	f.assign(genes, one, two)

	return e.joint(f, genes, trait), nil
}
