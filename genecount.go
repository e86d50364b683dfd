package heredity

import "fmt"

// GeneCount is the number of copies of the gene a person carries.
type GeneCount uint8

const (
	Zero GeneCount = iota
	One
	Two
)

// NumGeneCounts is the number of GeneCount buckets.
const NumGeneCounts = 3

func (g GeneCount) String() string {
	switch g {
	case Zero:
		return "0"
	case One:
		return "1"
	case Two:
		return "2"

	default:
		return fmt.Sprintf("GeneCount(%d)", uint8(g))
	}
}

// Evidence is what is known about whether a person exhibits the trait.
type Evidence uint8

const (
	Unobserved Evidence = iota
	Absent
	Present
)

func (e Evidence) String() string {
	switch e {
	case Unobserved:
		return "Unobserved"
	case Absent:
		return "Absent"
	case Present:
		return "Present"

	default:
		return "Illegal selection"
	}
}

// Observed reports whether the trait value is known, and if so, what it is.
func (e Evidence) Observed() (hasTrait bool, known bool) {
	switch e {
	case Present:
		return true, true
	case Absent:
		return false, true
	}
	return false, false
}
