package heredity

// subsetReader walks every subset of a bitmask in increasing numeric order,
// starting with the empty set and ending with the mask itself. Subsets are
// produced one at a time; nothing is materialized.
type subsetReader struct {
	SubsetsSeen uint64
	mask        uint64
	next        uint64
	done        bool
}

func newSubsetReader(mask uint64) *subsetReader {
	return &subsetReader{mask: mask}
}

// Read returns the next subset. The second return value is false once every
// subset has been returned.
func (r *subsetReader) Read() (uint64, bool) {
	if r.done {
		return 0, false
	}

	subset := r.next

	// (s - mask) & mask is the next larger subset of mask, wrapping to 0
	// after the mask itself.
	r.next = (r.next - r.mask) & r.mask
	if r.next == 0 {
		r.done = true
	}
	r.SubsetsSeen++

	return subset, true
}

// Reset rewinds the reader to the empty subset of mask, so the same reader
// can walk the subsets of a new mask (or the same one again).
func (r *subsetReader) Reset(mask uint64) {
	r.mask = mask
	r.next = 0
	r.done = false
	r.SubsetsSeen = 0
}
