// Package partition splits ordered sequences into contiguous, disjoint ranges
// that can be handed to independent workers.
package partition

// Range is the half-open interval [Start, End) of an ordered sequence.
type Range struct {
	Index int
	Start int
	End   int
}

// Len returns the number of items covered by r.
func (r Range) Len() int {
	return r.End - r.Start
}

// Ranges splits a sequence of n items into min(k, n) contiguous ranges.
// Sizes differ by at most one and earlier ranges absorb the remainder.
// It returns nil when n or k is not positive.
func Ranges(n, k int) []Range {
	if n <= 0 || k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}

	size, rem := n/k, n%k
	out := make([]Range, k)
	for i := 0; i < k; i++ {
		start := i*size + min(i, rem)
		end := (i+1)*size + min(i+1, rem)
		out[i] = Range{Index: i, Start: start, End: end}
	}
	return out
}

// Split applies Ranges to seq. The returned chunks share seq's backing array
// and are capped so appending to one never writes into its neighbour.
func Split[T any](seq []T, k int) [][]T {
	ranges := Ranges(len(seq), k)
	out := make([][]T, len(ranges))
	for i, r := range ranges {
		out[i] = seq[r.Start:r.End:r.End]
	}
	return out
}
