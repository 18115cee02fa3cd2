package eval

// span is a half-open range [Lo, Hi) of flattened grid indices owned by one
// worker.
type span struct {
	Lo, Hi int
}

// partition splits the flattened index space [0, n) into count contiguous
// spans. Sizes differ by at most one: the first n%count spans take the extra
// index. Spans may be empty when count exceeds n; every index lands in
// exactly one span.
func partition(n, count int) []span {
	base := n / count
	rem := n % count

	spans := make([]span, count)
	lo := 0
	for w := range spans {
		size := base
		if w < rem {
			size++
		}
		spans[w] = span{Lo: lo, Hi: lo + size}
		lo += size
	}
	return spans
}
