package internal

// Often we want to treat a triangle's slots as a circular buffer. This gives
// the modular index given length n, but unlike the raw modulo operator, it
// only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Worklist of triangle indices awaiting a Delaunay check. Last in, first out.
type TriangleStack []int

func (s *TriangleStack) Push(t int) {
	*s = append(*s, t)
}

// Pop returns -1 on an empty stack. Check Empty() first.
func (s *TriangleStack) Pop() int {
	if len(*s) == 0 {
		return -1
	}
	t := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return t
}

func (s *TriangleStack) Empty() bool {
	return len(*s) == 0
}

// Push the triangle only if something sits across from its newest point.
// Flips can only happen where there is a real neighbor.
func (s *TriangleStack) pushIfInterior(t int, neighbors NeighborList) {
	if !neighbors[1].IsBoundary() {
		s.Push(t)
	}
}
