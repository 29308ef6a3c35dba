package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/internal/dbg"
)

func (a Adjacent) String() string {
	if index, ok := a.Index(); ok {
		return fmt.Sprint(index)
	}
	return "Ø"
}

func (n NeighborList) String() string {
	parts := make([]string, len(n))
	for i, neighbor := range n {
		parts[i] = neighbor.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

// Dump every triangle, one per line, for debugging.
func (t *Triangulation) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Triangulation: %d points (%d input), %d triangles (%d live)\n",
		len(t.Points), t.inputCount, len(t.Triangles), t.LiveCount())
	for i := range t.Triangles {
		sb.WriteString(t.TriangleString(i))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (t *Triangulation) TriangleString(i int) string {
	return fmt.Sprintf("%4d %s %v ⟂ %s", i, t.DbgName(i), t.Triangles[i], t.Neighbors[i])
}

// Readable name for a triangle: red once removed, cyan on the hull or touching
// the super-triangle, green in the interior.
func (t *Triangulation) DbgName(i int) string {
	name := dbg.Name(i)
	tri := t.Triangles[i]
	switch {
	case t.removed[i]:
		return aurora.Red(name).String()
	case t.IsSuperVertex(tri[0]) || t.IsSuperVertex(tri[1]) || t.IsSuperVertex(tri[2]):
		return aurora.Cyan(name).String()
	}
	for _, neighbor := range t.Neighbors[i] {
		if neighbor.IsBoundary() {
			return aurora.Cyan(name).String()
		}
	}
	return aurora.Green(name).String()
}
