package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the mesh, in pixels
const drawPadding = 40

// Render the live triangles to a PNG. Scale is pixels per unit. Triangles that
// still touch the super-triangle are skipped, since they would dwarf the rest.
func (t *Triangulation) DrawPNG(path string, scale float64) error {
	c := t.draw(scale)
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Draw the triangulation and print it in the terminal (iTerm only). Handy
// when debugging.
func (t *Triangulation) PrintToTerminal(scale float64) error {
	const path = "/tmp/triangulation.png"
	if err := t.DrawPNG(path, scale); err != nil {
		return err
	}
	return imgcat.CatFile(path, os.Stdout)
}

func (t *Triangulation) draw(scale float64) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range t.Points[:t.inputCount] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if t.inputCount == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Fill first, then stroke, so edges are never painted over
	for _, stroke := range []bool{false, true} {
		for i, tri := range t.Triangles {
			if t.removed[i] || t.IsSuperVertex(tri[0]) || t.IsSuperVertex(tri[1]) || t.IsSuperVertex(tri[2]) {
				continue
			}
			a, b, v := t.Points[tri[0]], t.Points[tri[1]], t.Points[tri[2]]
			c.MoveTo(a.X, a.Y)
			c.LineTo(b.X, b.Y)
			c.LineTo(v.X, v.Y)
			c.ClosePath()
			if stroke {
				c.SetRGB(0, 1, 1)
				c.SetLineWidth(1.5 / scale)
				c.Stroke()
			} else {
				c.SetRGBA(0.3, 0.2, 1, 0.5)
				c.Fill()
			}
		}
	}

	c.SetRGB(1, 1, 0)
	for _, p := range t.Points[:t.inputCount] {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}
	return c
}
