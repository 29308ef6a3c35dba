package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSVGPoints(t *testing.T) {
	t.Run("circles and polygons", func(t *testing.T) {
		svg := `<svg width="100" height="100">
			<circle cx="10" cy="20" r="2"/>
			<circle cy="5" r="2"/>
			<polygon points="1,2 3.5,4"/>
		</svg>`
		points, err := ReadSVGPoints(strings.NewReader(svg))
		require.NoError(t, err)
		assert.Equal(t, []Point{
			{X: 10, Y: -20},
			{X: 0, Y: -5},
			{X: 1, Y: -2},
			{X: 3.5, Y: -4},
		}, points)
	})

	t.Run("nothing to read", func(t *testing.T) {
		_, err := ReadSVGPoints(strings.NewReader(`<svg width="100" height="100"><rect width="5" height="5"/></svg>`))
		assert.EqualError(t, err, "no circles or polygons found")
	})

	t.Run("bad coordinate", func(t *testing.T) {
		_, err := ReadSVGPoints(strings.NewReader(`<svg><circle cx="ten" cy="0"/></svg>`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "circle cx")
	})

	t.Run("bad point pair", func(t *testing.T) {
		_, err := ReadSVGPoints(strings.NewReader(`<svg><polygon points="1,2,3"/></svg>`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), `invalid point string "1,2,3"`)
	})

	t.Run("fixtures", func(t *testing.T) {
		assert.Len(t, LoadFixture("scatter"), 60)
		assert.Len(t, LoadFixture("ring"), 17)
		assert.Len(t, LoadFixture("grid"), 48)
		assert.Len(t, LoadFixture("hexagon"), 8)
	})
}
