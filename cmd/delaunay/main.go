package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/internal"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

type config struct {
	input     string
	png       string
	scale     float64
	imgcat    bool
	normalize bool
	check     bool
	dump      bool
	verbose   bool
	maxFlips  int
}

// Triangulate a point cloud and print the triangles, one "a b c" line of point
// indices each. Input is newline separated points in the form "x y" or
// "x y z", or an SVG file whose circles and polygon vertices are the points.
// Blank lines and lines starting with # are skipped.
func main() {
	app, cfg := newApp()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() (*kingpin.Application, *config) {
	cfg := &config{}
	app := kingpin.New("delaunay", "Delaunay triangulation of a point cloud.")
	app.Arg("input", "Point file (text or .svg). Reads text from stdin when omitted.").StringVar(&cfg.input)
	app.Flag("png", "Render the triangulation to this PNG file.").StringVar(&cfg.png)
	app.Flag("scale", "Pixels per unit when rendering.").Default("1").Float64Var(&cfg.scale)
	app.Flag("imgcat", "Show the rendering in the terminal (iTerm only).").BoolVar(&cfg.imgcat)
	app.Flag("normalize", "Triangulate in the unit square.").BoolVar(&cfg.normalize)
	app.Flag("check", "Validate the result before printing it.").BoolVar(&cfg.check)
	app.Flag("dump", "Print the triangle table to stderr.").BoolVar(&cfg.dump)
	app.Flag("verbose", "Log the run to stderr.").Short('v').BoolVar(&cfg.verbose)
	app.Flag("max-flips", "Flip limit per insertion (0 picks one from the mesh size).").IntVar(&cfg.maxFlips)
	return app, cfg
}

func run(cfg *config, stdin io.Reader, out, errOut io.Writer) error {
	if cfg.verbose {
		delaunay.SetLogger(slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	points, err := readInput(cfg.input, stdin)
	if err != nil {
		return err
	}

	opts := internal.Options{
		Normalize:         cfg.normalize,
		MaxFlipsPerInsert: cfg.maxFlips,
		Validate:          cfg.check,
	}
	t, mesh, err := triangulate(points, opts)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	for i := 0; i < mesh.TriangleCount(); i++ {
		tri := mesh.Triangle(i)
		fmt.Fprintf(w, "%d %d %d\n", tri[0], tri[1], tri[2])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if cfg.dump {
		fmt.Fprint(errOut, t)
	}
	if cfg.png != "" {
		if err := t.DrawPNG(cfg.png, cfg.scale); err != nil {
			return err
		}
	}
	if cfg.imgcat {
		return t.PrintToTerminal(cfg.scale)
	}
	return nil
}

// The CLI works on the triangulation itself rather than the public mesh, since
// drawing and dumping need the triangle table.
func triangulate(points []delaunay.Point, opts internal.Options) (t *internal.Triangulation, mesh *delaunay.Mesh, err error) {
	defer func() {
		if recoveredErr := internal.HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			t, mesh, err = nil, nil, recoveredErr
		}
	}()
	t = internal.Run(points, opts)
	return t, t.Mesh(points, opts.Color), nil
}

func readInput(path string, stdin io.Reader) ([]delaunay.Point, error) {
	if path == "" {
		return readPoints(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return internal.ReadSVGPoints(f)
	}
	return readPoints(f)
}

func readPoints(in io.Reader) ([]delaunay.Point, error) {
	points := []delaunay.Point{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parsePoint(line string) (delaunay.Point, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 || len(parts) > 3 {
		return delaunay.Point{}, errors.Errorf("expected \"x y\" or \"x y z\", got %q", line)
	}

	var coordinates [3]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return delaunay.Point{}, errors.Wrapf(err, "coordinate %d", i)
		}
		coordinates[i] = value
	}
	return delaunay.Point{X: coordinates[0], Y: coordinates[1], Z: coordinates[2]}, nil
}
