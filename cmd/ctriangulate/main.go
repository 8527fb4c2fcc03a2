// Command ctriangulate is a demo consumer of the ctri engine: it reads
// newline-separated "x y" integer points from stdin (polygons separated
// by a blank line, first polygon the outer boundary, the rest holes or
// islands), triangulates them, and writes a PNG rendering the result.
//
// This binary is the "higher-level renderer" the engine spec treats as
// an external collaborator: it owns file I/O and visualization, neither
// of which the core engine does itself.
package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/gridtri/ctriangulate/ctri"
)

var (
	app = kingpin.New("ctriangulate", "Triangulate polygons read from stdin.")

	outPath = app.Flag("out", "PNG output path.").Short('o').Default("/tmp/ctriangulate.png").String()
	scale   = app.Flag("scale", "Pixels per grid unit.").Default("1.0").Float64()

	haltAfterNClips = app.Flag("halt-after-n-clips", "Stop after N clips and dump debug state instead of the full output.").Int()
	debugOut        = app.Flag("debug-out", "PNG path for the debug dump (used only when --halt-after-n-clips > 0).").Default("/tmp/ctriangulate-debug.png").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	paths := readPaths(os.Stdin)
	fmt.Printf("Read %d path(s), %d total vertices\n", len(paths), countVerts(paths))

	if *haltAfterNClips > 0 {
		_, debug, err := ctri.TriangulateWithDebug(*haltAfterNClips, paths...)
		if err != nil {
			fmt.Fprintln(os.Stderr, "triangulate:", err)
			os.Exit(1)
		}
		ctri.PrintDebugSummary(os.Stdout, debug)
		if err := ctri.RenderDebugResult(debug, *scale, *debugOut); err != nil {
			fmt.Fprintln(os.Stderr, "render debug:", err)
			os.Exit(1)
		}
		fmt.Println("Wrote debug dump to", *debugOut)
		return
	}

	triangles, err := ctri.Triangulate(paths...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "triangulate:", err)
		os.Exit(1)
	}
	fmt.Printf("Emitted %d triangle(s)\n", len(triangles))

	if err := renderTriangles(triangles, *scale, *outPath); err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		os.Exit(1)
	}
	fmt.Println("Wrote", *outPath)
}

func countVerts(paths [][]ctri.Coord) int {
	n := 0
	for _, p := range paths {
		n += len(p) / 2
	}
	return n
}

// readPaths parses stdin in the same blank-line-separated "x y" per
// line format the engine's teacher used, but for integer coordinates.
func readPaths(in *os.File) [][]ctri.Coord {
	var paths [][]ctri.Coord
	scanner := bufio.NewScanner(in)
	var current []ctri.Coord
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(current) > 0 {
				paths = append(paths, current)
				current = nil
			}
			continue
		}
		x, y := parsePoint(line)
		current = append(current, x, y)
	}
	if len(current) > 0 {
		paths = append(paths, current)
	}
	return paths
}

func parsePoint(line string) (ctri.Coord, ctri.Coord) {
	parts := strings.Fields(line)
	x, _ := strconv.ParseInt(parts[0], 10, 16)
	y, _ := strconv.ParseInt(parts[1], 10, 16)
	return ctri.Coord(x), ctri.Coord(y)
}

// renderTriangles draws the emitted triangle list over a black
// background, following the same context-setup convention the engine's
// own debug renderer uses.
func renderTriangles(triangles []ctri.Triangle, scale float64, path string) error {
	var minX, minY, maxX, maxY float64
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	consider := func(p ctri.Point) {
		x, y := float64(p.X), float64(p.Y)
		minX, minY = math.Min(minX, x), math.Min(minY, y)
		maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
	}
	for _, t := range triangles {
		consider(t.A)
		consider(t.B)
		consider(t.C)
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	const padding = 20.0
	width := int(scale*(maxX-minX)) + 2*padding
	height := int(scale*(maxY-minY)) + 2*padding
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1.5 / scale)
	for _, t := range triangles {
		c.MoveTo(float64(t.A.X), float64(t.A.Y))
		c.LineTo(float64(t.B.X), float64(t.B.Y))
		c.LineTo(float64(t.C.X), float64(t.C.Y))
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	return c.SavePNG(path)
}
