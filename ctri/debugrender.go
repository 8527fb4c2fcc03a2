package ctri

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/gridtri/ctriangulate/internal/dbgname"
)

const debugRenderPadding = 20.0

// RenderDebugResult rasterizes a halted debug dump (ring edges plus
// rejection glyphs) to a PNG at path, following the same
// context-setup dance as the teacher's polygon debug renderer: flip the
// origin to the bottom-left, pad, then scale to fit.
func RenderDebugResult(result *DebugResult, scale float64, path string) error {
	if result == nil {
		return errNilDebugResult()
	}

	var minX, minY, maxX, maxY float64
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	consider := func(p Point) {
		x, y := float64(p.X), float64(p.Y)
		minX, minY = math.Min(minX, x), math.Min(minY, y)
		maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
	}
	for _, e := range result.Edges {
		consider(e.Start)
		consider(e.End)
	}
	for _, g := range result.Glyphs {
		consider(g.Centroid)
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + 2*debugRenderPadding
	height := int(scale*(maxY-minY)) + 2*debugRenderPadding
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
	c.Translate(debugRenderPadding, debugRenderPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1.5 / scale)
	c.SetRGB(0, 1, 1)
	for _, e := range result.Edges {
		c.DrawLine(float64(e.Start.X), float64(e.Start.Y), float64(e.End.X), float64(e.End.Y))
		c.Stroke()
	}

	for _, g := range result.Glyphs {
		drawGlyph(c, g, scale)
	}

	return c.SavePNG(path)
}

func drawGlyph(c *gg.Context, g Glyph, scale float64) {
	x, y := float64(g.Centroid.X), float64(g.Centroid.Y)
	r := 6.0 / scale
	switch g.Shape {
	case GlyphEdgeBlocked:
		c.SetRGB(1, 0.6, 0)
		c.DrawRectangle(x-r, y-r, 2*r, 2*r)
	case GlyphValenceFailed:
		c.SetRGB(1, 0, 0)
		c.DrawLine(x-r, y-r, x+r, y+r)
		c.Stroke()
		c.DrawLine(x-r, y+r, x+r, y-r)
	case GlyphContainsReflex:
		c.SetRGB(1, 1, 0)
		c.DrawLine(x-r, y, x+r, y)
		c.Stroke()
		c.DrawLine(x, y-r, x, y+r)
	}
	c.Stroke()
}

// PrintDebugSummary writes a colorized, human-readable summary of a
// debug dump: the edge count, glyph counts per rejection class, and the
// first five edges, each named via dbgname for quick cross-referencing
// against a rendered image.
func PrintDebugSummary(w io.Writer, result *DebugResult) {
	if result == nil {
		fmt.Fprintln(w, aurora.Red("no debug dump available"))
		return
	}
	fmt.Fprintf(w, "%s: %d\n", aurora.Cyan("ring edges"), len(result.Edges))
	counts := map[GlyphShape]int{}
	for _, g := range result.Glyphs {
		counts[g.Shape]++
	}
	fmt.Fprintf(w, "%s: %d\n", aurora.Yellow("edge-blocked rejections"), counts[GlyphEdgeBlocked])
	fmt.Fprintf(w, "%s: %d\n", aurora.Red("valence-failed rejections"), counts[GlyphValenceFailed])
	fmt.Fprintf(w, "%s: %d\n", aurora.Green("contains-reflex rejections"), counts[GlyphContainsReflex])
	for i, e := range result.Edges {
		if i >= 5 {
			fmt.Fprintf(w, "  ... %d more\n", len(result.Edges)-i)
			break
		}
		fmt.Fprintf(w, "  %s: (%d,%d) -> (%d,%d)\n", dbgname.Name(i), e.Start.X, e.Start.Y, e.End.X, e.End.Y)
	}
}

// CatDebugRender renders a debug dump to tmpPath and previews it inline
// in an iTerm2-compatible terminal via imgcat.
func CatDebugRender(result *DebugResult, scale float64, tmpPath string) error {
	if err := RenderDebugResult(result, scale, tmpPath); err != nil {
		return err
	}
	imgcat.CatFile(tmpPath, os.Stdout)
	return nil
}

func errNilDebugResult() error {
	return fmt.Errorf("ctri: nil debug result")
}
