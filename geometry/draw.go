package geometry

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"polygeo/dbg"
)

const drawPadding = 20

// DrawPNG renders a polygon with an optional hull overlay and triangulation
// chords. Rendering is a development and demo aid; nothing algorithmic
// depends on it.
func DrawPNG(path string, p *Polygon, hull *Polygon, chords []Chord, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range p.Vertices() {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	drawCycle(c, p)
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetRGB(1, 1, 0)
	for _, chord := range chords {
		a := p.mustVertex(chord.A)
		b := p.mustVertex(chord.B)
		c.DrawLine(a.X, a.Y, b.X, b.Y)
		c.Stroke()
	}

	if hull != nil {
		c.SetRGB(1, 0, 1)
		drawCycle(c, hull)
		c.Stroke()
	}

	return c.SavePNG(path)
}

func drawCycle(c *gg.Context, p *Polygon) {
	anchor := p.mustVertex(p.Anchor())
	c.MoveTo(anchor.X, anchor.Y)
	v := p.mustVertex(anchor.Next)
	for v.ID != anchor.ID {
		c.LineTo(v.X, v.Y)
		v = p.mustVertex(v.Next)
	}
	c.ClosePath()
}

// This is for debugging purposes only: render to a temp file, cat it to the
// terminal, and print a legend of readable vertex names.
func dbgDraw(p *Polygon, hull *Polygon, chords []Chord, scale float64) {
	const path = "/tmp/polygeo_debug.png"
	if err := DrawPNG(path, p, hull, chords, scale); err != nil {
		return
	}
	for _, v := range p.Vertices() {
		fmt.Fprintf(os.Stdout, "%s: vertex %d at (%g, %g)\n", aurora.Cyan(dbg.Name(v.ID)), v.ID, v.X, v.Y)
	}
	imgcat.CatFile(path, os.Stdout)
}
