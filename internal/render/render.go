// Package render draws resolved rows as PNG diagrams: every component box
// outlined at its screen position, with its name or ID as a label. It is a
// diagnostic aid for row lookups that pick the wrong line.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/mj1618/forms-cli/internal/platform"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Role picks the outline color of a box.
type Role int

const (
	// RoleContext is a component drawn for orientation only.
	RoleContext Role = iota
	// RoleRow is a component on the resolved row.
	RoleRow
	// RoleCandidate is a row anchor that matched but was not chosen.
	RoleCandidate
	// RoleAnchor is the chosen row anchor.
	RoleAnchor
)

// Box is one component to draw.
type Box struct {
	Bounds platform.Bounds
	Label  string
	Role   Role
}

// LabelMode controls what text is drawn on each box.
type LabelMode int

const (
	// LabelNames draws the component name, falling back to the ID.
	LabelNames LabelMode = iota
	// LabelIDs draws "[id]" component IDs.
	LabelIDs
)

// Margin is the blank border around the drawn boxes, in pixels.
const Margin = 16

var (
	background   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	textColor    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	outlineColor = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	roleColors   = map[Role]color.RGBA{
		RoleContext:   {R: 180, G: 180, B: 180, A: 255},
		RoleRow:       {R: 0, G: 90, B: 220, A: 255},
		RoleCandidate: {R: 230, G: 150, B: 0, A: 255},
		RoleAnchor:    {R: 220, G: 0, B: 0, A: 255},
	}
)

// BoxFor builds a box for h using mode to pick the label.
func BoxFor(h platform.Handle, role Role, mode LabelMode) (Box, error) {
	b, err := platform.BoundsOf(h)
	if err != nil {
		return Box{}, err
	}
	label := fmt.Sprintf("[%d]", h.ID())
	if mode == LabelNames && h.Name() != "" {
		label = h.Name()
	}
	return Box{Bounds: b, Label: label, Role: role}, nil
}

// Draw renders boxes onto a canvas just large enough to hold them plus
// Margin. Screen coordinates are translated so the top-left box sits at the
// margin. Later boxes are drawn over earlier ones, so callers list the most
// important boxes last.
func Draw(boxes []Box) (*image.RGBA, error) {
	if len(boxes) == 0 {
		return nil, fmt.Errorf("nothing to draw")
	}
	area := extent(boxes)
	canvas := image.NewRGBA(image.Rect(0, 0, area.Dx()+2*Margin, area.Dy()+2*Margin))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	dx := Margin - area.Min.X
	dy := Margin - area.Min.Y
	for _, b := range boxes {
		x1 := b.Bounds.X + dx
		y1 := b.Bounds.Y + dy
		x2 := b.Bounds.Right() + dx
		y2 := b.Bounds.Bottom() + dy
		c := roleColors[b.Role]
		drawRectangle(canvas, x1, y1, x2, y2, c)
		if b.Role == RoleAnchor {
			drawRectangle(canvas, x1-1, y1-1, x2+1, y2+1, c)
		}
		if b.Label != "" {
			drawTextWithOutline(canvas, b.Label, (x1+x2)/2, (y1+y2)/2, textColor, outlineColor)
		}
	}
	return canvas, nil
}

// WritePNG draws boxes and encodes the result as PNG.
func WritePNG(w io.Writer, boxes []Box) error {
	img, err := Draw(boxes)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// extent is the smallest rectangle containing every box.
func extent(boxes []Box) image.Rectangle {
	var r image.Rectangle
	for i, b := range boxes {
		br := image.Rect(b.Bounds.X, b.Bounds.Y, b.Bounds.Right(), b.Bounds.Bottom())
		if i == 0 {
			r = br
			continue
		}
		r = r.Union(br)
	}
	return r
}

func isWithinBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws a rectangle outline, clamped to the image.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x < x2; x++ {
		if isWithinBounds(bounds, x, y1) {
			img.Set(x, y1, c)
		}
		if isWithinBounds(bounds, x, y2-1) {
			img.Set(x, y2-1, c)
		}
	}
	for y := y1; y < y2; y++ {
		if isWithinBounds(bounds, x1, y) {
			img.Set(x1, y, c)
		}
		if isWithinBounds(bounds, x2-1, y) {
			img.Set(x2-1, y, c)
		}
	}
}

// drawTextWithOutline centers text on (x, y) with a one-pixel halo.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, fg, halo color.Color) {
	// basicfont.Face7x13 glyphs are 7 pixels wide; the baseline sits 11
	// pixels below the top of the cell.
	width := font.MeasureString(basicfont.Face7x13, text).Round()
	left := x - width/2
	baseline := y + 11 - 13/2

	drawer := func(c color.Color, px, py int) {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(px, py),
		}
		d.DrawString(text)
	}
	for ox := -1; ox <= 1; ox++ {
		for oy := -1; oy <= 1; oy++ {
			if ox == 0 && oy == 0 {
				continue
			}
			drawer(halo, left+ox, baseline+oy)
		}
	}
	drawer(fg, left, baseline)
}
