package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"tagcloud/cloudpack"
)

var errEmptyLayout = errors.New("layout has no tags")

// fontCache hands out faces of the embedded Go Regular font, one per point size.
// Faces are not safe for concurrent use, and neither is the cache.
type fontCache struct {
	font  *opentype.Font
	dpi   float64
	faces map[float64]font.Face
}

func newFontCache(dpi float64) (*fontCache, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &fontCache{font: f, dpi: dpi, faces: make(map[float64]font.Face)}, nil
}

func (c *fontCache) face(size float64) (font.Face, error) {
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     c.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %vpt: %w", size, err)
	}
	c.faces[size] = f
	return f, nil
}

func (c *fontCache) Close() error {
	var errs []error
	for _, f := range c.faces {
		errs = append(errs, f.Close())
	}
	clear(c.faces)
	return errors.Join(errs...)
}

// measureLabel returns the box a label occupies when drawn with face: its advance width by
// the line's ascent plus descent. Both sides are at least one pixel.
func measureLabel(face font.Face, label string) (int, int) {
	w := font.MeasureString(face, label).Ceil()
	m := face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()
	return max(w, 1), max(h, 1)
}

// labelSize measures label at fontSize and adds padding on every side. The returned size
// carries id so the placed rectangle can be traced back to its tag.
func labelSize(fonts *fontCache, id int, label string, fontSize float64, padding int) (cloudpack.Size, error) {
	face, err := fonts.face(fontSize)
	if err != nil {
		return cloudpack.Size{}, err
	}
	w, h := measureLabel(face, label)
	return cloudpack.NewSizeID(id, w+2*padding, h+2*padding), nil
}

// style is the resolved look of a rendered cloud.
type style struct {
	background color.NRGBA
	palette    []color.NRGBA
	boxes      bool
	margin     int
	width      int
	height     int
}

func newStyle(o *Options) (style, error) {
	bg, err := parseColor(o.Background)
	if err != nil {
		return style{}, err
	}
	st := style{background: bg, boxes: o.Boxes, margin: o.Margin, width: o.Width, height: o.Height}
	for _, s := range o.Palette {
		c, err := parseColor(s)
		if err != nil {
			return style{}, err
		}
		st.palette = append(st.palette, c)
	}
	if len(st.palette) == 0 {
		st.palette = []color.NRGBA{{0, 0, 0, 255}}
	}
	return st, nil
}

// renderCloud draws every tag of the layout onto a new canvas sized to the layout bounds plus
// the style margin, then fits it into the requested width and height, if any.
func renderCloud(data *LayoutData, fonts *fontCache, st style) (*image.NRGBA, error) {
	if len(data.Tags) == 0 {
		return nil, errEmptyLayout
	}
	b := data.Bounds
	dst := imaging.New(b.W+2*st.margin, b.H+2*st.margin, st.background)
	dx, dy := st.margin-b.X, st.margin-b.Y

	for i, tag := range data.Tags {
		face, err := fonts.face(tag.FontSize)
		if err != nil {
			return nil, err
		}
		c := st.palette[i%len(st.palette)]
		r := image.Rect(tag.Region.X+dx, tag.Region.Y+dy, tag.Region.X+tag.Region.W+dx, tag.Region.Y+tag.Region.H+dy)
		if st.boxes {
			drawOutline(dst, r, c)
		}
		drawLabel(dst, face, tag.Label, r.Min, data.Padding, c)
	}
	return fitCanvas(dst, st.width, st.height, st.background), nil
}

// drawLabel draws label with its top-left corner padding pixels inside origin.
func drawLabel(dst draw.Image, face font.Face, label string, origin image.Point, padding int, c color.Color) {
	ascent := face.Metrics().Ascent
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(origin.X + padding),
			Y: fixed.I(origin.Y+padding) + ascent,
		},
	}
	d.DrawString(label)
}

// drawOutline draws a one pixel border just inside r.
func drawOutline(dst draw.Image, r image.Rectangle, c color.Color) {
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e, src, image.Point{}, draw.Src)
	}
}

// fitCanvas scales img down to fit width x height and centers it on a canvas of exactly that
// size. A zero dimension takes the image's own.
func fitCanvas(img *image.NRGBA, width, height int, bg color.NRGBA) *image.NRGBA {
	if width <= 0 && height <= 0 {
		return img
	}
	bounds := img.Bounds()
	if width <= 0 {
		width = bounds.Dx()
	}
	if height <= 0 {
		height = bounds.Dy()
	}
	fitted := imaging.Fit(img, width, height, imaging.Lanczos)
	return imaging.PasteCenter(imaging.New(width, height, bg), fitted)
}

// saveImage writes img to path, choosing the format from the extension.
func saveImage(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// parseColor accepts "#rgb", "#rrggbb", "#rrggbbaa" or an SVG color name such as "navy".
func parseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return color.NRGBA{c.R, c.G, c.B, c.A}, nil
		}
		return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}
