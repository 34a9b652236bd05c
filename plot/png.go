package plot

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	"github.com/tuneinsight/realpoly/utils"
)

// palette holds the RGB colors cycled through by the series of a PNG plot.
var palette = [][3]float64{
	{0.12, 0.47, 0.71},
	{1.00, 0.50, 0.05},
	{0.17, 0.63, 0.17},
	{0.84, 0.15, 0.16},
	{0.58, 0.40, 0.74},
	{0.55, 0.34, 0.29},
}

// PNGRenderer renders a figure as a raster image with gogpu/gg.
// Width and Height are in pixels.
type PNGRenderer struct {
	Width, Height int
	// Margin is the blank border in pixels, DefaultMargin if zero.
	Margin float64
	// LineWidth is the stroke width in pixels, DefaultLineWidth if zero.
	LineWidth float64
}

const (
	DefaultMargin    = 32.0
	DefaultLineWidth = 2.0
)

// Extension returns "png".
func (r *PNGRenderer) Extension() string {
	return FormatPNG
}

// canvas maps viewport coordinates to pixels.
type canvas struct {
	vp            Viewport
	width, height float64
	margin        float64
}

func (c canvas) x(x float64) float64 {
	return c.margin + (x-c.vp.XMin)/c.vp.Width()*(c.width-2*c.margin)
}

// y flips the vertical axis and clamps far-off values so that the
// rasterizer never sees huge coordinates.
func (c canvas) y(y float64) float64 {
	py := c.height - c.margin - (y-c.vp.YMin)/c.vp.Height()*(c.height-2*c.margin)
	return math.Max(-c.height, math.Min(2*c.height, py))
}

// Render draws the axes, series and markers of fig and encodes the image as PNG to w.
func (r *PNGRenderer) Render(w io.Writer, fig *Figure) (err error) {

	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("cannot Render: %w: invalid size %dx%d", ErrInvalidConfig, r.Width, r.Height)
	}

	vp, err := fig.Viewport()
	if err != nil {
		return fmt.Errorf("cannot Render: %w", err)
	}

	margin, lineWidth := r.Margin, r.LineWidth
	if margin == 0 {
		margin = DefaultMargin
	}
	if lineWidth == 0 {
		lineWidth = DefaultLineWidth
	}

	cv := canvas{vp: vp, width: float64(r.Width), height: float64(r.Height), margin: margin}

	dc := gg.NewContext(r.Width, r.Height)
	defer func() {
		if cerr := dc.Close(); cerr != nil && err == nil {
			err = errors.WithStack(cerr)
		}
	}()

	dc.ClearWithColor(gg.White)

	// Axes through the origin when it is in view, the frame otherwise.
	dc.SetRGB(0.6, 0.6, 0.6)
	dc.SetLineWidth(1)
	ax := math.Max(vp.XMin, math.Min(vp.XMax, 0))
	ay := math.Max(vp.YMin, math.Min(vp.YMax, 0))
	dc.DrawLine(cv.x(vp.XMin), cv.y(ay), cv.x(vp.XMax), cv.y(ay))
	dc.DrawLine(cv.x(ax), cv.y(vp.YMin), cv.x(ax), cv.y(vp.YMax))
	if err = dc.Stroke(); err != nil {
		return errors.WithStack(err)
	}

	dc.SetLineWidth(lineWidth)

	for i, s := range fig.Series {

		c := palette[i%len(palette)]
		dc.SetRGB(c[0], c[1], c[2])

		pen := false
		for _, pt := range s.Points {
			if !utils.IsFinite(pt.Y) {
				pen = false
				continue
			}
			if pen {
				dc.LineTo(cv.x(pt.X), cv.y(pt.Y))
			} else {
				dc.MoveTo(cv.x(pt.X), cv.y(pt.Y))
				pen = true
			}
		}

		if err = dc.Stroke(); err != nil {
			return errors.WithStack(err)
		}
	}

	dc.SetRGB(0, 0, 0)
	var markers int
	for _, m := range fig.Markers {
		if vp.Contains(m.X, m.Y) {
			dc.DrawCircle(cv.x(m.X), cv.y(m.Y), 2*lineWidth)
			markers++
		}
	}
	if markers > 0 {
		if err = dc.Fill(); err != nil {
			return errors.WithStack(err)
		}
	}

	utils.Logger().Debug("render png",
		"title", fig.Title,
		"width", r.Width,
		"height", r.Height,
		"series", len(fig.Series),
		"markers", len(fig.Markers),
		"viewport", vp)

	if err = dc.EncodePNG(w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
