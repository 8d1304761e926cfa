package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"golang.org/x/text/message"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"FolioLens/internal/locale"
	"FolioLens/internal/model"
)

// Renderer draws the two-panel price / daily-return chart as a PNG.
type Renderer struct {
	Width   vg.Length
	Height  vg.Length
	Years   int
	Printer *message.Printer
}

// NewRenderer returns a 14x10 inch renderer.
func NewRenderer(loc locale.Locale, years int) *Renderer {
	return &Renderer{
		Width:   14 * vg.Inch,
		Height:  10 * vg.Inch,
		Years:   years,
		Printer: loc.Printer(),
	}
}

var (
	priceColor  = color.RGBA{B: 255, A: 255}
	returnColor = color.RGBA{R: 255, G: 165, A: 255}
)

// Points splits the series into close-price and daily-return points.
// The first row carries no return and is left out of the second panel.
func Points(series *model.DerivedSeries) (price, returns plotter.XYs) {
	price = make(plotter.XYs, 0, len(series.Rows))
	returns = make(plotter.XYs, 0, len(series.Rows))
	for _, r := range series.Rows {
		x := float64(r.Time.Unix())
		price = append(price, plotter.XY{X: x, Y: r.Close})
		if r.HasReturn {
			returns = append(returns, plotter.XY{X: x, Y: r.DailyReturn})
		}
	}
	return price, returns
}

func (r *Renderer) panel(pts plotter.XYs, legend, yLabel string, c color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add(legend, line)
	return p, nil
}

// Render writes the chart for series to w.
func (r *Renderer) Render(series *model.DerivedSeries, w io.Writer) error {
	if len(series.Rows) == 0 {
		return errors.New("chart: empty series")
	}
	pr := r.Printer
	price, returns := Points(series)

	top, err := r.panel(price, pr.Sprintf(locale.MsgClosingPrice), pr.Sprintf(locale.MsgPriceAxis), priceColor)
	if err != nil {
		return fmt.Errorf("price panel: %w", err)
	}
	top.Title.Text = pr.Sprintf(locale.MsgChartTitle, r.Years, series.Symbol)

	var bottom *plot.Plot
	if len(returns) > 0 {
		bottom, err = r.panel(returns, pr.Sprintf(locale.MsgDailyReturn), pr.Sprintf(locale.MsgPercentAxis), returnColor)
		if err != nil {
			return fmt.Errorf("return panel: %w", err)
		}
	} else {
		bottom = plot.New()
		bottom.Y.Label.Text = pr.Sprintf(locale.MsgPercentAxis)
	}
	bottom.X.Label.Text = pr.Sprintf(locale.MsgDateAxis)

	img := vgimg.New(r.Width, r.Height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	plots := [][]*plot.Plot{{top}, {bottom}}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
