package diagram

import (
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportProfile writes a 1D coefficient profile to an image file: the
// interpolated curve as a line, the tabulated samples as scatter points.
// Format follows the file extension (.png, .svg, .pdf).
func ExportProfile(gridX, gridC, tableX, tableC []float64, title, xLabel, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Loss Coefficient C"

	curve := make(plotter.XYs, len(gridX))
	for i := range gridX {
		curve[i] = plotter.XY{X: gridX[i], Y: gridC[i]}
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)

	samples := make(plotter.XYs, len(tableX))
	for i := range tableX {
		samples[i] = plotter.XY{X: tableX[i], Y: tableC[i]}
	}
	scatter, err := plotter.NewScatter(samples)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(4)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// surfaceGrid adapts a sampled coefficient surface to the plotter grid
// interface. cs is indexed [iy][ix].
type surfaceGrid struct {
	xs, ys []float64
	cs     [][]float64
}

func (g surfaceGrid) Dims() (int, int)   { return len(g.xs), len(g.ys) }
func (g surfaceGrid) X(c int) float64    { return g.xs[c] }
func (g surfaceGrid) Y(r int) float64    { return g.ys[r] }
func (g surfaceGrid) Z(c, r int) float64 { return g.cs[r][c] }

// ExportSurface writes a 2D coefficient surface to an image file as a heat
// map over the interpolation grid.
func ExportSurface(xs, ys []float64, cs [][]float64, title, xLabel, yLabel, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	pal := moreland.SmoothBlueRed().Palette(255)
	heat := plotter.NewHeatMap(surfaceGrid{xs: xs, ys: ys, cs: cs}, pal)
	p.Add(heat)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
