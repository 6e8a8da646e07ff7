package main

import (
	"fmt"

	"github.com/hammal/asl/gonumExtensions"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// plotSignal saves one line per column of d against the TR index.
// The image format follows the file extension.
func plotSignal(d gonumExtensions.DesignMatrix, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "TR"
	p.Y.Label.Text = "signal"

	lines := make([]interface{}, 0, 2*d.Cols())
	for index, xys := range plottify(d) {
		lines = append(lines, fmt.Sprintf("echo %d", index+1), xys)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func plottify(d gonumExtensions.DesignMatrix) []plotter.XYs {
	res := make([]plotter.XYs, d.Cols())
	for col := range res {
		pts := make(plotter.XYs, d.Rows())
		for row := range pts {
			pts[row].X = float64(row)
			pts[row].Y = d.At(row, col)
		}
		res[col] = pts
	}
	return res
}
