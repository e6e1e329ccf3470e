package fitting

import "github.com/hvaceng/ductloss/internal/table"

// Reference loss-coefficient tables shipped with the engine, keyed by case
// identifier. The values follow the SMACNA-style fitting loss tables the
// calculator was built against.

// pairRows builds rows pairing one key field with one value field.
func pairRows(keyField string, keys []float64, valueField string, vals []float64, extra table.Row) []table.Row {
	rows := make([]table.Row, len(keys))
	for i := range keys {
		r := table.Row{keyField: table.Num(keys[i]), valueField: table.Num(vals[i])}
		for f, v := range extra {
			r[f] = v
		}
		rows[i] = r
	}
	return rows
}

// gridRows builds rows for a full (x, y) lattice; c[i][j] belongs to
// (xs[i], ys[j]).
func gridRows(xField, yField string, xs, ys []float64, c [][]float64, extra table.Row) []table.Row {
	rows := make([]table.Row, 0, len(xs)*len(ys))
	for i := range xs {
		for j := range ys {
			r := table.Row{
				xField: table.Num(xs[i]),
				yField: table.Num(ys[j]),
				"C":    table.Num(c[i][j]),
			}
			for f, v := range extra {
				r[f] = v
			}
			rows = append(rows, r)
		}
	}
	return rows
}

// BuiltinSource returns the built-in reference tables. An external tabular
// data source can stand in for it; only the ability to yield an ordered row
// collection with named fields is assumed.
func BuiltinSource() table.StaticSource {
	src := table.StaticSource{}

	// A7A: round smooth elbow. R/D rows carry the base coefficient C,
	// ANGLE rows carry the bend-angle factor K; the two column groups
	// share one sheet.
	src["A7A"] = append(
		pairRows("R/D", []float64{0.5, 0.75, 1.0, 1.5, 2.0, 2.5},
			"C", []float64{0.71, 0.33, 0.22, 0.15, 0.13, 0.12}, nil),
		pairRows("ANGLE", []float64{0, 20, 30, 45, 60, 75, 90, 110, 130, 150, 180},
			"K", []float64{0, 0.31, 0.45, 0.60, 0.78, 0.90, 1.00, 1.13, 1.20, 1.28, 1.40}, nil)...,
	)

	// A7RN: Reynolds number correction factors for smooth elbows in the
	// low-velocity regime. Re is in units of 10⁴.
	src["A7RN"] = gridRows("R/D", "Re",
		[]float64{0.5, 0.75},
		[]float64{1, 2, 3, 4, 6, 8, 10, 14, 20},
		[][]float64{
			{1.40, 1.26, 1.19, 1.14, 1.09, 1.06, 1.04, 1.0, 1.0},
			{1.77, 1.64, 1.56, 1.46, 1.38, 1.30, 1.15, 1.0, 1.0},
		}, nil)

	// A8G: asymmetric rectangular transition at fan, sides straight.
	src["A8G"] = gridRows("ANGLE", "A1/A",
		[]float64{10, 15, 20, 25, 30, 35},
		[]float64{1.5, 2.0, 2.5, 3.0, 3.5, 4.0},
		[][]float64{
			{0.05, 0.07, 0.09, 0.10, 0.11, 0.11},
			{0.06, 0.09, 0.11, 0.13, 0.13, 0.14},
			{0.07, 0.10, 0.13, 0.15, 0.16, 0.16},
			{0.08, 0.13, 0.16, 0.19, 0.21, 0.23},
			{0.16, 0.24, 0.29, 0.32, 0.34, 0.35},
			{0.24, 0.34, 0.39, 0.44, 0.48, 0.50},
		}, nil)

	// A10F: converging tee, branch path. Converged velocity Vc and flow
	// fraction Qb/Qc are resolved independently.
	src["A10F"] = gridRows("Vc", "Qb/Qc",
		[]float64{1000, 2000, 3000, 4000},
		[]float64{0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		[][]float64{
			{1.20, 1.00, 0.85, 0.74, 0.66, 0.60, 0.56},
			{1.16, 0.97, 0.83, 0.72, 0.64, 0.58, 0.54},
			{1.13, 0.94, 0.80, 0.70, 0.62, 0.57, 0.53},
			{1.10, 0.92, 0.78, 0.68, 0.61, 0.56, 0.52},
		}, table.Row{"PATH": table.Text("branch")})

	// A10M: converging tee, main path (fixed area ratios).
	src["A10M"] = func() []table.Row {
		rows := pairRows("Qb/Qs", []float64{0.4, 0.6, 0.8, 1.0, 1.5, 2.0},
			"C", []float64{0.22, 0.17, 0.12, 0.08, 0.02, -0.03},
			table.Row{"PATH": table.Text("main"), "As/Ac": table.Num(1.0)})
		for _, r := range rows {
			r["Ab/Ac"] = table.Num(0.5)
		}
		return rows
	}()

	// A10I1: symmetrical round wye; both branches share the table.
	src["A10I1"] = gridRows("ANGLE", "Q_1b/Qc or Q_2b/Qc",
		[]float64{15, 30, 45, 60, 90},
		[]float64{0.1, 0.3, 0.5, 0.7, 0.9},
		[][]float64{
			{0.58, 0.50, 0.45, 0.42, 0.40},
			{0.64, 0.55, 0.50, 0.46, 0.44},
			{0.75, 0.65, 0.58, 0.54, 0.52},
			{0.90, 0.80, 0.72, 0.66, 0.63},
			{1.20, 1.05, 0.96, 0.90, 0.86},
		}, nil)

	// A11U: circular branch off a rectangular main, branch path.
	src["A11U"] = pairRows("Vb/Vc", []float64{0.4, 0.6, 0.8, 1.0, 1.2, 1.5, 2.0},
		"C", []float64{1.03, 0.90, 0.80, 0.74, 0.70, 0.68, 0.68},
		table.Row{"PATH": table.Text("branch")})

	// A11A: tees and wyes, main path variants discriminated by NAME.
	src["A11A"] = append(
		pairRows("Vs/Vc", []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0},
			"C", []float64{0.35, 0.24, 0.14, 0.07, 0.02, 0.0},
			table.Row{"PATH": table.Text("main"), "NAME": table.Text("Tee or Wye, Main")}),
		pairRows("Vs/Vc", []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0},
			"C", []float64{0.30, 0.20, 0.11, 0.05, 0.01, 0.0},
			table.Row{"PATH": table.Text("main"), "NAME": table.Text("Conical Wye, Main")})...,
	)

	// A12A1: duct-mounted orifice plate.
	src["A12A1"] = gridRows("t/D", "L/D",
		[]float64{0.05, 0.1, 0.2, 0.5},
		[]float64{0, 0.5, 1.0, 2.0, 5.0},
		[][]float64{
			{2.8, 2.4, 2.1, 1.9, 1.8},
			{2.5, 2.2, 1.9, 1.7, 1.6},
			{2.2, 1.9, 1.7, 1.5, 1.4},
			{1.9, 1.6, 1.4, 1.3, 1.2},
		}, nil)

	// A13C: rectangular conical exit with or without wall.
	src["A13C"] = gridRows("ANGLE", "As/A",
		[]float64{10, 15, 20, 30, 45, 60},
		[]float64{2.0, 2.5, 3.0, 4.0, 6.0},
		[][]float64{
			{0.54, 0.52, 0.50, 0.49, 0.48},
			{0.63, 0.60, 0.58, 0.56, 0.55},
			{0.72, 0.68, 0.66, 0.64, 0.62},
			{0.86, 0.82, 0.79, 0.76, 0.74},
			{1.00, 0.97, 0.94, 0.91, 0.89},
			{1.08, 1.05, 1.02, 1.00, 0.98},
		}, nil)

	// A14A1: wire screen in duct, by free area ratio.
	src["A14A1"] = pairRows("n, free area ratio",
		[]float64{0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		"C", []float64{6.2, 3.0, 1.7, 0.97, 0.58, 0.32, 0.14, 0.0}, nil)

	// A14B1: perforated plate, by free area ratio and plate t/D.
	src["A14B1"] = gridRows("n, free area ratio", "t/D",
		[]float64{0.3, 0.4, 0.5, 0.6, 0.7, 0.8},
		[]float64{0.015, 0.2, 0.6, 1.0},
		[][]float64{
			{6.9, 6.6, 6.2, 6.0},
			{3.4, 3.2, 3.0, 2.8},
			{1.9, 1.8, 1.7, 1.6},
			{1.1, 1.0, 0.95, 0.90},
			{0.64, 0.60, 0.56, 0.53},
			{0.36, 0.33, 0.31, 0.29},
		}, nil)

	// A15C: exit, segmental opening in round duct.
	src["A15C"] = pairRows("h/D",
		[]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		"C", []float64{2.50, 1.95, 1.63, 1.44, 1.28, 1.16, 1.08, 1.03, 1.01, 1.00}, nil)

	return src
}
