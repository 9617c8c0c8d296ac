package charts

// Table flattens a spec into a header and rows for tabular output. Points,
// series, grid cells, arcs, boxes, samples and frames each map to one row.
func (s Spec) Table() ([]string, [][]any) {
	x, y, value := orDefault(s.Labels.X, "Label"), orDefault(s.Labels.Y, "Value"), s.Labels.Value

	switch {
	case s.Frames != nil:
		header := []string{orDefault(value, "Frame"), x, y}
		var rows [][]any
		for _, f := range s.Frames.Frames {
			for _, p := range f.Points {
				rows = append(rows, []any{f.Label, p.Label, p.Value})
			}
		}
		return header, rows

	case s.Geo != nil:
		header := []string{"Origin", "Destination", "Origin Lat", "Origin Lon", "Destination Lat", "Destination Lon"}
		rows := make([][]any, 0, len(s.Geo.Arcs))
		for _, a := range s.Geo.Arcs {
			rows = append(rows, []any{a.Origin, a.Destination, a.From.Lat, a.From.Lon, a.To.Lat, a.To.Lon})
		}
		return header, rows

	case s.Grid != nil:
		header := []string{x, y, orDefault(value, "Value")}
		rows := make([][]any, 0, len(s.Grid.Cells))
		for _, c := range s.Grid.Cells {
			rows = append(rows, []any{c.X, c.Y, c.Value})
		}
		return header, rows

	case s.Boxes != nil:
		header := []string{x, "Count", "Min", "Q1", "Median", "Q3", "Max", "Mean"}
		rows := make([][]any, 0, len(s.Boxes))
		for _, b := range s.Boxes {
			rows = append(rows, []any{b.Group, b.Count, b.Min, b.Q1, b.Median, b.Q3, b.Max, b.Mean})
		}
		return header, rows

	case s.Samples != nil:
		header := []string{x, y}
		rows := make([][]any, 0, len(s.Samples))
		for _, o := range s.Samples {
			rows = append(rows, []any{o.Group, o.Value})
		}
		return header, rows

	case s.Series != nil:
		header := []string{orDefault(value, "Series"), x, y}
		var rows [][]any
		for _, ser := range s.Series {
			for _, p := range ser.Points {
				rows = append(rows, []any{ser.Name, p.Label, p.Value})
			}
		}
		return header, rows
	}

	// Pie and treemap charts only carry a value title; horizontal bars put
	// the category on the y axis.
	if s.Labels.Y == "" && value != "" {
		y = value
	}
	if s.Orientation == Horizontal {
		x, y = y, x
	}
	header := []string{x, y}
	tagged := false
	for _, p := range s.Points {
		if p.Tag != "" {
			tagged = true
			break
		}
	}
	if tagged {
		header = append(header, "Highlight")
	}
	rows := make([][]any, 0, len(s.Points))
	for _, p := range s.Points {
		row := []any{p.Label, p.Value}
		if tagged {
			row = append(row, p.Tag)
		}
		rows = append(rows, row)
	}
	return header, rows
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
