package blueprint

// joinedRow is one (blueprint, point) pair produced by a left join of
// blueprints onto points. X and Y are nil for a blueprint without points.
type joinedRow struct {
	Author string
	Name   string
	X      *int32
	Y      *int32
}

// grouper folds joined rows into blueprints. Rows must arrive sorted by
// author, name and then point insertion order; a new blueprint starts
// whenever the (author, name) pair differs from the previous row.
type grouper struct {
	blueprints []Blueprint
}

func (g *grouper) add(r joinedRow) {
	n := len(g.blueprints)
	if n == 0 || g.blueprints[n-1].Author != r.Author || g.blueprints[n-1].Name != r.Name {
		g.blueprints = append(g.blueprints, Blueprint{
			Author: r.Author,
			Name:   r.Name,
			Points: []Point{},
		})
		n++
	}

	if r.X == nil || r.Y == nil {
		return
	}
	current := &g.blueprints[n-1]
	current.Points = append(current.Points, Point{X: int(*r.X), Y: int(*r.Y)})
}

// result returns the grouped blueprints, never nil.
func (g *grouper) result() []Blueprint {
	if g.blueprints == nil {
		return []Blueprint{}
	}
	return g.blueprints
}

// groupRows folds a complete, ordered row set into blueprints.
func groupRows(rows []joinedRow) []Blueprint {
	var g grouper
	for _, r := range rows {
		g.add(r)
	}
	return g.result()
}
