package graph

// Summary holds the aggregate statistics of a year graph
type Summary struct {
	TotalYears       int     `json:"total_years"`
	TotalTransitions int     `json:"total_transitions"`
	TotalAdditions   int     `json:"total_additions"`
	AveragePerYear   float64 `json:"average_additions_per_year"`
}

// YearAdditions pairs a year with the weight of its outgoing transition
type YearAdditions struct {
	Year      int `json:"year"`
	Additions int `json:"additions"`
}

// GreatestChange is the heaviest year-over-year transition
type GreatestChange struct {
	PrevYear  int `json:"prev_year"`
	Year      int `json:"year"`
	Additions int `json:"additions"`
}

// Found reports whether any transition carried a positive weight
func (c GreatestChange) Found() bool {
	return c.Additions > 0
}

// Report is the full analysis result
type Report struct {
	Summary         *Summary        `json:"summary"`
	PerYear         []YearAdditions `json:"per_year"`
	GreatestChange  GreatestChange  `json:"greatest_change"`
	ChainComponents int             `json:"chain_components"`
}

// Analyze computes node, edge and weight totals. The average is 0 for an
// empty graph.
func Analyze(g *YearGraph) *Summary {
	s := &Summary{
		TotalYears:       g.NodeCount(),
		TotalTransitions: g.EdgeCount(),
	}
	for _, e := range g.edges {
		s.TotalAdditions += e.Weight
	}
	if s.TotalYears > 0 {
		s.AveragePerYear = float64(s.TotalAdditions) / float64(s.TotalYears)
	}
	return s
}

// PerYearAdditions lists every year in node order with the summed weight of
// its outgoing edges. The last year of the chain has no successor and reports 0.
func PerYearAdditions(g *YearGraph) []YearAdditions {
	result := make([]YearAdditions, 0, g.NodeCount())
	for _, n := range g.nodes {
		result = append(result, YearAdditions{
			Year:      n.Year,
			Additions: g.OutWeight(n.Index),
		})
	}
	return result
}

// YearOfGreatestChange finds the node with the largest outgoing weight and
// reports the transition it feeds. Ties keep the first node in node order.
// Without any positive weight the result is (-1, 0, 0).
func YearOfGreatestChange(g *YearGraph) GreatestChange {
	best := GreatestChange{PrevYear: -1}
	for _, n := range g.nodes {
		additions := g.OutWeight(n.Index)
		if additions > best.Additions {
			best = GreatestChange{
				PrevYear:  n.Year,
				Year:      n.Year + 1,
				Additions: additions,
			}
		}
	}
	return best
}

// BuildReport runs all analyses
func BuildReport(g *YearGraph) *Report {
	return &Report{
		Summary:         Analyze(g),
		PerYear:         PerYearAdditions(g),
		GreatestChange:  YearOfGreatestChange(g),
		ChainComponents: ChainComponents(g),
	}
}
