package graph

import (
	"fmt"
	"strings"
)

// DOTOptions configures Graphviz output
type DOTOptions struct {
	// HighlightThreshold colors a node red when its outgoing additions exceed it.
	HighlightThreshold int
	// RankDir is the layout direction (LR, RL, TB, BT).
	RankDir string
}

// DefaultDOTOptions returns the stock rendering settings
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		HighlightThreshold: 1000,
		RankDir:            "LR",
	}
}

// RenderDOT writes the graph as a Graphviz digraph. Node ids are arena
// indices and labels are years; edge labels are weights.
func RenderDOT(g *YearGraph, opts DOTOptions) string {
	if opts.RankDir == "" {
		opts.RankDir = "LR"
	}

	var sb strings.Builder
	sb.WriteString("digraph {\n")
	sb.WriteString("  node [shape=circle, style=filled, fillcolor=gray95];\n")
	sb.WriteString("  edge [color=gray50];\n")
	fmt.Fprintf(&sb, "  rankdir=%s;\n", opts.RankDir)

	for _, n := range g.nodes {
		additions := g.OutWeight(n.Index)
		color := "black"
		if additions > opts.HighlightThreshold {
			color = "red"
		}
		shape := "circle"
		if additions == 0 {
			shape = "diamond"
		}
		fmt.Fprintf(&sb, "  %d [label=\"%d\", color=%s, shape=%s];\n", n.Index, n.Year, color, shape)
	}

	for _, e := range g.edges {
		fmt.Fprintf(&sb, "  %d -> %d [label=\"%d\"];\n", e.Source, e.Target, e.Weight)
	}

	sb.WriteString("}\n")
	return sb.String()
}
