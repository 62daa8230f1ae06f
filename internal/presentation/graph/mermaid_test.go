package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/cellfn/internal/presentation/graph"
	"github.com/aretw0/cellfn/pkg/registry"
	"github.com/aretw0/cellfn/pkg/schema"
)

func descriptor(name, category string, exported, hidden bool, decls ...string) registry.Descriptor {
	args := make([]schema.ArgDefinition, len(decls))
	for i, decl := range decls {
		args[i] = schema.Arg(decl)
	}
	return registry.Descriptor{
		Name:       name,
		Category:   category,
		Args:       args,
		IsExported: exported,
		Hidden:     hidden,
		Signature:  schema.NewSignature(args),
	}
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		descs    []registry.Descriptor
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name:  "Category Node Shape",
			descs: []registry.Descriptor{descriptor("SUM", "Math", true, false)},
			contains: []string{
				"cat_Math((\"Math\"))",
				"cat_Math --> SUM",
			},
		},
		{
			name: "Exported And Internal Shapes",
			descs: []registry.Descriptor{
				descriptor("ABS", "Math", true, false, "value (number)"),
				descriptor("DIVIDE", "Math", false, false, "dividend (number)", "divisor (number)"),
			},
			contains: []string{
				"ABS[\"ABS(value)\"]",
				"DIVIDE[[\"DIVIDE(dividend, divisor)\"]]",
			},
		},
		{
			name:  "Dotted Names And Hidden Functions",
			descs: []registry.Descriptor{descriptor("FILTER.ROWS", "Filter", false, true)},
			contains: []string{
				"FILTER_ROWS[[\"FILTER.ROWS()\"]]",
				"cat_Filter -.-> FILTER_ROWS",
			},
		},
		{
			name:     "Uncategorized",
			descs:    []registry.Descriptor{descriptor("X", "", true, false)},
			contains: []string{"cat_Uncategorized((\"Uncategorized\"))"},
		},
		{
			name:    "Highlight Overlay",
			descs:   []registry.Descriptor{descriptor("SUM", "Math", true, false)},
			overlay: &graph.Overlay{Highlight: []string{"sum", "SUM", "filter.rows"}},
			contains: []string{
				"classDef highlight",
				"class SUM highlight;",
				"class FILTER_ROWS highlight;",
			},
		},
		{
			name:     "Empty Overlay",
			descs:    []registry.Descriptor{descriptor("SUM", "Math", true, false)},
			overlay:  &graph.Overlay{},
			excludes: []string{"classDef"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.descs, tt.overlay)
			if !strings.HasPrefix(got, "graph LR\n") {
				t.Errorf("missing header in:\n%s", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("expected output not to contain %q, got:\n%s", unwanted, got)
				}
			}
			if n := strings.Count(got, "class SUM highlight;"); n > 1 {
				t.Errorf("highlight repeated %d times", n)
			}
		})
	}
}
