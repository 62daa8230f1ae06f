package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/cellfn/pkg/registry"
)

// Overlay names functions to emphasize on the graph.
type Overlay struct {
	Highlight []string
}

// GenerateMermaid produces a Mermaid flowchart of the function catalogue,
// one subgraph-like cluster per category. Shapes:
// - Category: ((Circle))
// - Exported function: [Rectangle]
// - Internal function: [[Subroutine]]
// Hidden functions hang off their category with a dotted edge.
func GenerateMermaid(descs []registry.Descriptor, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	byCategory := make(map[string][]registry.Descriptor)
	var categories []string
	for _, d := range descs {
		category := d.Category
		if category == "" {
			category = "Uncategorized"
		}
		if _, ok := byCategory[category]; !ok {
			categories = append(categories, category)
		}
		byCategory[category] = append(byCategory[category], d)
	}
	slices.Sort(categories)

	for _, category := range categories {
		catID := "cat_" + sanitizeMermaidID(category)
		fmt.Fprintf(&sb, "    %s((\"%s\"))\n", catID, category)

		for _, d := range byCategory[category] {
			safeID := sanitizeMermaidID(d.Name)
			opener, closer := "[", "]"
			if !d.IsExported {
				opener, closer = "[[", "]]"
			}
			// Escape double quotes in the template for the Mermaid label
			label := strings.ReplaceAll(d.Usage(), "\"", "'")
			fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, label, closer)

			arrow := "-->"
			if d.Hidden {
				arrow = "-.->"
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", catID, arrow, safeID)
		}
	}

	if overlay != nil && len(overlay.Highlight) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds
		sb.WriteString("    classDef highlight fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, name := range overlay.Highlight {
			safeID := sanitizeMermaidID(strings.ToUpper(name))
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				fmt.Fprintf(&sb, "    class %s highlight;\n", safeID)
			}
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
