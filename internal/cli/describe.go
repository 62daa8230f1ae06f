package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/cellfn/pkg/registry"
	"github.com/aretw0/cellfn/pkg/schema"
)

// Filter selects descriptors by category (case-insensitive, empty for all).
// Hidden functions are dropped unless all is set.
func Filter(descs []registry.Descriptor, category string, all bool) []registry.Descriptor {
	out := make([]registry.Descriptor, 0, len(descs))
	for _, d := range descs {
		if d.Hidden && !all {
			continue
		}
		if category != "" && !strings.EqualFold(d.Category, category) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// ListMarkdown renders descriptors as a markdown table grouped by category.
func ListMarkdown(descs []registry.Descriptor) string {
	sorted := slices.Clone(descs)
	slices.SortStableFunc(sorted, func(a, b registry.Descriptor) int {
		if c := strings.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	var b strings.Builder
	b.WriteString("| Function | Category | Description |\n")
	b.WriteString("|---|---|---|\n")
	for _, d := range sorted {
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", d.Usage(), d.Category, escapeCell(d.Description))
	}
	return b.String()
}

// DescribeMarkdown renders the documentation page of one function.
func DescribeMarkdown(d registry.Descriptor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Name)
	if d.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", d.Description)
	}
	fmt.Fprintf(&b, "```\n%s\n```\n\n", d.Usage())
	if d.Category != "" {
		fmt.Fprintf(&b, "**Category:** %s\n\n", d.Category)
	}
	if !d.IsExported {
		b.WriteString("_Internal: not available to end users._\n\n")
	}

	if len(d.Args) == 0 {
		b.WriteString("Takes no arguments.\n")
		return b.String()
	}

	b.WriteString("## Arguments\n\n")
	b.WriteString("| Name | Types | Flags | Description |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, arg := range d.Args {
		types := make([]string, len(arg.Types))
		for i, t := range arg.Types {
			types[i] = t.Name()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			arg.Name, strings.Join(types, ", "), argFlags(arg), escapeCell(arg.Description))
	}
	return b.String()
}

func argFlags(arg schema.ArgDefinition) string {
	var flags []string
	switch {
	case arg.Repeating:
		flags = append(flags, "repeating")
	case arg.Default:
		flags = append(flags, "default="+arg.DefaultValue)
	case arg.Optional:
		flags = append(flags, "optional")
	}
	if arg.AcceptMatrixOnly {
		flags = append(flags, "range only")
	} else if arg.AcceptMatrix {
		flags = append(flags, "accepts range")
	}
	if len(flags) == 0 {
		return "required"
	}
	return strings.Join(flags, ", ")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
