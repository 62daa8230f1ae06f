package schema

import "strings"

// String renders the declaration back in the form accepted by ParseArg.
func (a ArgDefinition) String() string {
	parts := make([]string, 0, len(a.Types)+3)
	for _, t := range a.Types {
		parts = append(parts, strings.ToLower(string(t)))
	}
	if a.Optional {
		parts = append(parts, "optional")
	}
	if a.Repeating {
		parts = append(parts, "repeating")
	}
	if a.Default {
		parts = append(parts, "default="+a.DefaultValue)
	}

	var sb strings.Builder
	sb.WriteString(a.Name)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString(")")
	if a.Description != "" {
		sb.WriteString(" ")
		sb.WriteString(a.Description)
	}
	return sb.String()
}

// Usage renders a call template such as SUM(value1, [value2, ...]).
func (s Signature) Usage(name string) string {
	parts := make([]string, 0, len(s.Args))
	for _, arg := range s.Args {
		switch {
		case arg.Repeating:
			parts = append(parts, "["+arg.Name+", ...]")
		case arg.IsOptional():
			parts = append(parts, "["+arg.Name+"]")
		default:
			parts = append(parts, arg.Name)
		}
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}
