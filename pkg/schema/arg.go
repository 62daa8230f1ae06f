package schema

import (
	"regexp"
	"strings"
)

// ArgDefinition declares one parameter of a function.
type ArgDefinition struct {
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Types        []ArgType `json:"types"`
	Optional     bool      `json:"optional,omitempty"`
	Repeating    bool      `json:"repeating,omitempty"`
	Default      bool      `json:"default,omitempty"`
	DefaultValue string    `json:"default_value,omitempty"`

	// AcceptMatrix: the parameter may receive a grid without broadcasting.
	AcceptMatrix bool `json:"accept_matrix,omitempty"`
	// AcceptMatrixOnly: the parameter must receive a grid.
	AcceptMatrixOnly bool `json:"accept_matrix_only,omitempty"`
}

// IsOptional reports whether the parameter may be left out of a call.
func (a ArgDefinition) IsOptional() bool {
	return a.Optional || a.Repeating || a.Default
}

var declPattern = regexp.MustCompile(`^\s*([^()]*?)\s*\((.*?)\)\s*(.*)$`)

// ParseArg parses a declaration of the form
//
//	name (type[, type...][, optional][, repeating][, default=VALUE]) description
func ParseArg(decl string) (ArgDefinition, error) {
	m := declPattern.FindStringSubmatch(decl)
	if m == nil {
		return ArgDefinition{}, &ValidationError{
			Key:    decl,
			Reason: `expected "name (type, ...) description"`,
		}
	}

	def := ArgDefinition{
		Name:        m[1],
		Description: strings.TrimSpace(m[3]),
	}
	if def.Name == "" {
		return ArgDefinition{}, &ValidationError{Key: decl, Reason: "name is required"}
	}

	for _, part := range strings.Split(m[2], ",") {
		part = strings.TrimSpace(part)
		lower := strings.ToLower(part)
		switch {
		case part == "":
			continue
		case lower == "optional":
			def.Optional = true
		case lower == "repeating":
			def.Repeating = true
		case strings.HasPrefix(lower, "default="):
			def.Default = true
			def.DefaultValue = strings.TrimSpace(part[len("default="):])
		default:
			t, err := ParseType(part)
			if err != nil {
				return ArgDefinition{}, &ValidationError{Key: def.Name, Reason: err.Error()}
			}
			def.Types = append(def.Types, t)
		}
	}
	if len(def.Types) == 0 {
		return ArgDefinition{}, &ValidationError{Key: def.Name, Reason: "at least one type is required"}
	}

	return WithMatrixFlags(def), nil
}

// Arg is like ParseArg but panics on a malformed declaration. It is meant for
// declarations written in source code.
func Arg(decl string) ArgDefinition {
	def, err := ParseArg(decl)
	if err != nil {
		panic("schema: " + err.Error())
	}
	return def
}

// WithMatrixFlags adds the AcceptMatrix and AcceptMatrixOnly flags implied by
// the declared types. Flags already set are kept; AcceptMatrixOnly implies
// AcceptMatrix.
func WithMatrixFlags(def ArgDefinition) ArgDefinition {
	ranges := 0
	for _, t := range def.Types {
		if t.IsRange() {
			ranges++
		}
	}
	def.AcceptMatrixOnly = def.AcceptMatrixOnly || (ranges > 0 && ranges == len(def.Types))
	def.AcceptMatrix = def.AcceptMatrix || def.AcceptMatrixOnly || ranges > 0
	return def
}
