package registry

import (
	"slices"

	"github.com/aretw0/cellfn/pkg/pipeline"
	"github.com/aretw0/cellfn/pkg/schema"
)

// Descriptor is the canonical description of a registered function.
// It is immutable once registered.
type Descriptor struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Category    string                 `json:"category,omitempty"`
	Args        []schema.ArgDefinition `json:"args"`
	IsExported  bool                   `json:"is_exported"`
	Hidden      bool                   `json:"hidden,omitempty"`

	Compute   pipeline.Compute `json:"-"`
	Signature schema.Signature `json:"-"`
}

// Usage renders a call template such as SUM(value1, [value2, ...]).
func (d Descriptor) Usage() string {
	return d.Signature.Usage(d.Name)
}

// clone copies the argument slices so callers cannot alter a registered entry.
func (d Descriptor) clone() Descriptor {
	d.Args = slices.Clone(d.Args)
	d.Signature.Args = d.Args
	return d
}
