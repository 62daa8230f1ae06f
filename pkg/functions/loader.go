package functions

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/cellfn/pkg/pipeline"
	"github.com/aretw0/cellfn/pkg/registry"
	"github.com/aretw0/cellfn/pkg/schema"
)

//go:embed manifest.yaml
var manifestData []byte

// Module is a group of function bodies sharing a default category. Keys are
// identifiers: "_" stands for "." in the public name.
type Module struct {
	Category  string
	Functions map[string]pipeline.Compute
}

// Modules returns the built-in modules.
func Modules() []Module {
	return []Module{
		arrayModule,
		filterModule,
		infoModule,
		logicalModule,
		lookupModule,
		mathModule,
		textModule,
	}
}

// ManifestEntry is the declarative part of a function descriptor.
type ManifestEntry struct {
	Description string   `mapstructure:"description"`
	Category    string   `mapstructure:"category"`
	Args        []string `mapstructure:"args"`
	Exported    bool     `mapstructure:"exported"`
	Hidden      bool     `mapstructure:"hidden"`
}

// Manifest maps identifiers to their entry.
type Manifest map[string]ManifestEntry

// DefaultManifest returns the embedded manifest.
func DefaultManifest() (Manifest, error) {
	return ParseManifest(manifestData)
}

// ParseManifest decodes a YAML manifest. Unknown keys are rejected.
func ParseManifest(data []byte) (Manifest, error) {
	var doc struct {
		Functions map[string]map[string]any `yaml:"functions"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	manifest := make(Manifest, len(doc.Functions))
	for ident, raw := range doc.Functions {
		var entry ManifestEntry
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			ErrorUnused: true,
			Result:      &entry,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(raw); err != nil {
			return nil, fmt.Errorf("failed to decode manifest entry %s: %w", ident, err)
		}
		manifest[ident] = entry
	}
	return manifest, nil
}

// Descriptor builds the registry descriptor of one entry.
func (e ManifestEntry) Descriptor(compute pipeline.Compute) (registry.Descriptor, error) {
	args := make([]schema.ArgDefinition, 0, len(e.Args))
	var errs []error
	for _, decl := range e.Args {
		def, err := schema.ParseArg(decl)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		args = append(args, def)
	}
	if len(errs) > 0 {
		return registry.Descriptor{}, &schema.AggregateError{Errors: errs}
	}
	return registry.Descriptor{
		Description: e.Description,
		Category:    e.Category,
		Args:        args,
		Compute:     compute,
		IsExported:  e.Exported,
		Hidden:      e.Hidden,
	}, nil
}

// Load registers every function of modules, described by manifest. Every
// function must have a manifest entry and every entry an implementation.
func Load(reg *registry.Registry, manifest Manifest, modules ...Module) error {
	implemented := make(map[string]bool)
	var errs []error

	for _, module := range modules {
		idents := make([]string, 0, len(module.Functions))
		for ident := range module.Functions {
			idents = append(idents, ident)
		}
		slices.Sort(idents)

		for _, ident := range idents {
			implemented[ident] = true
			entry, ok := manifest[ident]
			if !ok {
				errs = append(errs, fmt.Errorf("%s: no manifest entry", ident))
				continue
			}
			if entry.Category == "" {
				entry.Category = module.Category
			}
			d, err := entry.Descriptor(module.Functions[ident])
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", ident, err))
				continue
			}
			if _, err := reg.Add(strings.ReplaceAll(ident, "_", "."), d); err != nil {
				errs = append(errs, err)
			}
		}
	}

	for ident := range manifest {
		if !implemented[ident] {
			errs = append(errs, fmt.Errorf("%s: manifest entry has no implementation", ident))
		}
	}
	return errors.Join(errs...)
}

// NewRegistry returns a frozen registry holding every built-in function.
func NewRegistry(opts ...registry.Option) (*registry.Registry, error) {
	manifest, err := DefaultManifest()
	if err != nil {
		return nil, err
	}
	reg := registry.NewRegistry(opts...)
	if err := Load(reg, manifest, Modules()...); err != nil {
		return nil, fmt.Errorf("failed to load functions: %w", err)
	}
	reg.Freeze()
	return reg, nil
}
