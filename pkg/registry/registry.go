package registry

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/agnivade/levenshtein"

	"github.com/aretw0/cellfn/pkg/pipeline"
	"github.com/aretw0/cellfn/pkg/schema"
	"github.com/aretw0/cellfn/pkg/value"
)

var namePattern = regexp.MustCompile(`^[A-Z0-9_.]+$`)

const (
	maxSuggestions        = 3
	maxSuggestionDistance = 2
)

type entry struct {
	descriptor Descriptor
	call       pipeline.Callable
}

// Registry maps canonical function names to their descriptor and wrapped
// callable. It is filled once at startup and frozen; after Freeze, reads do
// not lock.
type Registry struct {
	mu      sync.RWMutex
	frozen  atomic.Bool
	entries map[string]entry

	logger   *slog.Logger
	observer pipeline.Observer
	override bool
}

// NewRegistry creates a new empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Add validates the descriptor, wraps its compute callable and stores it under
// the uppercased name. The wrapped callable is returned.
func (r *Registry) Add(name string, d Descriptor) (pipeline.Callable, error) {
	name = strings.ToUpper(name)
	if !namePattern.MatchString(name) {
		return nil, fmt.Errorf("%w %q: function names can only contain alphanumerical characters separated by dots (.) or underscores (_)", ErrInvalidFunctionName, name)
	}
	if d.Compute == nil {
		return nil, fmt.Errorf("%w: %s: compute is required", ErrInvalidDescriptor, name)
	}

	d.Name = name
	args := make([]schema.ArgDefinition, len(d.Args))
	for i, arg := range d.Args {
		args[i] = schema.WithMatrixFlags(arg)
	}
	d.Args = args
	if err := schema.Validate(d.Args); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDescriptor, name, err)
	}
	d.Signature = schema.NewSignature(d.Args)

	opts := []pipeline.Option{pipeline.WithLogger(r.logger)}
	if r.observer != nil {
		opts = append(opts, pipeline.WithObserver(r.observer))
	}
	call := pipeline.Wrap(name, d.Signature, d.Compute, opts...)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		return nil, fmt.Errorf("%w: cannot add %s", ErrRegistryFrozen, name)
	}
	if _, exists := r.entries[name]; exists {
		if !r.override {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFunction, name)
		}
		r.logger.Warn("function replaced", "function", name)
	}
	r.entries[name] = entry{descriptor: d, call: call}
	r.logger.Debug("function registered", "function", name, "category", d.Category, "args", len(d.Args))

	return call, nil
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen.Store(true)
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen.Load()
}

func (r *Registry) get(name string) (entry, bool) {
	if !r.frozen.Load() {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}
	e, ok := r.entries[strings.ToUpper(name)]
	return e, ok
}

// Lookup returns the wrapped callable registered under name (case-insensitive).
// Unknown names yield an *UnknownFunctionError matching ErrUnknownFunction.
func (r *Registry) Lookup(name string) (pipeline.Callable, error) {
	e, ok := r.get(name)
	if !ok {
		return nil, &UnknownFunctionError{
			Name:        strings.ToUpper(name),
			Suggestions: r.suggest(strings.ToUpper(name)),
		}
	}
	return e.call, nil
}

// Get returns the descriptor registered under name (case-insensitive).
func (r *Registry) Get(name string) (Descriptor, bool) {
	e, ok := r.get(name)
	if !ok {
		return Descriptor{}, false
	}
	return e.descriptor.clone(), true
}

// Invoke calls the function registered under name. It never panics: an unknown
// name yields a #NAME? payload.
func (r *Registry) Invoke(name string, ctx pipeline.EvalContext, args ...value.Arg) value.Output {
	call, err := r.Lookup(name)
	if err != nil {
		msg := "Invalid formula: unknown function " + strings.ToUpper(name)
		var unknown *UnknownFunctionError
		if errors.As(err, &unknown) && len(unknown.Suggestions) > 0 {
			msg += ". Did you mean " + strings.Join(unknown.Suggestions, ", ") + "?"
		}
		return value.SingleOutput(value.NewUnknownFunctionError(msg).Payload())
	}
	return call(ctx, args...)
}

// Len returns the number of registered functions.
func (r *Registry) Len() int {
	if !r.frozen.Load() {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}
	return len(r.entries)
}

// Names returns every canonical name, sorted.
func (r *Registry) Names() []string {
	descriptors := r.Descriptors()
	names := make([]string, len(descriptors))
	for i, d := range descriptors {
		names[i] = d.Name
	}
	return names
}

// Descriptors returns every descriptor, sorted by name.
func (r *Registry) Descriptors() []Descriptor {
	if !r.frozen.Load() {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}
	out := make([]Descriptor, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.descriptor.clone())
	}
	slices.SortFunc(out, func(a, b Descriptor) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

// Categories returns the distinct categories, sorted.
func (r *Registry) Categories() []string {
	var categories []string
	for _, d := range r.Descriptors() {
		if d.Category != "" {
			categories = append(categories, d.Category)
		}
	}
	slices.Sort(categories)
	return slices.Compact(categories)
}

type suggestion struct {
	name     string
	distance int
}

func (r *Registry) suggest(name string) []string {
	var candidates []suggestion
	for _, known := range r.Names() {
		if d := levenshtein.ComputeDistance(name, known); d <= maxSuggestionDistance {
			candidates = append(candidates, suggestion{name: known, distance: d})
		}
	}
	slices.SortStableFunc(candidates, func(a, b suggestion) int { return cmp.Compare(a.distance, b.distance) })

	var out []string
	for _, c := range candidates[:min(len(candidates), maxSuggestions)] {
		out = append(out, c.name)
	}
	return out
}
