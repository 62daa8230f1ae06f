package cellfn

import (
	"github.com/aretw0/cellfn/pkg/functions"
	"github.com/aretw0/cellfn/pkg/registry"
)

// New returns a frozen registry holding every built-in function.
// Options configure logging, call observation and override behaviour.
func New(opts ...registry.Option) (*registry.Registry, error) {
	return functions.NewRegistry(opts...)
}
