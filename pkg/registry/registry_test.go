package registry_test

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellfn/pkg/pipeline"
	"github.com/aretw0/cellfn/pkg/registry"
	"github.com/aretw0/cellfn/pkg/schema"
	"github.com/aretw0/cellfn/pkg/value"
)

func sum(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	total := 0.0
	for _, a := range args {
		for _, c := range a.Cells() {
			if f, ok := c.Value.(float64); ok {
				total += f
			}
		}
	}
	return value.ScalarResult(total), nil
}

func sumDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Description: "Sum of a series of numbers and/or cells.",
		Category:    "Math",
		Args: []schema.ArgDefinition{
			schema.Arg("value1 (number, range<number>) The first number or range to add together."),
			schema.Arg("value2 (number, range<number>, repeating) Additional numbers or ranges to add to value1."),
		},
		Compute: sum,
	}
}

func TestRegistry_AddAndInvoke(t *testing.T) {
	reg := registry.NewRegistry()

	call, err := reg.Add("sum", sumDescriptor())
	require.NoError(t, err)
	require.NotNil(t, call)

	assert.Equal(t, value.Payload{Value: 5.0}, reg.Invoke("SUM", nil, value.Args(2.0, 3.0)...).Payload())
	assert.Equal(t, value.Payload{Value: 5.0}, call(nil, value.Args(2.0, 3.0)...).Payload())

	d, ok := reg.Get("Sum")
	require.True(t, ok)
	assert.Equal(t, "SUM", d.Name)
	assert.Equal(t, 1, d.Signature.MinArgRequired)
	assert.Equal(t, schema.Unbounded, d.Signature.MaxArgPossible)
	assert.True(t, d.Args[0].AcceptMatrix)
	assert.Equal(t, "SUM(value1, [value2, ...])", d.Usage())
}

func TestRegistry_NameValidation(t *testing.T) {
	reg := registry.NewRegistry()

	_, err := reg.Add("SUM!", sumDescriptor())
	assert.ErrorIs(t, err, registry.ErrInvalidFunctionName)

	_, err = reg.Add("", sumDescriptor())
	assert.ErrorIs(t, err, registry.ErrInvalidFunctionName)

	// the loader turns FILTER_ROWS into filter.rows before registering
	_, err = reg.Add("filter.rows", sumDescriptor())
	require.NoError(t, err)
	_, ok := reg.Get("FILTER.ROWS")
	assert.True(t, ok)

	_, err = reg.Add("LOG_10", sumDescriptor())
	assert.NoError(t, err, "underscores are accepted by the registry itself")
}

func TestRegistry_InvalidDescriptor(t *testing.T) {
	reg := registry.NewRegistry()

	d := sumDescriptor()
	d.Compute = nil
	_, err := reg.Add("SUM", d)
	assert.ErrorIs(t, err, registry.ErrInvalidDescriptor)

	d = sumDescriptor()
	d.Args = []schema.ArgDefinition{
		schema.Arg("a (number, optional)"),
		schema.Arg("b (number)"),
	}
	_, err = reg.Add("BROKEN", d)
	require.ErrorIs(t, err, registry.ErrInvalidDescriptor)

	var validation *schema.ValidationError
	assert.True(t, errors.As(err, &validation))
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_Duplicates(t *testing.T) {
	reg := registry.NewRegistry()
	_, err := reg.Add("SUM", sumDescriptor())
	require.NoError(t, err)

	_, err = reg.Add("sum", sumDescriptor())
	assert.ErrorIs(t, err, registry.ErrDuplicateFunction)

	override := registry.NewRegistry(registry.WithOverride(true), registry.WithLogger(slog.New(slog.DiscardHandler)))
	_, err = override.Add("SUM", sumDescriptor())
	require.NoError(t, err)

	replacement := sumDescriptor()
	replacement.Description = "replaced"
	_, err = override.Add("SUM", replacement)
	require.NoError(t, err)

	d, _ := override.Get("SUM")
	assert.Equal(t, "replaced", d.Description)
	assert.Equal(t, 1, override.Len())
}

func TestRegistry_Freeze(t *testing.T) {
	reg := registry.NewRegistry()
	_, err := reg.Add("SUM", sumDescriptor())
	require.NoError(t, err)

	reg.Freeze()
	assert.True(t, reg.Frozen())

	_, err = reg.Add("PRODUCT", sumDescriptor())
	assert.ErrorIs(t, err, registry.ErrRegistryFrozen)
	assert.Equal(t, []string{"SUM"}, reg.Names())
}

func TestRegistry_UnknownFunction(t *testing.T) {
	reg := registry.NewRegistry()
	for _, name := range []string{"SUM", "SUMSQ", "PRODUCT"} {
		_, err := reg.Add(name, sumDescriptor())
		require.NoError(t, err)
	}
	reg.Freeze()

	_, err := reg.Lookup("summ")
	require.ErrorIs(t, err, registry.ErrUnknownFunction)

	var unknown *registry.UnknownFunctionError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "SUMM", unknown.Name)
	assert.Equal(t, []string{"SUM", "SUMSQ"}, unknown.Suggestions)

	out := reg.Invoke("summ", nil)
	assert.Equal(t, value.Payload{
		Value:   "#NAME?",
		Message: "Invalid formula: unknown function SUMM. Did you mean SUM, SUMSQ?",
	}, out.Payload())

	out = reg.Invoke("NOPE_AT_ALL", nil)
	assert.Equal(t, "Invalid formula: unknown function NOPE_AT_ALL", out.Payload().Message)
}

func TestRegistry_Introspection(t *testing.T) {
	reg := registry.NewRegistry()
	for name, category := range map[string]string{"UPPER": "Text", "SUM": "Math", "ABS": "Math"} {
		d := sumDescriptor()
		d.Category = category
		_, err := reg.Add(name, d)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"ABS", "SUM", "UPPER"}, reg.Names())
	assert.Equal(t, []string{"Math", "Text"}, reg.Categories())
}

func TestRegistry_ExplicitMatrixFlags(t *testing.T) {
	reg := registry.NewRegistry()

	var calls int
	var received value.Arg
	_, err := reg.Add("EXPL", registry.Descriptor{
		Args: []schema.ArgDefinition{
			{Name: "target", Types: []schema.ArgType{schema.TypeAny}, AcceptMatrix: true, AcceptMatrixOnly: true},
		},
		Compute: func(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
			calls++
			received = args[0]
			return value.ScalarResult(float64(len(args[0].Cells()))), nil
		},
	})
	require.NoError(t, err)

	d, ok := reg.Get("EXPL")
	require.True(t, ok)
	assert.True(t, d.Args[0].AcceptMatrix)
	assert.True(t, d.Args[0].AcceptMatrixOnly)

	out := reg.Invoke("EXPL", nil, value.Args(5.0)...)
	assert.Equal(t, "#BAD_EXPR", out.Payload().Value)
	assert.Equal(t, "Function EXPL expects the parameter '1' to be reference to a cell or range.", out.Payload().Message)
	assert.Zero(t, calls)

	out = reg.Invoke("EXPL", nil, value.RangeArg(value.Values([][]any{{1.0, 2.0, 3.0}})))
	require.False(t, out.IsGrid(), "a range must reach compute whole, not be broadcast")
	assert.Equal(t, 1, calls)
	assert.True(t, received.IsRange())
	assert.Equal(t, 3.0, out.Payload().Value)
}

func TestRegistry_ReadsDoNotAliasStorage(t *testing.T) {
	reg := registry.NewRegistry()
	_, err := reg.Add("SUM", sumDescriptor())
	require.NoError(t, err)

	d, ok := reg.Get("SUM")
	require.True(t, ok)
	d.Args[0].Name = "changed"
	d.Args[0].AcceptMatrix = false
	d.Signature.Args[1].Repeating = false

	for _, all := range reg.Descriptors() {
		all.Args[0].Name = "changed too"
	}

	again, ok := reg.Get("SUM")
	require.True(t, ok)
	assert.Equal(t, "value1", again.Args[0].Name)
	assert.True(t, again.Args[0].AcceptMatrix)
	assert.True(t, again.Signature.Args[1].Repeating)
}

func TestRegistry_LogsFaults(t *testing.T) {
	var logs bytes.Buffer
	reg := registry.NewRegistry(registry.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	_, err := reg.Add("CRASH", registry.Descriptor{
		Compute: func(pipeline.EvalContext, []value.Arg) (value.Result, error) {
			var m map[string]int
			m["x"] = 1
			return value.ScalarResult(nil), nil
		},
	})
	require.NoError(t, err)

	out := reg.Invoke("CRASH", nil)
	assert.Equal(t, "#ERROR", out.Payload().Value)
	assert.Contains(t, out.Payload().Message, "assignment to entry in nil map")
	assert.Contains(t, logs.String(), "function=CRASH")
}

func TestRegistry_ConcurrentInvoke(t *testing.T) {
	reg := registry.NewRegistry()
	_, err := reg.Add("SUM", sumDescriptor())
	require.NoError(t, err)
	reg.Freeze()

	grid := value.Values([][]value.CellValue{{1.0, 2.0}, {3.0, 4.0}})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				out := reg.Invoke("sum", nil, value.Args(grid, 10.0)...)
				if out.Payload().Value != 20.0 {
					t.Errorf("SUM = %v, want 20", out.Payload().Value)
					return
				}
			}
		}()
	}
	wg.Wait()
}
