package observability_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellfn/pkg/observability"
	"github.com/aretw0/cellfn/pkg/pipeline"
	"github.com/aretw0/cellfn/pkg/schema"
	"github.com/aretw0/cellfn/pkg/value"
)

func TestMetrics_Observer(t *testing.T) {
	metrics := observability.NewMetrics()

	sig := schema.NewSignature([]schema.ArgDefinition{schema.Arg("value (number)")})
	call := pipeline.Wrap("CHECK", sig, func(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
		switch args[0].Value() {
		case 0.0:
			return value.Result{}, value.NewNumberError("zero")
		case -1.0:
			panic("negative")
		}
		return value.ScalarResult(args[0].Value()), nil
	}, pipeline.WithObserver(metrics), pipeline.WithLogger(slog.New(slog.DiscardHandler)))

	call(nil, value.Args(1.0)...)
	call(nil, value.Args(value.Values([][]value.CellValue{{1.0, 2.0, 3.0}}))...)
	call(nil, value.Args(0.0)...)
	call(nil, value.Args(-1.0)...)

	expected := `
# HELP cellfn_function_calls_total Total number of wrapped function calls, by outcome
# TYPE cellfn_function_calls_total counter
cellfn_function_calls_total{function="CHECK",outcome="evaluation_error"} 1
cellfn_function_calls_total{function="CHECK",outcome="implementation_error"} 1
cellfn_function_calls_total{function="CHECK",outcome="success"} 2
# HELP cellfn_function_faults_total Total number of implementation errors caught by the pipeline
# TYPE cellfn_function_faults_total counter
cellfn_function_faults_total{function="CHECK"} 1
# HELP cellfn_broadcast_cells_total Total number of output cells produced by broadcasting
# TYPE cellfn_broadcast_cells_total counter
cellfn_broadcast_cells_total{function="CHECK"} 3
`
	err := testutil.GatherAndCompare(metrics.Registry(), strings.NewReader(expected),
		"cellfn_function_calls_total", "cellfn_function_faults_total", "cellfn_broadcast_cells_total")
	assert.NoError(t, err)
}

func TestMetrics_Handler(t *testing.T) {
	metrics := observability.NewMetrics()
	metrics.ObserveCall("SUM", pipeline.OutcomeSuccess)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `cellfn_function_calls_total{function="SUM",outcome="success"} 1`)
}
