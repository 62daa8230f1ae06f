package functions

import (
	"fmt"
	"strings"

	"github.com/aretw0/cellfn/pkg/pipeline"
	"github.com/aretw0/cellfn/pkg/value"
)

var lookupModule = Module{
	Category: "Lookup",
	Functions: map[string]pipeline.Compute{
		"COLUMNS": columns,
		"ROWS":    rows,
		"VLOOKUP": vlookup,
	},
}

func columns(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	return value.ScalarResult(float64(args[0].Grid().NumCols())), nil
}

func rows(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	return value.ScalarResult(float64(args[0].Grid().NumRows())), nil
}

func vlookup(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	key := args[0].Payload()
	if err, ok := value.AsEvaluationError(key); ok {
		return value.Result{}, err
	}
	g := args[1].Grid()

	index, err := toNumber(args[2].Payload())
	if err != nil {
		return value.Result{}, err
	}
	col := int(index) - 1
	if col < 0 || col >= g.NumCols() {
		return value.Result{}, value.NewInvalidReferenceError("[[FUNCTION_NAME]] evaluates to an out of bounds range.")
	}

	sorted, err := booleanOr(args, 3, false)
	if err != nil {
		return value.Result{}, err
	}

	var row int
	if sorted {
		row = approximateMatch(g[0], key)
	} else {
		row = exactMatch(g[0], key)
	}
	if row < 0 {
		return value.Result{}, value.NewNotAvailableError(fmt.Sprintf("Did not find value '%s' in [[FUNCTION_NAME]] evaluation.", key.String()))
	}
	return value.PayloadResult(g[col][row]), nil
}

// exactMatch compares numbers by value and text case-insensitively.
func exactMatch(cells []value.Payload, key value.Payload) int {
	for i, cell := range cells {
		if sameCell(cell, key) {
			return i
		}
	}
	return -1
}

func sameCell(a, b value.Payload) bool {
	switch av := a.Value.(type) {
	case string:
		bv, ok := b.Value.(string)
		return ok && strings.EqualFold(av, bv)
	default:
		return a.Value == b.Value
	}
}

// approximateMatch returns the last row whose value does not exceed key, in a
// column sorted in ascending order. Cells of another type than key are skipped.
func approximateMatch(cells []value.Payload, key value.Payload) int {
	match := -1
	for i, cell := range cells {
		cmp, ok := compareCells(cell, key)
		if !ok {
			continue
		}
		if cmp > 0 {
			break
		}
		match = i
	}
	return match
}

func compareCells(a, b value.Payload) (int, bool) {
	switch av := a.Value.(type) {
	case float64:
		bv, ok := b.Value.(float64)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		}
		return 0, true
	case string:
		bv, ok := b.Value.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(strings.ToLower(av), strings.ToLower(bv)), true
	default:
		return 0, false
	}
}
