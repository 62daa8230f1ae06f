package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_ColumnMajor(t *testing.T) {
	// A1:C2 -> three columns of two rows
	g := FromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})

	require.Equal(t, 3, g.NumCols())
	require.Equal(t, 2, g.NumRows())
	assert.Equal(t, []int{1, 4}, g[0])
	assert.Equal(t, 6, g.At(2, 1))
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, g.Rows())
}

func TestGrid_Shape(t *testing.T) {
	tests := []struct {
		name   string
		grid   Grid[int]
		empty  bool
		single bool
	}{
		{"nil", nil, true, false},
		{"no rows", Grid[int]{{}, {}}, true, false},
		{"single", Grid[int]{{7}}, false, true},
		{"column", Grid[int]{{1, 2}}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.grid.IsEmpty())
			assert.Equal(t, tt.single, tt.grid.IsSingle())
		})
	}
}

func TestGrid_MapAndForEach(t *testing.T) {
	g := NewGrid(2, 3, func(col, row int) int { return col*10 + row })
	assert.Equal(t, Grid[int]{{0, 1, 2}, {10, 11, 12}}, g)

	doubled := Map(g, func(v int) int { return v * 2 })
	assert.Equal(t, 24, doubled.At(1, 2))

	g.ForEach(func(_, _ int, v *int) { *v = -*v })
	assert.Equal(t, -12, g.At(1, 2), "ForEach updates cells in place")
}

func TestGrid_Validate(t *testing.T) {
	require.NoError(t, Grid[int]{{1, 2}, {3, 4}}.Validate())

	err := Grid[int]{{1, 2}, {3}}.Validate()
	require.ErrorIs(t, err, ErrRaggedGrid)
}

func TestValues(t *testing.T) {
	g := Values([][]CellValue{{1.0, "a"}})
	require.Equal(t, 1, g.NumCols())
	assert.Equal(t, Of("a"), g.At(0, 1))
}
