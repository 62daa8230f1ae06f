package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellfn/internal/presentation/tui"
	"github.com/aretw0/cellfn/pkg/value"
)

func TestPrinter_Single(t *testing.T) {
	var buf bytes.Buffer
	p := tui.NewPlainPrinter(&buf)

	require.NoError(t, p.Print(value.SingleOutput(value.Of(5.0))))
	assert.Equal(t, "5\n", buf.String())

	buf.Reset()
	require.NoError(t, p.Print(value.SingleOutput(value.Payload{Value: 0.25, Format: "0%"})))
	assert.Equal(t, "0.25 (0%)\n", buf.String())

	buf.Reset()
	require.NoError(t, p.Print(value.SingleOutput(value.Payload{Value: "#DIV/0!", Message: "The divisor must be different from zero."})))
	assert.Equal(t, "#DIV/0!\nThe divisor must be different from zero.\n", buf.String())
}

func TestPrinter_Grid(t *testing.T) {
	var buf bytes.Buffer
	p := tui.NewPlainPrinter(&buf)

	grid := value.Values([][]value.CellValue{
		{"a", "bbb"},
		{1.0, true},
	})
	require.NoError(t, p.Print(value.GridOutput(grid)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "a    1", lines[0])
	assert.Equal(t, "bbb  TRUE", lines[1])
}

func TestRenderer_Plain(t *testing.T) {
	render, err := tui.NewRenderer(true)
	require.NoError(t, err)

	out, err := render("# SUM")
	require.NoError(t, err)
	assert.Equal(t, "# SUM", out)
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "v1.2.3")
	assert.Contains(t, buf.String(), "v1.2.3")
}
