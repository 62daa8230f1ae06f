package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"            _ _  __       ", "#34d399"},
	{"   ___ ___ | | |/ _|_ __  ", "#2dd4bf"},
	{"  / __/ _ \\| | | |_| '_ \\ ", "#22d3ee"},
	{" | (_|  __/| | |  _| | | |", "#38bdf8"},
	{"  \\___\\___||_|_|_| |_| |_|", "#60a5fa"},
}

// PrintBanner writes the cellfn banner followed by the version line.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()

	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, p.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w, p.String("  spreadsheet functions, "+version).Faint())
	fmt.Fprintln(w)
}
