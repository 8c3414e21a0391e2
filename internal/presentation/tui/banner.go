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
	{"   __                      _                 ", "#34d399"},
	{"  / _| ___  _ __ _ __ ___ | |_ _ __ ___  ___ ", "#2dd4bf"},
	{" | |_ / _ \\| '__| '_ ` _ \\| __| '__/ _ \\/ _ \\", "#22d3ee"},
	{" |  _| (_) | |  | | | | | | |_| | |  __/  __/", "#38bdf8"},
	{" |_|  \\___/|_|  |_| |_| |_|\\__|_|  \\___|\\___|", "#60a5fa"},
}

// PrintBanner writes the formtree banner to w, coloured for the terminal
// profile of stdout.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w)
}

// Heading styles a section heading for terminal output.
func Heading(text string) string {
	p := termenv.ColorProfile()
	return termenv.String(text).Bold().Foreground(p.Color("#22d3ee")).String()
}

// Status styles a one-line result: green when ok, red otherwise.
func Status(text string, ok bool) string {
	p := termenv.ColorProfile()
	color := "#f87171"
	if ok {
		color = "#34d399"
	}
	return termenv.String(text).Foreground(p.Color(color)).String()
}
