package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/wintoast/wintoast/internal/args"
	"github.com/wintoast/wintoast/internal/build"
)

const (
	usageLine    = "Usage: wintoast [options] [title] [message]"
	defaultWidth = 80
	maxWidth     = 120
	minDescWidth = 20
)

// printUsage writes the help text. The option list is generated from the
// parser's alias table, so it cannot drift from what Parse accepts.
func printUsage(w io.Writer) {
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(w, "%s - desktop notifications from the command line\n", bold("wintoast"))
	fmt.Fprintln(w, dim(build.Summary()))
	fmt.Fprintln(w)
	fmt.Fprintln(w, usageLine)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")

	entries := usageEntries()
	column := 0
	for _, e := range entries {
		column = max(column, len(e.left))
	}

	width := terminalWidth(w)
	descWidth := max(width-column-4, minDescWidth)
	for _, e := range entries {
		lines := wrapWords(e.usage, descWidth)
		fmt.Fprintf(w, "  %-*s  %s\n", column, e.left, lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(w, "  %-*s  %s\n", column, "", line)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "The first bare argument is the title and the next one the message")
	fmt.Fprintln(w, "when they are not given as options.")
}

type usageEntry struct {
	left  string
	usage string
}

func usageEntries() []usageEntry {
	var entries []usageEntry
	for _, f := range args.Flags() {
		var names []string
		for _, alias := range f.Aliases {
			if strings.HasPrefix(alias, "-") {
				names = append(names, alias)
			}
		}
		left := strings.Join(names, ", ")
		if f.Placeholder != "" {
			left += " " + f.Placeholder
		}
		entries = append(entries, usageEntry{left: left, usage: f.Usage})
	}
	return entries
}

// terminalWidth returns the width of w when it is a terminal, clamped to
// maxWidth, or defaultWidth otherwise.
func terminalWidth(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return min(width, maxWidth)
}

// wrapWords splits text into lines of at most width runes, breaking on
// spaces. A single word longer than width gets a line of its own. The result
// always has at least one element.
func wrapWords(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len([]rune(current))+1+len([]rune(word)) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
