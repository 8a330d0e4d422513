package format

import "strings"

// DefaultIndentationUnit is used when Options.IndentationUnit is empty.
const DefaultIndentationUnit = "    "

type Options struct {
	// IndentationUnit is added for every nesting level of an inserted newline.
	IndentationUnit string
	// InitialIndentation is written before the first token and is the base
	// indentation of the first line.
	InitialIndentation string
	// LineEnding is written for every inserted newline; empty means "\n".
	LineEnding string
}

func (o Options) withDefaults() Options {
	if o.IndentationUnit == "" {
		o.IndentationUnit = DefaultIndentationUnit
	}
	if o.LineEnding == "" {
		o.LineEnding = "\n"
	}
	return o
}

// IndentUnit builds an indentation unit from a width and a tab switch.
func IndentUnit(width int, useTabs bool) string {
	if useTabs {
		return "\t"
	}
	if width <= 0 {
		return DefaultIndentationUnit
	}
	return strings.Repeat(" ", width)
}
