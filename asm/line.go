package asm

import (
	"strings"
)

// LineKind is the classification of a source line.
type LineKind int

const (
	LINE_INSTRUCTION = LineKind(0)
	LINE_CONSTANT    = LineKind(1)
	LINE_LABEL       = LineKind(2)
)

const (
	commentMarker  = "///"
	labelMarker    = "::"
	constantMarker = ":="
)

// IsComment reports whether a line is a comment.
func IsComment(line string) bool {
	return strings.HasPrefix(line, commentMarker)
}

// IsBlank reports whether a line holds only whitespace.
func IsBlank(line string) bool {
	return len(strings.TrimSpace(line)) == 0
}

// Classify determines the kind of a non-blank, non-comment line. Labels are
// checked before constants.
func Classify(line string) LineKind {
	switch {
	case strings.Contains(line, labelMarker):
		return LINE_LABEL
	case strings.Contains(line, constantMarker):
		return LINE_CONSTANT
	default:
		return LINE_INSTRUCTION
	}
}

// ParseConstant splits a "NAME := value" directive.
func ParseConstant(line string) (name string, value string, err error) {
	parts := strings.Split(line, constantMarker)
	if len(parts) != 2 {
		err = ErrConstantFormat(line)
		return
	}

	name = strings.TrimSpace(parts[0])
	value = strings.TrimSpace(parts[1])
	if len(name) == 0 || len(value) == 0 {
		name, value = "", ""
		err = ErrConstantFormat(line)
		return
	}

	return
}

// ParseLabel extracts the name of a "NAME::" directive.
func ParseLabel(line string) (name string, err error) {
	before, after, _ := strings.Cut(line, labelMarker)

	name = strings.TrimSpace(before)
	if len(name) == 0 || len(strings.TrimSpace(after)) != 0 {
		name = ""
		err = ErrLabelFormat(line)
		return
	}

	return
}

// Words splits an instruction line on whitespace.
func Words(line string) []string {
	return strings.Fields(line)
}
