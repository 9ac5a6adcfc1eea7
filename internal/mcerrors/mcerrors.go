// Package mcerrors formats parse and type diagnostics for a human reader:
// the offending tile run rendered as a bracketed sequence with a caret line
// under the span, followed by the message. The layout follows the
// line/caret convention of a source-text compiler error, adapted from
// line:column source positions to half-open tile-index spans.
package mcerrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
)

// ErrInvalidArguments marks a programmer-error condition at the façade
// boundary (out-of-range from/to, a nil registry bundle) as distinguished
// from an in-band diagnostic. Callers can match it with errors.Is.
var ErrInvalidArguments = errors.New("mindcraft: invalid arguments")

// TileError is one formatted diagnostic over a tile sequence.
type TileError struct {
	Message string
	Tiles   []*mctile.TileDef
	Span    mctile.Span
}

func NewTileError(message string, tiles []*mctile.TileDef, span mctile.Span) *TileError {
	return &TileError{Message: message, Tiles: tiles, Span: span}
}

func (e *TileError) Error() string {
	return e.Format(false)
}

// Format renders the error with a bracketed tile dump and a caret line
// under the span. If color is true, ANSI codes highlight the caret and
// message, mirroring the plain/color toggle of a terminal-facing formatter.
func (e *TileError) Format(color bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error at tiles [%d,%d)\n", e.Span.From, e.Span.To))

	line, caret := e.renderTileLine()
	if line != "" {
		sb.WriteString(line)
		sb.WriteString("\n")
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString(caret)
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// renderTileLine dumps every tile as "[label]" separated by a space and
// builds a caret line of matching width under the tiles inside e.Span.
func (e *TileError) renderTileLine() (string, string) {
	if len(e.Tiles) == 0 {
		return "", ""
	}
	var line, caret strings.Builder
	for i, t := range e.Tiles {
		label := tileLabel(t)
		seg := "[" + label + "]"
		if i > 0 {
			line.WriteString(" ")
			caret.WriteString(" ")
		}
		line.WriteString(seg)
		if e.Span.Contains(i) {
			caret.WriteString(strings.Repeat("^", len(seg)))
		} else {
			caret.WriteString(strings.Repeat(" ", len(seg)))
		}
	}
	return line.String(), caret.String()
}

func tileLabel(t *mctile.TileDef) string {
	if t == nil {
		return "?"
	}
	if t.Label != "" {
		return t.Label
	}
	return string(t.TileID)
}

// FormatTileErrors renders multiple TileErrors, numbering them when there is
// more than one.
func FormatTileErrors(errs []*TileError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compilation failed with %d error(s):\n\n", len(errs)))
	for i, e := range errs {
		sb.WriteString(fmt.Sprintf("[Error %d of %d]\n", i+1, len(errs)))
		sb.WriteString(e.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
