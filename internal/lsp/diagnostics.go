package lsp

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/Faultbox/objkit/pkg/obj"
)

const diagnosticSource = "objtool"

// Diagnose parses text and reports what is wrong with it. A parse error
// yields a single error diagnostic; otherwise, when validate is set, every
// out-of-range index becomes a warning on the record that declared it.
// The result is never nil so that publishing it clears stale diagnostics.
func Diagnose(text string, validate bool) []protocol.Diagnostic {
	lines := strings.Split(text, "\n")
	diagnostics := []protocol.Diagnostic{}

	set, sm, err := obj.ParseWithSourceMap(text)
	if err != nil {
		line := len(lines)
		var perr *obj.ParseError
		if errors.As(err, &perr) {
			line = perr.Line
		}
		return append(diagnostics, newDiagnostic(lines, line, protocol.DiagnosticSeverityError, err.Error()))
	}
	if !validate {
		return diagnostics
	}
	for _, p := range obj.Validate(set) {
		msg := fmt.Sprintf("%s index %d out of range (pool has %d)", p.Pool, p.Index, p.Size)
		line := sm.ElementLine(p.Object, p.Element)
		diagnostics = append(diagnostics, newDiagnostic(lines, line, protocol.DiagnosticSeverityWarning, msg))
	}
	return diagnostics
}

func newDiagnostic(lines []string, line int, severity protocol.DiagnosticSeverity, msg string) protocol.Diagnostic {
	source := diagnosticSource
	return protocol.Diagnostic{
		Range:    lineRange(lines, line, line),
		Severity: &severity,
		Source:   &source,
		Message:  msg,
	}
}

// lineRange spans the 1-based lines first through last of a document,
// clamped to its extent.
func lineRange(lines []string, first, last int) protocol.Range {
	clamp := func(n int) int { return max(1, min(n, len(lines))) }
	first, last = clamp(first), clamp(last)
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(first - 1)},
		End: protocol.Position{
			Line:      protocol.UInteger(last - 1),
			Character: protocol.UInteger(utf16Len(strings.TrimSuffix(lines[last-1], "\r"))),
		},
	}
}

// utf16Len counts the UTF-16 code units of s, the unit LSP positions use.
func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// Symbols lists the objects of text as document symbols. A document that
// does not parse has none.
func Symbols(text string) []protocol.DocumentSymbol {
	set, sm, err := obj.ParseWithSourceMap(text)
	if err != nil {
		return nil
	}
	lines := strings.Split(text, "\n")
	symbols := make([]protocol.DocumentSymbol, 0, set.Len())
	for i := range set.Objects {
		o := &set.Objects[i]
		first := sm.ObjectLines[i]
		last := len(lines)
		if i+1 < len(sm.ObjectLines) {
			last = sm.ObjectLines[i+1] - 1
		}

		name := o.Name
		if name == "" {
			name = "(unnamed)"
		}
		stats := o.Stats()
		detail := fmt.Sprintf("%d vertices, %d elements", stats.Vertices, len(o.Elements))
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           name,
			Detail:         &detail,
			Kind:           protocol.SymbolKindObject,
			Range:          lineRange(lines, first, last),
			SelectionRange: lineRange(lines, first, first),
		})
	}
	return symbols
}
