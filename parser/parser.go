package parser

import (
	"bytes"
	"os"

	"github.com/alecthomas/participle/v2"

	"github.com/gongahkia/yuho/internal/diag"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var yuhoParser = participle.MustBuild[Module](
	participle.Lexer(yuhoLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// ParseResult is the outcome of parsing one source file: a concrete parse
// tree plus any recoverable diagnostics. Tree is nil only when every
// diagnostic is error-severity.
type ParseResult struct {
	Tree        *Module
	Diagnostics []diag.Diagnostic
}

// Parse parses Yuho source text, tagging every diagnostic with file for
// downstream reporting. A leading UTF-8 byte-order mark is stripped before
// lexing, since editors on every platform the language targets may emit one.
func Parse(source []byte, file string) *ParseResult {
	source = bytes.TrimPrefix(source, utf8BOM)

	tree, err := yuhoParser.ParseBytes(file, source)
	if err == nil {
		return &ParseResult{Tree: tree}
	}

	return &ParseResult{Tree: tree, Diagnostics: []diag.Diagnostic{translateError(err, file)}}
}

// ParseFile reads and parses the file at path, wrapping any IO failure as a
// ClassBoundary diagnostic rather than a raw error.
func ParseFile(path string) *ParseResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ParseResult{Diagnostics: []diag.Diagnostic{diag.Boundary("parser", err)}}
	}
	return Parse(data, path)
}

// translateError converts a participle parse error into a ClassParse
// Diagnostic, recovering the offending position when participle exposes one.
func translateError(err error, file string) diag.Diagnostic {
	d := diag.Diagnostic{
		Class:    diag.ClassParse,
		Severity: diag.SeverityError,
		Message:  err.Error(),
		NodeType: "Module",
		Location: diag.Location{File: file},
	}

	var perr participle.Error
	if ok := asParticipleError(err, &perr); ok {
		pos := perr.Position()
		d.Message = perr.Message()
		d.Location = diag.Location{
			File:      file,
			Line:      pos.Line,
			Col:       pos.Column,
			EndLine:   pos.Line,
			EndCol:    pos.Column,
			StartByte: pos.Offset,
			EndByte:   pos.Offset,
		}
	}
	return d
}

// asParticipleError extracts a participle.Error from err via errors.As,
// without importing the errors package into the exported signature above.
func asParticipleError(err error, target *participle.Error) bool {
	type unwrapper interface{ Unwrap() error }
	for e := err; e != nil; {
		if pe, ok := e.(participle.Error); ok {
			*target = pe
			return true
		}
		u, ok := e.(unwrapper)
		if !ok {
			return false
		}
		e = u.Unwrap()
	}
	return false
}
