package main

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/solarlang/solar/internal/ast"
	"github.com/solarlang/solar/internal/builtin"
	"github.com/solarlang/solar/internal/compiler"
	"github.com/solarlang/solar/internal/diag"
	"github.com/solarlang/solar/internal/funcstore"
	"github.com/solarlang/solar/internal/idpath"
	"github.com/solarlang/solar/internal/manifest"
	"github.com/solarlang/solar/internal/modindex"
	"github.com/solarlang/solar/internal/parser"
	"github.com/solarlang/solar/internal/project"
	"github.com/solarlang/solar/internal/resolve"
	"github.com/solarlang/solar/internal/typestore"
)

// validate parses contents standalone for immediate syntax feedback,
// then — if uri sits under a directory with a solar.yaml — runs the
// full project pipeline and surfaces the first compile diagnostic too.
// It introduces no new compiler semantics: the same parser and
// compiler package cmd/solar drives are used here.
func (s *Server) validate(context *glsp.Context, uri protocol.DocumentUri, contents string) {
	path := uriToPath(uri)
	source := &ast.Source{ID: 0, Path: path, Contents: contents}

	p := parser.New(source)
	_, parseErrors := p.ParseFile()

	diagnostics := make([]protocol.Diagnostic, 0, len(parseErrors))
	for _, err := range parseErrors {
		diagnostics = append(diagnostics, spanToDiagnostic(err.Span, err.Message))
	}

	if len(diagnostics) == 0 {
		if compileErr := compileProjectFor(path); compileErr != nil {
			diagnostics = append(diagnostics, spanToDiagnostic(compileErr.Span(), compileErr.Message()))
		}
	}

	go context.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// compileProjectFor walks up from path looking for a solar.yaml, and if
// found, runs the full pipeline and returns the first diagnostic from
// compiling "main" (nil if the project compiles cleanly or can't be
// located — a missing project root is not itself a diagnostic).
func compileProjectFor(path string) diag.Error {
	root := findProjectRoot(filepath.Dir(path))
	if root == "" {
		return nil
	}

	projects, err := project.Load(root)
	if err != nil {
		return nil
	}
	global, err := modindex.BuildAll(projects)
	if err != nil {
		return nil
	}
	types := typestore.New()
	if err := builtin.LinkBuiltinTypes(global, types); err != nil {
		return nil
	}

	selfModule, ok := global.Get(idpath.Self)
	if !ok {
		return nil
	}
	candidates := resolve.FindSymbol(selfModule, idpath.Self, "main")
	if len(candidates) != 1 {
		return nil
	}

	ctx := compiler.NewContext(projects, global, types, funcstore.New())
	_, _, compileErr := ctx.CompileSymbol(candidates[0], nil)
	if compileErr == nil {
		return nil
	}
	if d, ok := compileErr.(diag.Error); ok {
		return d
	}
	return nil
}

func findProjectRoot(dir string) string {
	for {
		if _, err := os.Stat(filepath.Join(dir, manifest.FileName)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func uriToPath(uri protocol.DocumentUri) string {
	u, err := url.Parse(string(uri))
	if err != nil {
		return strings.TrimPrefix(string(uri), "file://")
	}
	return u.Path
}

func spanToDiagnostic(span ast.Span, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      protocol.UInteger(max(span.Start.Line-1, 0)),
				Character: protocol.UInteger(max(span.Start.Column-1, 0)),
			},
			End: protocol.Position{
				Line:      protocol.UInteger(max(span.End.Line-1, 0)),
				Character: protocol.UInteger(max(span.End.Column-1, 0)),
			},
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}
