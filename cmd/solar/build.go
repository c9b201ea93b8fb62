package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/solarlang/solar/internal/ast"
	"github.com/solarlang/solar/internal/builtin"
	"github.com/solarlang/solar/internal/compiler"
	"github.com/solarlang/solar/internal/diag"
	"github.com/solarlang/solar/internal/funcstore"
	"github.com/solarlang/solar/internal/idpath"
	"github.com/solarlang/solar/internal/modindex"
	"github.com/solarlang/solar/internal/project"
	"github.com/solarlang/solar/internal/resolve"
	"github.com/solarlang/solar/internal/typestore"
)

// build drives the whole pipeline over the project rooted at root (§6):
// load the manifest closure, index every module, link built-in types,
// then compile "main" with no arguments from "self".
func build(stdout, stderr io.Writer, root string) error {
	fmt.Fprintln(stdout, "loading project...")
	projects, err := project.Load(root)
	if err != nil {
		return fmt.Errorf("solar: %w", err)
	}

	fmt.Fprintln(stdout, "indexing modules...")
	global, err := modindex.BuildAll(projects)
	if err != nil {
		return fmt.Errorf("solar: %w", err)
	}

	types := typestore.New()
	if err := builtin.LinkBuiltinTypes(global, types); err != nil {
		return fmt.Errorf("solar: %w", err)
	}

	selfModule, ok := global.Get(idpath.Self)
	if !ok {
		return fmt.Errorf("solar: no source files found under %s", root)
	}
	candidates := resolve.FindSymbol(selfModule, idpath.Self, "main")
	if len(candidates) == 0 {
		return fmt.Errorf("solar: no 'main' declared in %s", root)
	}
	if len(candidates) > 1 {
		return fmt.Errorf("solar: multiple declarations named 'main' in %s", root)
	}

	ctx := compiler.NewContext(projects, global, types, funcstore.New())
	fmt.Fprintln(stdout, "compiling main...")
	_, _, compileErr := ctx.CompileSymbol(candidates[0], nil)
	if compileErr != nil {
		printDiag(stderr, compileErr, global)
		return fmt.Errorf("solar: compilation failed")
	}

	fmt.Fprintln(stdout, "ok")
	return nil
}

// printDiag formats a diag.Error with source context and a caret,
// mirroring the teacher's formatTypeError.
func printDiag(stderr io.Writer, err error, global *modindex.Global) {
	d, ok := err.(diag.Error)
	if !ok {
		fmt.Fprintln(stderr, err.Error())
		return
	}

	span := d.Span()
	source := findSource(global, span.SourceID)
	if source == nil || span.Start.Line == 0 {
		fmt.Fprintf(stderr, "%s\n", d.Message())
		return
	}

	lines := strings.Split(source.Contents, "\n")
	fmt.Fprintf(stderr, "%s:%s: %s\n\n", source.Path, span.Start.String(), d.Message())

	if span.Start.Line-1 >= len(lines) {
		return
	}
	lineNum := strconv.Itoa(span.Start.Line) + ":"
	fmt.Fprintf(stderr, "%-4s%s\n", lineNum, lines[span.Start.Line-1])
	fmt.Fprint(stderr, strings.Repeat(" ", 4+span.Start.Column-1))
	fmt.Fprintln(stderr, strings.Repeat("^", max(1, span.End.Column-span.Start.Column)))
}

func findSource(global *modindex.Global, sourceID int) *ast.Source {
	var found *ast.Source
	global.Iter(func(_ idpath.Path, mod *modindex.Module) {
		if found != nil {
			return
		}
		for _, file := range mod.Files {
			if file.Source.ID == sourceID {
				found = file.Source
				return
			}
		}
	})
	return found
}
