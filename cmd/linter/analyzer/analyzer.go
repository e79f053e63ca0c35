// Package analyzer implements the abruptexit analyzer. Handlers and
// library code must surface failures as errors; only main is allowed to
// terminate the process.
package analyzer

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports calls that abruptly terminate the process (panic,
// os.Exit and the log.Fatal family) outside the main function.
var Analyzer = &analysis.Analyzer{
	Name:     "abruptexit",
	Doc:      "reports panic, os.Exit and log.Fatal calls outside the main function",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
	}

	insp.Preorder(nodeFilter, func(node ast.Node) {
		fn := node.(*ast.FuncDecl)
		if fn.Recv == nil && fn.Name.Name == "main" {
			return
		}

		ast.Inspect(fn, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			if name := abruptExitCall(pass, call); name != "" {
				pass.Reportf(call.Pos(), "%s is forbidden outside main function", name)
			}
			return true
		})
	})

	return nil, nil
}

// abruptExitCall returns the qualified name of the called function when it
// terminates the process, or "" otherwise.
func abruptExitCall(pass *analysis.Pass, call *ast.CallExpr) string {
	switch fn := call.Fun.(type) {
	case *ast.Ident:
		if fn.Name == "panic" {
			return "panic"
		}
		return ""
	case *ast.SelectorExpr:
		return abruptExitSelector(pass, fn)
	}

	return ""
}

func abruptExitSelector(pass *analysis.Pass, sel *ast.SelectorExpr) string {
	ident, ok := sel.X.(*ast.Ident)
	if !ok {
		return ""
	}

	pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	if !ok {
		return ""
	}

	fn := sel.Sel.Name

	switch path := pkgName.Imported().Path(); {
	case path == "os" && fn == "Exit":
		return "os.Exit"
	case path == "log" && strings.HasPrefix(fn, "Fatal"):
		return "log." + fn
	}

	return ""
}
