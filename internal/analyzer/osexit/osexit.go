// Package osexit определяет анализатор, запрещающий прямой вызов os.Exit
// в функции main пакета main.
package osexit

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Analyzer сообщает о вызовах os.Exit внутри main.main.
// Завершение процесса оттуда пропускает отложенные вызовы, например закрытие пула БД
var Analyzer = &analysis.Analyzer{
	Name: "osexit",
	Doc:  "forbids direct os.Exit calls in the main function of package main",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	for _, file := range pass.Files {
		// go test собирает сгенерированный main во временном каталоге сборки
		if strings.Contains(pass.Fset.Position(file.Pos()).Filename, "go-build") {
			continue
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
				continue
			}
			inspectMain(pass, fn.Body)
		}
	}

	return nil, nil
}

func inspectMain(pass *analysis.Pass, body *ast.BlockStmt) {
	ast.Inspect(body, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok {
			return true
		}

		if isOSExit(pass, call) {
			pass.Reportf(call.Pos(), "direct call to os.Exit in main function of package main")
		}
		return true
	})
}

func isOSExit(pass *analysis.Pass, call *ast.CallExpr) bool {
	selector, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}

	fn, ok := pass.TypesInfo.Uses[selector.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}

	return fn.Pkg().Path() == "os" && fn.Name() == "Exit"
}
