package linter

import (
	"go/ast"
	"go/constant"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// RedirectAnalyzer - анализатор открытых редиректов.
// Сообщает о вызовах http.Redirect и Header().Set/Add("Location", ...), адрес в которых
// получен из *http.Request той же функции и не прошел через санитайзер.
var RedirectAnalyzer = &analysis.Analyzer{
	Name:     "openredirect",
	Doc:      "check for redirect targets taken from the request without validation",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runRedirect,
}

// sanitizers - имена функций и методов, результат которых считается проверенным адресом.
var sanitizers = "Resolve"

func init() {
	RedirectAnalyzer.Flags.StringVar(&sanitizers, "sanitizers", sanitizers,
		"comma-separated names of functions whose result is a validated redirect target")
}

const requestType = "*net/http.Request"

func sanitizerSet() map[string]bool {
	set := make(map[string]bool)
	for _, name := range strings.Split(sanitizers, ",") {
		if name = strings.TrimSpace(name); name != "" {
			set[name] = true
		}
	}
	return set
}

func runRedirect(pass *analysis.Pass) (interface{}, error) {
	i := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	safe := sanitizerSet()

	i.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fn := n.(*ast.FuncDecl)
		if fn.Body == nil {
			return
		}
		t := &taint{pass: pass, sanitizers: safe, objects: make(map[types.Object]bool)}
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			switch x := n.(type) {
			case *ast.AssignStmt:
				t.assign(x.Lhs, x.Rhs)
			case *ast.ValueSpec:
				lhs := make([]ast.Expr, len(x.Names))
				for j, name := range x.Names {
					lhs[j] = name
				}
				t.assign(lhs, x.Values)
			case *ast.CallExpr:
				if arg := sinkArg(pass, x); arg != nil && t.tainted(arg) {
					pass.Reportf(arg.Pos(), "open redirect: redirect target is derived from the request")
				}
			}
			return true
		})
	})
	return nil, nil
}

// taint - значения функции, зависящие от входящего запроса.
type taint struct {
	pass       *analysis.Pass
	sanitizers map[string]bool
	objects    map[types.Object]bool
}

func (t *taint) assign(lhs, rhs []ast.Expr) {
	for i, l := range lhs {
		var tainted bool
		switch {
		case len(lhs) == len(rhs):
			tainted = t.tainted(rhs[i])
		case len(rhs) == 1:
			tainted = t.tainted(rhs[0])
		}
		ident, ok := l.(*ast.Ident)
		if !ok {
			continue
		}
		if obj := t.pass.TypesInfo.ObjectOf(ident); obj != nil {
			t.objects[obj] = tainted
		}
	}
}

func (t *taint) tainted(expr ast.Expr) bool {
	found := false
	ast.Inspect(expr, func(n ast.Node) bool {
		if found {
			return false
		}
		switch x := n.(type) {
		case *ast.CallExpr:
			if t.sanitizers[calleeName(x)] {
				return false
			}
		case *ast.Ident:
			if tv := t.pass.TypesInfo.TypeOf(x); tv != nil && tv.String() == requestType {
				found = true
			} else if obj := t.pass.TypesInfo.ObjectOf(x); obj != nil && t.objects[obj] {
				found = true
			}
		}
		return !found
	})
	return found
}

func calleeName(call *ast.CallExpr) string {
	switch fun := call.Fun.(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		return fun.Sel.Name
	}
	return ""
}

// sinkArg возвращает аргумент вызова, задающий адрес перенаправления, или nil.
func sinkArg(pass *analysis.Pass, call *ast.CallExpr) ast.Expr {
	fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != "net/http" {
		return nil
	}

	sig := fn.Type().(*types.Signature)
	if sig.Recv() == nil {
		if fn.Name() == "Redirect" && len(call.Args) == 4 {
			return call.Args[2]
		}
		return nil
	}

	if sig.Recv().Type().String() != "net/http.Header" || len(call.Args) != 2 {
		return nil
	}
	if fn.Name() != "Set" && fn.Name() != "Add" {
		return nil
	}
	key := pass.TypesInfo.Types[call.Args[0]].Value
	if key == nil || key.Kind() != constant.String || !strings.EqualFold(constant.StringVal(key), "Location") {
		return nil
	}
	return call.Args[1]
}
