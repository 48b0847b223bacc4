// staticlint - набор статических анализаторов проекта.
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
//
// Включает анализаторы класса SA из staticcheck, errwrap, часть стандартных проходов
// golang.org/x/tools, а также собственные анализаторы пакета linter:
// openredirect (адрес перенаправления из запроса без проверки) и exitcheck (os.Exit в main).
package main

import (
	"strings"

	"github.com/fatih/errwrap/errwrap"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/staticcheck"

	"github.com/Dorrrke/open-redirect/pkg/linter"
)

func main() {
	// определяем список подключаемых правил
	mychecks := []*analysis.Analyzer{
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		errwrap.Analyzer,
		linter.RedirectAnalyzer,
		linter.ExitAnalyzer,
	}
	for _, v := range staticcheck.Analyzers {
		// добавляем в массив нужные проверки
		if strings.HasPrefix(v.Analyzer.Name, "SA") {
			mychecks = append(mychecks, v.Analyzer)
		}
	}

	multichecker.Main(
		mychecks...,
	)
}
