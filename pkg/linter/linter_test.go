package linter

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

var testdata = analysistest.TestData()

func TestRedirectAnalyzer(t *testing.T) {
	analysistest.Run(t, testdata, RedirectAnalyzer, "redirect")
}

func TestExitAnalyzer(t *testing.T) {
	analysistest.Run(t, testdata, ExitAnalyzer, "exit", "exitlib")
}
