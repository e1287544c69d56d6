// Package main запускает multichecker для утилит репозитория.
//
// Он включает:
// - стандартные анализаторы go/analysis/passes (shadow, structtag, nilness, printf, unusedresult)
// - все SA-анализаторы staticcheck
// - S1000 и U1000
// - bodyclose: loadgen обязан закрывать тело каждого ответа
// - собственный анализатор noexit (запрещает os.Exit в main)
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/unused"

	"github.com/Totarae/shortener-ops/cmd/staticlint/noexit"
)

func main() {
	multichecker.Main(analyzers()...)
}

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		unusedresult.Analyzer,
	}

	// SA-анализаторы
	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			list = append(list, a.Analyzer)
		}
	}

	// S1000 живёт в simple, U1000 в unused
	for _, name := range []string{"S1000", "U1000"} {
		if a := findAnalyzer(name); a != nil {
			list = append(list, a)
		}
	}

	list = append(list, bodyclose.Analyzer, noexit.NewAnalyzer())
	return list
}

func findAnalyzer(name string) *analysis.Analyzer {
	pool := make([]*lint.Analyzer, 0, len(staticcheck.Analyzers)+len(simple.Analyzers)+1)
	pool = append(pool, staticcheck.Analyzers...)
	pool = append(pool, simple.Analyzers...)
	pool = append(pool, unused.Analyzer)

	for _, a := range pool {
		if a.Analyzer.Name == name {
			return a.Analyzer
		}
	}
	return nil
}
