package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzers(t *testing.T) {
	names := map[string]bool{}
	for _, a := range analyzers() {
		names[a.Name] = true
	}

	for _, want := range []string{"shadow", "printf", "bodyclose", "noexit", "SA1000", "S1000", "U1000"} {
		assert.True(t, names[want], want)
	}
	assert.Nil(t, findAnalyzer("no-such-check"))
}
