package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunShowcaseProducesExpectedResults(t *testing.T) {
	var buf bytes.Buffer
	runShowcase(&buf)
	out := buf.String()

	assert.Contains(t, out, "-121932631356500531591068431703703700581771069347203169112635269")
	assert.Contains(t, out, "25852016738884976640000")
	assert.Contains(t, out, "[ERROR]")
}
