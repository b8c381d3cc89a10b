package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunModeRejectsUnknownMode(t *testing.T) {
	err := runMode(nil, []string{"9"})
	assert.Error(t, err)
}

func TestRunModeShowcaseSucceeds(t *testing.T) {
	err := runMode(nil, []string{"3"})
	assert.NoError(t, err)
}
