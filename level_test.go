package mculog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "DEBUG", LevelDebug.String())

	// Every value, including custom levels, has a defined label.
	assert.Equal(t, "LEVEL(0)", Level(0).String())
	assert.Equal(t, "LEVEL(4)", Level(4).String())
	assert.Equal(t, "LEVEL(255)", Level(255).String())
}

func TestLevelOrdering(t *testing.T) {
	assert.Equal(t, uint8(1), uint8(LevelError))
	assert.Equal(t, uint8(2), uint8(LevelInfo))
	assert.Equal(t, uint8(3), uint8(LevelDebug))
}
