package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBoolSetting_RecognizedValues(t *testing.T) {
	assert.True(t, parseBoolSetting("true", false))
	assert.True(t, parseBoolSetting("1", false))
	assert.False(t, parseBoolSetting("false", true))
	assert.False(t, parseBoolSetting("0", true))
}

func TestParseBoolSetting_MalformedFallsBack(t *testing.T) {
	assert.True(t, parseBoolSetting("yes please", true))
	assert.False(t, parseBoolSetting("", false))
}
