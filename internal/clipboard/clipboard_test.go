package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolsFor(t *testing.T) {
	linux := toolsFor("linux")
	require.Len(t, linux, 3)
	assert.Equal(t, "wl-copy", linux[0][0])

	assert.Equal(t, [][]string{{"pbcopy"}}, toolsFor("darwin"))
	assert.NotEmpty(t, toolsFor("windows"))
	assert.Nil(t, toolsFor("plan9"))
}

func TestCopyWith(t *testing.T) {
	t.Run("unsupported platform", func(t *testing.T) {
		err := copyWith("plan9", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "plan9")
	})

	t.Run("no tool available", func(t *testing.T) {
		orig := isCommandAvailable
		isCommandAvailable = func(string) bool { return false }
		defer func() { isCommandAvailable = orig }()

		err := copyWith("linux", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wl-copy, xclip, xsel")
	})
}
