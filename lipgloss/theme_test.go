package lipgloss_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wikilens/wikilens/lipgloss"
)

func TestThemes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.DarkTheme(), lipgloss.DefaultTheme())
	assert.NotEqual(t, lipgloss.DarkTheme(), lipgloss.LightTheme())
	assert.NotEmpty(t, lipgloss.LightTheme().Added)
}

