package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	return r
}

func TestDefault_HasSemanticStyles(t *testing.T) {
	reg := Default(plainRenderer())

	for _, name := range []string{"Title", "Success", "Error", "Cause", "LineNumber", "Raw", "Flags", "Muted"} {
		_, ok := reg.styles[name]
		assert.True(t, ok, "missing style %s", name)
	}
}

func TestLoad(t *testing.T) {
	data := []byte(`
colors:
  red:
    light: "#FF0000"
    dark: "#FF5555"
styles:
  Alert:
    bold: true
    foreground: red
  Indented:
    paddingLeft: 3
`)

	reg, err := Load(data, plainRenderer())
	require.NoError(t, err)

	assert.True(t, reg.Get("Alert").GetBold())
	assert.Equal(t, 3, reg.Get("Indented").GetPaddingLeft())
	assert.Equal(t, "   x", reg.Render("Indented", "x"))
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load([]byte("colors: [unclosed"), plainRenderer())
	assert.Error(t, err)
}

func TestGet_UnknownStyleIsPlain(t *testing.T) {
	reg := Default(plainRenderer())
	assert.Equal(t, "text", reg.Render("NoSuchStyle", "text"))
}
