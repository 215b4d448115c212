package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFont(t *testing.T) {
	require.NoError(t, LoadFontWithSize(Small, goregular.TTF, 8))
	face := Small.Get()
	require.NotNil(t, face)
	assert.Greater(t, face.Metrics().Height.Ceil(), 0)

	assert.Error(t, LoadFont(Regular, []byte("not a font")))
	assert.Panics(t, func() { FontName("missing").Get() })
}
