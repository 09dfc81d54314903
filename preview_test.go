package shadetex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreviewScalesExactly(t *testing.T) {
	img, err := BuildTexture(DefaultPalette, DefaultShadowTable)
	require.NoError(t, err)

	preview, err := Preview(img, 16)
	require.NoError(t, err)
	require.Equal(t, PaletteSize*16, preview.Bounds().Dx())
	require.Equal(t, ShadowLevels*16, preview.Bounds().Dy())
}

func TestPreviewIdentityScale(t *testing.T) {
	img, err := BuildTexture(DefaultPalette, DefaultShadowTable)
	require.NoError(t, err)

	preview, err := Preview(img, 1)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), preview.Bounds())
}

func TestPreviewRejectsBadScale(t *testing.T) {
	img, err := BuildTexture(DefaultPalette, DefaultShadowTable)
	require.NoError(t, err)

	_, err = Preview(img, 0)
	require.Error(t, err)
}
