package corpus

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brand-auditor/internal/colors"
	"github.com/jonathan/brand-auditor/internal/types"
)

// testImage builds a 100x100 image: 80% aubergine, 20% white.
func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	aubergine := color.RGBA{74, 21, 75, 255}
	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if y < 80 {
				img.Set(x, y, aubergine)
			} else {
				img.Set(x, y, white)
			}
		}
	}
	return img
}

func TestDominantColors(t *testing.T) {
	got := DominantColors(testImage(), 2)
	require.Len(t, got, 2)
	assert.Equal(t, colors.RGB{74, 21, 75}, got[0])
	assert.Equal(t, colors.RGB{255, 255, 255}, got[1])
}

func TestDominantColors_SkipsTransparentPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	opaque := color.RGBA{0, 128, 0, 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x < 2 {
				img.Set(x, y, opaque)
			}
			// Remaining pixels stay fully transparent.
		}
	}

	got := DominantColors(img, 3)
	require.Len(t, got, 1)
	assert.Equal(t, colors.RGB{0, 128, 0}, got[0])
}

func TestDominantColors_Empty(t *testing.T) {
	assert.Nil(t, DominantColors(nil, 3))
	assert.Nil(t, DominantColors(testImage(), 0))
}

func TestKeywordFrequency(t *testing.T) {
	texts := []string{
		"Simply powerful collaboration. Collaboration made simple.",
		"Powerful tools for powerful teams.",
	}

	got := KeywordFrequency(texts, 3)
	require.Len(t, got, 3)
	// "powerful" x3, "collaboration" x2, then first-seen tie-break among
	// single-occurrence words ("simply" before "made", "simple", ...).
	assert.Equal(t, "powerful", got[0])
	assert.Equal(t, "collaboration", got[1])
	assert.Equal(t, "simply", got[2])
}

func TestKeywordFrequency_SkipsStopwordsAndShortWords(t *testing.T) {
	got := KeywordFrequency([]string{"the and for it go is a team"}, 0)
	assert.Equal(t, []string{"team"}, got)
}

func TestAnalyzeAssets(t *testing.T) {
	tmpDir := t.TempDir()
	imgPath := filepath.Join(tmpDir, "banner.png")
	f, err := os.Create(imgPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, testImage()))
	require.NoError(t, f.Close())

	assets := []types.Asset{
		{Name: "banner", ImagePath: imgPath},
		{Name: "preset", DominantColors: []colors.RGB{{1, 2, 3}}},
		{Name: "missing", ImagePath: filepath.Join(tmpDir, "nope.png")},
	}

	analyzed, err := AnalyzeAssets(context.Background(), assets, 2)
	require.NoError(t, err)
	require.Len(t, analyzed, 3)

	assert.Equal(t, colors.RGB{74, 21, 75}, analyzed[0].DominantColors[0])
	assert.Equal(t, []colors.RGB{{1, 2, 3}}, analyzed[1].DominantColors)
	assert.Empty(t, analyzed[2].DominantColors)

	// Input slice is untouched.
	assert.Empty(t, assets[0].DominantColors)
}
