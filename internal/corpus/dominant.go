// Package corpus derives statistical brand signals from a corpus of existing
// assets: dominant colors per image and keyword frequency across asset copy.
package corpus

import (
	"fmt"
	"image"
	"os"
	"sort"

	// Registered decoders for the asset image formats the corpus accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/jonathan/brand-auditor/internal/colors"
)

// DefaultTopColors is how many dominant colors are kept per asset.
const DefaultTopColors = 5

// quantShift reduces each channel to 16 buckets, coarse enough that
// anti-aliasing noise collapses into the dominant bucket.
const quantShift = 4

// sampleStride skips pixels on large images; dominance is a statistical
// property, a uniform subsample preserves it.
const maxSamplesPerAxis = 256

// LoadImage decodes a PNG, JPEG, or GIF asset image from disk.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset image %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode asset image %s: %w", path, err)
	}
	return img, nil
}

type bucket struct {
	count int
	sumR  uint64
	sumG  uint64
	sumB  uint64
	first int
}

// DominantColors returns the k most prevalent colors of an image using a
// quantized histogram. Near-transparent pixels are ignored. Results are
// ordered by prevalence, ties broken by first appearance so the output is
// deterministic.
func DominantColors(img image.Image, k int) []colors.RGB {
	if img == nil || k <= 0 {
		return nil
	}

	bounds := img.Bounds()
	strideX := (bounds.Dx() + maxSamplesPerAxis - 1) / maxSamplesPerAxis
	strideY := (bounds.Dy() + maxSamplesPerAxis - 1) / maxSamplesPerAxis
	if strideX < 1 {
		strideX = 1
	}
	if strideY < 1 {
		strideY = 1
	}

	buckets := make(map[uint32]*bucket)
	order := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y += strideY {
		for x := bounds.Min.X; x < bounds.Max.X; x += strideX {
			r, g, b, a := img.At(x, y).RGBA()
			if a < 0x8000 {
				continue
			}
			r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
			key := uint32(r8>>quantShift)<<8 | uint32(g8>>quantShift)<<4 | uint32(b8>>quantShift)

			bk, ok := buckets[key]
			if !ok {
				bk = &bucket{first: order}
				buckets[key] = bk
			}
			order++
			bk.count++
			bk.sumR += uint64(r8)
			bk.sumG += uint64(g8)
			bk.sumB += uint64(b8)
		}
	}

	ranked := make([]*bucket, 0, len(buckets))
	for _, bk := range buckets {
		ranked = append(ranked, bk)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].first < ranked[j].first
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}

	result := make([]colors.RGB, 0, len(ranked))
	for _, bk := range ranked {
		n := uint64(bk.count)
		result = append(result, colors.RGB{
			uint8(bk.sumR / n),
			uint8(bk.sumG / n),
			uint8(bk.sumB / n),
		})
	}
	return result
}
