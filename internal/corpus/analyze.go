package corpus

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/brand-auditor/internal/types"
)

// analysisConcurrency bounds parallel image decoding.
const analysisConcurrency = 4

// AnalyzeAssets fills in DominantColors for every asset that has an image
// path but no pre-supplied colors. Decoding runs concurrently; an asset whose
// image cannot be read is kept with a logged warning rather than failing the
// whole corpus. The input slice is not mutated.
func AnalyzeAssets(ctx context.Context, assets []types.Asset, topColors int) ([]types.Asset, error) {
	if topColors <= 0 {
		topColors = DefaultTopColors
	}

	analyzed := make([]types.Asset, len(assets))
	copy(analyzed, assets)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(analysisConcurrency)

	for i := range analyzed {
		if len(analyzed[i].DominantColors) > 0 || analyzed[i].ImagePath == "" {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := LoadImage(analyzed[i].ImagePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: skipping asset %s: %v\n", analyzed[i].Name, err)
				return nil
			}
			analyzed[i].DominantColors = DominantColors(img, topColors)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return analyzed, nil
}
