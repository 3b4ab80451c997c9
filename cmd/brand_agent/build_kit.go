package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/brand-auditor/internal/config"
	"github.com/jonathan/brand-auditor/internal/corpus"
	"github.com/jonathan/brand-auditor/internal/kit"
	"github.com/jonathan/brand-auditor/internal/observability"
	"github.com/jonathan/brand-auditor/internal/types"
)

var buildKitCmd = &cobra.Command{
	Use:   "build-kit",
	Short: "Synthesize a brand kit from guidelines and an asset corpus",
	Long:  "Merges extracted guideline rules with dominant-color and keyword statistics learned from an existing-brand asset corpus into one canonical brand kit.",
	RunE:  runBuildKit,
}

var (
	buildKitConfigFile     string
	buildKitGuidelinesFile string
	buildKitAssetsDir      string
	buildKitBrand          string
	buildKitOutputFile     string
	buildKitTolerance      float64
	buildKitTopColors      int
	buildKitTopKeywords    int
	buildKitSave           bool
	buildKitVerbose        bool
)

func init() {
	buildKitCmd.Flags().StringVarP(&buildKitConfigFile, "config", "c", "", "Path to JSON config file")
	buildKitCmd.Flags().StringVarP(&buildKitGuidelinesFile, "guidelines", "g", "", "Path to extracted guidelines JSON file")
	buildKitCmd.Flags().StringVarP(&buildKitAssetsDir, "assets-dir", "a", "", "Directory of corpus asset images")
	buildKitCmd.Flags().StringVarP(&buildKitBrand, "brand", "b", "", "Brand name for the synthesized kit")
	buildKitCmd.Flags().StringVarP(&buildKitOutputFile, "out", "o", "", "Path to output brand kit JSON file (required)")
	buildKitCmd.Flags().Float64Var(&buildKitTolerance, "tolerance", 0, "Max RGB distance for a color match (default: 60)")
	buildKitCmd.Flags().IntVar(&buildKitTopColors, "top-colors", 0, "Dominant colors sampled per asset (default: 5)")
	buildKitCmd.Flags().IntVar(&buildKitTopKeywords, "top-keywords", 0, "Frequent keywords kept per kit (default: 10)")
	buildKitCmd.Flags().BoolVar(&buildKitSave, "save", false, "Persist the kit to the database (requires DATABASE_URL)")
	buildKitCmd.Flags().BoolVarP(&buildKitVerbose, "verbose", "v", false, "Print the synthesized kit")

	if err := buildKitCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(buildKitCmd)
}

func runBuildKit(_ *cobra.Command, _ []string) error {
	cfg, err := buildKitConfig()
	if err != nil {
		return err
	}
	if cfg.Brand == "" {
		return fmt.Errorf("brand name is required: set --brand or the config file's brand field")
	}

	var extracted *types.ExtractedGuidelines
	if cfg.Guidelines != "" {
		extracted = &types.ExtractedGuidelines{}
		if err := readJSONFile(cfg.Guidelines, extracted); err != nil {
			return fmt.Errorf("failed to load guidelines: %w", err)
		}
	}

	ctx := context.Background()

	var assets []types.Asset
	if cfg.AssetsDir != "" {
		assets, err = scanCorpusAssets(cfg.AssetsDir)
		if err != nil {
			return err
		}
		assets, err = corpus.AnalyzeAssets(ctx, assets, cfg.TopColors)
		if err != nil {
			return fmt.Errorf("failed to analyze asset corpus: %w", err)
		}
	}

	opts := kit.Options{
		Tolerance:   cfg.Tolerance,
		TopColors:   cfg.TopColors,
		TopKeywords: cfg.TopKeywords,
	}
	brandKit, err := kit.Generate(cfg.Brand, assets, extracted, opts)
	if err != nil {
		return fmt.Errorf("failed to synthesize brand kit: %w", err)
	}

	if err := writeJSONFile(buildKitOutputFile, brandKit); err != nil {
		return err
	}

	if err := validateAgainstSchema("schemas/brand_kit.schema.json", buildKitOutputFile); err != nil {
		return err
	}

	if buildKitSave {
		database, err := connectDB(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		kitID, err := database.SaveBrandKit(ctx, brandKit)
		if err != nil {
			return fmt.Errorf("failed to save brand kit: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Saved kit: %s\n", kitID)
	}

	if buildKitVerbose {
		observability.NewPrinter(os.Stdout).PrintBrandKit(brandKit)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Synthesized kit for %s: %d colors, %d corpus assets\n",
		brandKit.BrandName, len(brandKit.RichColors), len(assets))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", buildKitOutputFile)

	return nil
}

// buildKitConfig merges the optional config file with command-line flags.
// Flags win over config values.
func buildKitConfig() (config.Config, error) {
	flags := config.Config{
		Guidelines:  buildKitGuidelinesFile,
		AssetsDir:   buildKitAssetsDir,
		Brand:       buildKitBrand,
		Tolerance:   buildKitTolerance,
		TopColors:   buildKitTopColors,
		TopKeywords: buildKitTopKeywords,
	}

	if buildKitConfigFile == "" {
		return flags, nil
	}

	fileCfg, err := config.LoadConfig(buildKitConfigFile)
	if err != nil {
		return config.Config{}, err
	}
	if err := fileCfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return flags.MergeWithDefaults(*fileCfg), nil
}

// imageExtensions are the corpus asset formats the dominant-color detector decodes.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// scanCorpusAssets walks an asset directory into corpus entries. A text file
// sharing an image's basename supplies the asset's copy for keyword
// statistics; standalone .txt files become text-only assets.
func scanCorpusAssets(dir string) ([]types.Asset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read assets directory %s: %w", dir, err)
	}

	byName := make(map[string]*types.Asset)
	var order []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))

		switch {
		case imageExtensions[ext]:
			asset := byName[base]
			if asset == nil {
				asset = &types.Asset{Name: base}
				byName[base] = asset
				order = append(order, base)
			}
			asset.ImagePath = filepath.Join(dir, entry.Name())
		case ext == ".txt":
			text, err := os.ReadFile(filepath.Join(dir, entry.Name()))
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: skipping unreadable asset text %s: %v\n", entry.Name(), err)
				continue
			}
			asset := byName[base]
			if asset == nil {
				asset = &types.Asset{Name: base}
				byName[base] = asset
				order = append(order, base)
			}
			asset.Text = string(text)
		}
	}

	if len(order) == 0 {
		return nil, fmt.Errorf("no corpus assets found in %s", dir)
	}

	sort.Strings(order)
	assets := make([]types.Asset, 0, len(order))
	for _, name := range order {
		assets = append(assets, *byName[name])
	}
	return assets, nil
}

// readJSONFile reads and unmarshals a JSON file into v.
func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
