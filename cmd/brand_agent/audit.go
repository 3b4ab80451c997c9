package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/brand-auditor/internal/audit"
	"github.com/jonathan/brand-auditor/internal/db"
	"github.com/jonathan/brand-auditor/internal/observability"
	"github.com/jonathan/brand-auditor/internal/types"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit visual assets against a brand kit",
	Long:  "Runs palette, color-usage, and forbidden-keyword compliance checks for one asset JSON file or a directory of asset files against a brand kit loaded from a file or the database.",
	RunE:  runAudit,
}

// auditConcurrency bounds parallel asset audits in batch mode.
const auditConcurrency = 4

var (
	auditKitFile   string
	auditKitID     string
	auditKitBrand  string
	auditAssetFile string
	auditAssetsDir string
	auditTolerance float64
	auditOutFile   string
	auditSave      bool
	auditVerbose   bool
)

func init() {
	auditCmd.Flags().StringVarP(&auditKitFile, "kit", "k", "", "Path to brand kit JSON file")
	auditCmd.Flags().StringVar(&auditKitID, "kit-id", "", "ID of a stored brand kit (requires DATABASE_URL)")
	auditCmd.Flags().StringVarP(&auditKitBrand, "brand", "b", "", "Brand name of a stored kit (requires DATABASE_URL)")
	auditCmd.Flags().StringVar(&auditAssetFile, "asset", "", "Path to one visual asset JSON file")
	auditCmd.Flags().StringVarP(&auditAssetsDir, "assets-dir", "a", "", "Directory of visual asset JSON files to audit in batch")
	auditCmd.Flags().Float64Var(&auditTolerance, "tolerance", 0, "Max RGB distance for a color match (default: 60)")
	auditCmd.Flags().StringVarP(&auditOutFile, "out", "o", "", "Path to output results JSON file")
	auditCmd.Flags().BoolVar(&auditSave, "save", false, "Record audit runs in the database (requires a stored kit)")
	auditCmd.Flags().BoolVarP(&auditVerbose, "verbose", "v", false, "Print per-check verdicts")

	rootCmd.AddCommand(auditCmd)
}

// assetReport pairs one asset with its check verdicts.
type assetReport struct {
	Asset   string              `json:"asset"`
	Results []types.AuditResult `json:"results"`
}

func runAudit(_ *cobra.Command, _ []string) error {
	if auditAssetFile == "" && auditAssetsDir == "" {
		return fmt.Errorf("either --asset or --assets-dir is required")
	}
	if auditAssetFile != "" && auditAssetsDir != "" {
		return fmt.Errorf("--asset and --assets-dir are mutually exclusive")
	}

	ctx := context.Background()

	brandKit, kitID, database, err := loadKit(ctx)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}
	if auditSave && database == nil {
		return fmt.Errorf("--save requires a stored kit: use --kit-id or --brand")
	}

	assetPaths := []string{auditAssetFile}
	if auditAssetsDir != "" {
		assetPaths, err = listAssetFiles(auditAssetsDir)
		if err != nil {
			return err
		}
	}

	opts := audit.DefaultOptions()
	if auditTolerance > 0 {
		opts.Tolerance = auditTolerance
	}

	reports, err := auditAssets(ctx, assetPaths, brandKit, opts, database, kitID)
	if err != nil {
		return err
	}

	if auditVerbose {
		printer := observability.NewPrinter(os.Stdout)
		for _, report := range reports {
			printer.PrintAuditResults(report.Asset, report.Results)
		}
	}

	if auditOutFile != "" {
		var out any = reports
		if auditAssetFile != "" {
			// Single-asset mode writes the plain result list
			out = reports[0].Results
		}
		if err := writeJSONFile(auditOutFile, out); err != nil {
			return err
		}
		if auditAssetFile != "" {
			if err := validateAgainstSchema("schemas/audit_results.schema.json", auditOutFile); err != nil {
				return err
			}
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", auditOutFile)
	}

	failed := 0
	for _, report := range reports {
		for _, result := range report.Results {
			if result.Status == types.StatusFail {
				failed++
			}
		}
	}
	_, _ = fmt.Fprintf(os.Stdout, "Audited %d assets: %d failed checks\n", len(reports), failed)

	return nil
}

// loadKit resolves the kit from a file, a stored kit ID, or a brand name.
// The database handle is non-nil only when the kit came from the store.
func loadKit(ctx context.Context) (*types.BrandKit, uuid.UUID, *db.DB, error) {
	sources := 0
	for _, set := range []bool{auditKitFile != "", auditKitID != "", auditKitBrand != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, uuid.Nil, nil, fmt.Errorf("exactly one of --kit, --kit-id, or --brand is required")
	}

	if auditKitFile != "" {
		brandKit := &types.BrandKit{}
		if err := readJSONFile(auditKitFile, brandKit); err != nil {
			return nil, uuid.Nil, nil, fmt.Errorf("failed to load brand kit: %w", err)
		}
		return brandKit, uuid.Nil, nil, nil
	}

	database, err := connectDB(ctx)
	if err != nil {
		return nil, uuid.Nil, nil, err
	}

	if auditKitID != "" {
		kitID, err := uuid.Parse(auditKitID)
		if err != nil {
			database.Close()
			return nil, uuid.Nil, nil, fmt.Errorf("invalid kit ID %q: %w", auditKitID, err)
		}
		brandKit, err := database.GetBrandKit(ctx, kitID)
		if err != nil {
			database.Close()
			return nil, uuid.Nil, nil, fmt.Errorf("failed to load brand kit: %w", err)
		}
		if brandKit == nil {
			database.Close()
			return nil, uuid.Nil, nil, fmt.Errorf("brand kit not found: %s", kitID)
		}
		return brandKit, kitID, database, nil
	}

	brandKit, kitID, err := database.GetBrandKitByName(ctx, auditKitBrand)
	if err != nil {
		database.Close()
		return nil, uuid.Nil, nil, fmt.Errorf("failed to load brand kit: %w", err)
	}
	if brandKit == nil {
		database.Close()
		return nil, uuid.Nil, nil, fmt.Errorf("brand kit not found for brand: %s", auditKitBrand)
	}
	return brandKit, kitID, database, nil
}

// listAssetFiles returns the JSON asset files in dir, sorted by name.
func listAssetFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read assets directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no asset JSON files found in %s", dir)
	}

	sort.Strings(paths)
	return paths, nil
}

// auditAssets audits every asset concurrently. The kit is read-shared across
// goroutines; reports come back in input order.
func auditAssets(ctx context.Context, paths []string, brandKit *types.BrandKit, opts audit.Options, database *db.DB, kitID uuid.UUID) ([]assetReport, error) {
	reports := make([]assetReport, len(paths))
	var mu sync.Mutex // guards the shared db connection in --save mode

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(auditConcurrency)

	for i, path := range paths {
		g.Go(func() error {
			asset := &types.VisualAsset{}
			if err := readJSONFile(path, asset); err != nil {
				return fmt.Errorf("failed to load asset %s: %w", path, err)
			}
			if asset.Name == "" {
				asset.Name = strings.TrimSuffix(filepath.Base(path), ".json")
			}

			results, err := audit.Audit(asset, brandKit, opts)
			if err != nil {
				return fmt.Errorf("audit of %s failed: %w", asset.Name, err)
			}
			reports[i] = assetReport{Asset: asset.Name, Results: results}

			if auditSave && database != nil {
				mu.Lock()
				defer mu.Unlock()
				runID, err := database.CreateAuditRun(ctx, kitID, asset.Name)
				if err != nil {
					return fmt.Errorf("failed to record audit run: %w", err)
				}
				if err := database.SaveAuditResults(ctx, runID, results); err != nil {
					return fmt.Errorf("failed to save audit results: %w", err)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

