package main

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brand-auditor/internal/colors"
	"github.com/jonathan/brand-auditor/internal/types"
)

// resetAuditFlags zeroes the audit command's flag variables and restores them
// when the test finishes.
func resetAuditFlags(t *testing.T) {
	t.Helper()
	origKitFile, origKitID, origKitBrand := auditKitFile, auditKitID, auditKitBrand
	origAssetFile, origAssetsDir := auditAssetFile, auditAssetsDir
	origTolerance, origOut := auditTolerance, auditOutFile
	origSave, origVerbose := auditSave, auditVerbose

	auditKitFile, auditKitID, auditKitBrand = "", "", ""
	auditAssetFile, auditAssetsDir = "", ""
	auditTolerance, auditOutFile = 0, ""
	auditSave, auditVerbose = false, false

	t.Cleanup(func() {
		auditKitFile, auditKitID, auditKitBrand = origKitFile, origKitID, origKitBrand
		auditAssetFile, auditAssetsDir = origAssetFile, origAssetsDir
		auditTolerance, auditOutFile = origTolerance, origOut
		auditSave, auditVerbose = origSave, origVerbose
	})
}

// writeTestKit writes a minimal brand kit file and returns its path.
func writeTestKit(t *testing.T, dir string) string {
	t.Helper()
	brandKit := &types.BrandKit{
		BrandName:     "Acme",
		PrimaryColors: []string{"#4A154B"},
		RichColors: []colors.Swatch{
			{Name: "Core Aubergine", RGB: colors.RGB{74, 21, 75}, Hex: "#4A154B"},
			{Name: "White", RGB: colors.RGB{255, 255, 255}, Hex: "#FFFFFF"},
		},
		ForbiddenKeywords: []string{"synergy"},
	}
	kitFile := filepath.Join(dir, "kit.json")
	require.NoError(t, writeJSONFile(kitFile, brandKit))
	return kitFile
}

func TestRunAudit_MissingAsset(t *testing.T) {
	resetAuditFlags(t)
	auditKitFile = "kit.json"

	err := runAudit(nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --asset or --assets-dir is required")
}

func TestRunAudit_MutuallyExclusiveAssets(t *testing.T) {
	resetAuditFlags(t)
	auditKitFile = "kit.json"
	auditAssetFile = "asset.json"
	auditAssetsDir = "assets/"

	err := runAudit(nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestLoadKit_RequiresExactlyOneSource(t *testing.T) {
	resetAuditFlags(t)

	tests := []struct {
		name    string
		kitFile string
		kitID   string
		brand   string
	}{
		{name: "no source"},
		{name: "file and id", kitFile: "kit.json", kitID: uuid.NewString()},
		{name: "file and brand", kitFile: "kit.json", brand: "Acme"},
		{name: "all three", kitFile: "kit.json", kitID: uuid.NewString(), brand: "Acme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auditKitFile, auditKitID, auditKitBrand = tt.kitFile, tt.kitID, tt.brand

			_, _, _, err := loadKit(context.Background())

			require.Error(t, err)
			assert.Contains(t, err.Error(), "exactly one of --kit, --kit-id, or --brand is required")
		})
	}
}

func TestLoadKit_FromFile(t *testing.T) {
	resetAuditFlags(t)
	auditKitFile = writeTestKit(t, t.TempDir())

	brandKit, kitID, database, err := loadKit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Acme", brandKit.BrandName)
	assert.Equal(t, uuid.Nil, kitID)
	assert.Nil(t, database)
}

func TestLoadKit_MissingFile(t *testing.T) {
	resetAuditFlags(t)
	auditKitFile = filepath.Join(t.TempDir(), "missing.json")

	_, _, _, err := loadKit(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load brand kit")
}

func TestListAssetFiles_SortedJSONOnly(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"zeta.json", "alpha.json", "readme.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("{}"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "nested.json"), 0755))

	paths, err := listAssetFiles(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "alpha.json"),
		filepath.Join(tmpDir, "zeta.json"),
	}, paths)
}

func TestListAssetFiles_EmptyDirectory(t *testing.T) {
	_, err := listAssetFiles(t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no asset JSON files found")
}

func TestRunAudit_SingleAsset(t *testing.T) {
	resetAuditFlags(t)
	tmpDir := t.TempDir()
	auditKitFile = writeTestKit(t, tmpDir)

	asset := &types.VisualAsset{
		Name:           "offending-banner",
		DetectedColors: []any{"#00FF00"},
		CopyText:       "Pure synergy for your team",
	}
	assetFile := filepath.Join(tmpDir, "banner.json")
	require.NoError(t, writeJSONFile(assetFile, asset))

	auditAssetFile = assetFile
	auditOutFile = filepath.Join(tmpDir, "results.json")

	err := runAudit(nil, nil)
	require.NoError(t, err)

	var results []types.AuditResult
	require.NoError(t, readJSONFile(auditOutFile, &results))

	failures := map[types.CheckType]bool{}
	for _, r := range results {
		if r.Status == types.StatusFail {
			failures[r.Type] = true
		}
	}
	assert.True(t, failures[types.CheckPalette], "off-palette green should fail the palette check")
	assert.True(t, failures[types.CheckKeywords], "forbidden keyword should fail the keyword check")
}

func TestRunAudit_BatchDirectory(t *testing.T) {
	resetAuditFlags(t)
	tmpDir := t.TempDir()
	auditKitFile = writeTestKit(t, tmpDir)

	assetsDir := filepath.Join(tmpDir, "assets")
	require.NoError(t, os.Mkdir(assetsDir, 0755))

	clean := &types.VisualAsset{DetectedColors: []any{"#4A154B"}, CopyText: "Welcome to Acme"}
	require.NoError(t, writeJSONFile(filepath.Join(assetsDir, "clean.json"), clean))
	offending := &types.VisualAsset{DetectedColors: []any{"#00FF00"}}
	require.NoError(t, writeJSONFile(filepath.Join(assetsDir, "offending.json"), offending))

	auditAssetsDir = assetsDir
	auditOutFile = filepath.Join(tmpDir, "results.json")

	err := runAudit(nil, nil)
	require.NoError(t, err)

	var reports []assetReport
	require.NoError(t, readJSONFile(auditOutFile, &reports))

	require.Len(t, reports, 2)
	// Reports follow the sorted asset file order; names fall back to filenames.
	assert.Equal(t, "clean", reports[0].Asset)
	assert.Equal(t, "offending", reports[1].Asset)
	for _, r := range reports[0].Results {
		assert.NotEqual(t, types.StatusFail, r.Status, "clean asset should not fail %s", r.Type)
	}
}

func TestRunAudit_SaveRequiresStoredKit(t *testing.T) {
	resetAuditFlags(t)
	tmpDir := t.TempDir()
	auditKitFile = writeTestKit(t, tmpDir)

	asset := &types.VisualAsset{DetectedColors: []any{"#4A154B"}}
	assetFile := filepath.Join(tmpDir, "banner.json")
	require.NoError(t, writeJSONFile(assetFile, asset))

	auditAssetFile = assetFile
	auditSave = true

	err := runAudit(nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--save requires a stored kit")
}

func TestAuditCommand_MissingKitSource(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	assetFile := filepath.Join(tmpDir, "banner.json")
	_ = os.WriteFile(assetFile, []byte(`{"name":"banner"}`), 0644)

	cmd := exec.Command(binaryPath, "audit", "--asset", assetFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "exactly one of --kit, --kit-id, or --brand is required")
}
