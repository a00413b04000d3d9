package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/site-importer/internal/merge"
	"github.com/jonathan/site-importer/internal/types"
)

func writeJSON(t *testing.T, dir, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestMergeCommand_MissingBundleFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "merge")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"bundle\" not set")
}

func TestMergeCommand_DedupesAgainstExisting(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	bundlePath := writeJSON(t, tmpDir, "bundle.json", types.ImportSuggestionBundle{
		Services: []types.ServiceSuggestion{
			{Name: "Men's Haircut", Confidence: 0.9},
			{Name: "Beard Trim", Confidence: 0.8},
		},
	})
	existingPath := writeJSON(t, tmpDir, "existing.json", types.ExistingBusinessRecord{
		Services: []types.ExistingService{{Name: "Mens Haircut"}},
	})
	outPath := filepath.Join(tmpDir, "merge.json")

	cmd := exec.Command(binaryPath, "merge",
		"--bundle", bundlePath,
		"--existing", existingPath,
		"--out", outPath)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "merge failed: %s", output)
	assert.Contains(t, string(output), "To add: 1 services")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var result merge.ProcessResult
	require.NoError(t, json.Unmarshal(data, &result))

	require.Len(t, result.Services.ToAdd, 1)
	assert.Equal(t, "Beard Trim", result.Services.ToAdd[0].Name)
	require.Len(t, result.Services.Duplicates, 1)
	assert.Equal(t, "Mens Haircut", result.Services.Duplicates[0].ExistingMatch)
}

func TestMergeCommand_MissingBundleFile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "merge",
		"--bundle", filepath.Join(t.TempDir(), "nope.json"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to read bundle file")
}
