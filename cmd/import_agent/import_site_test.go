package main

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportCommand_MissingURL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "import")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--url must be provided")
}

func TestImportCommand_MissingAPIKey(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	oldKey := os.Getenv("GEMINI_API_KEY")
	_ = os.Unsetenv("GEMINI_API_KEY")
	defer func() {
		if oldKey != "" {
			_ = os.Setenv("GEMINI_API_KEY", oldKey)
		}
	}()

	cmd := exec.Command(binaryPath, "import", "--url", "https://example.com")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "API key required")
}

func TestImportCommand_ApplyRequiresBusinessID(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "import",
		"--url", "https://example.com",
		"--apply")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--apply requires --business-id")
}

func TestImportCommand_MutuallyExclusiveTargets(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "import",
		"--url", "https://example.com",
		"--business-id", "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		"--existing", "record.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestImportCommand_InvalidBusinessID(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	_ = os.Setenv("GEMINI_API_KEY", "test-key")
	defer func() { _ = os.Unsetenv("GEMINI_API_KEY") }()

	cmd := exec.Command(binaryPath, "import",
		"--url", "https://example.com",
		"--business-id", "not-a-uuid",
		"--db-url", "postgres://localhost/test")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid business-id format")
}
