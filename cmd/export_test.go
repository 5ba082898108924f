package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportCommand_JSONToStdout(t *testing.T) {
	out, err := runCommand(t, "export")
	if err != nil {
		t.Fatalf("export error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("export output is not valid JSON: %v\n%s", err, out)
	}
	if _, ok := decoded["exportedAt"]; !ok {
		t.Errorf("export output missing exportedAt field:\n%s", out)
	}
}

func TestExportCommand_FileOutput(t *testing.T) {
	t.Setenv("DESKDASH_DB_PATH", filepath.Join(t.TempDir(), "deskdash.db"))

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	rootCmd.SetArgs([]string{"export", "--format", "yaml", "--output", path})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("export error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export file: %v", err)
	}
	if !strings.Contains(string(data), "exported_at") {
		t.Errorf("yaml export missing exported_at:\n%s", data)
	}
}

func TestExportCommand_RejectsUnknownFormat(t *testing.T) {
	out, err := runCommand(t, "export", "--format", "xml")
	if err == nil {
		t.Errorf("export --format xml should fail, got output:\n%s", out)
	}
}
