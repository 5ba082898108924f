package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestProfileCommand_SetAndShow(t *testing.T) {
	t.Setenv("DESKDASH_DB_PATH", filepath.Join(t.TempDir(), "deskdash.db"))

	rootCmd.SetArgs([]string{"profile", "set", "--name", "Yaman"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("profile set error = %v", err)
	}

	var stdout bytes.Buffer
	rootCmd.SetArgs([]string{"profile"})
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("profile error = %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "Yaman") {
		t.Errorf("profile output missing name, got:\n%s", out)
	}
	if !strings.Contains(out, "1 day") {
		t.Errorf("profile output missing first-visit streak, got:\n%s", out)
	}
}

func TestProfileSetCommand_RejectsBlankName(t *testing.T) {
	out, err := runCommand(t, "profile", "set", "--name", "   ")
	if err == nil {
		t.Errorf("profile set with blank name should fail, got output:\n%s", out)
	}
}
