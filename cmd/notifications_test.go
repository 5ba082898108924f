package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestNotificationsCommand_ListsWidgetEvents(t *testing.T) {
	t.Setenv("DESKDASH_DB_PATH", filepath.Join(t.TempDir(), "deskdash.db"))

	// Theme change records a notification.
	rootCmd.SetArgs([]string{"theme", "set", "ocean"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("theme set error = %v", err)
	}

	var stdout bytes.Buffer
	rootCmd.SetArgs([]string{"notifications"})
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("notifications error = %v", err)
	}

	if !strings.Contains(stdout.String(), "Theme") {
		t.Errorf("notifications output missing theme event, got:\n%s", stdout.String())
	}
}

func TestNotificationsClearCommand(t *testing.T) {
	t.Setenv("DESKDASH_DB_PATH", filepath.Join(t.TempDir(), "deskdash.db"))

	rootCmd.SetArgs([]string{"theme", "set", "light"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("theme set error = %v", err)
	}

	rootCmd.SetArgs([]string{"notifications", "clear"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("notifications clear error = %v", err)
	}

	var stdout bytes.Buffer
	rootCmd.SetArgs([]string{"notifications"})
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("notifications error = %v", err)
	}

	if !strings.Contains(stdout.String(), "Nothing today") {
		t.Errorf("cleared notifications still listed:\n%s", stdout.String())
	}
}
