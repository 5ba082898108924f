package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// runCommand executes the root command against a throwaway database and
// returns captured stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DESKDASH_DB_PATH", filepath.Join(t.TempDir(), "deskdash.db"))

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "version flag",
			args:    []string{"--version"},
			wantErr: false,
		},
		{
			name:    "help flag",
			args:    []string{"--help"},
			wantErr: false,
		},
		{
			name:    "unknown command",
			args:    []string{"nonexistent-command"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			var stdout, stderr bytes.Buffer
			rootCmd.SetOut(&stdout)
			rootCmd.SetErr(&stderr)

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRootCommand_HelpListsSubcommands(t *testing.T) {
	out, err := runCommand(t, "--help")
	if err != nil {
		t.Fatalf("rootCmd.Execute() error = %v", err)
	}

	for _, sub := range []string{"weather", "calendar", "quote", "pomodoro", "export", "doctor"} {
		if !strings.Contains(out, sub) {
			t.Errorf("help output missing subcommand %q", sub)
		}
	}
}
