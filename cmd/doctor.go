package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/yamanjr10/deskdash/internal"
	"github.com/yamanjr10/deskdash/internal/provider/anilist"
	"github.com/yamanjr10/deskdash/internal/provider/geoip"
	"github.com/yamanjr10/deskdash/internal/provider/github"
	"github.com/yamanjr10/deskdash/internal/provider/quote"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, storage, and provider reachability",
	Long: `Check the health of deskdash by verifying:
  • Configuration resolution
  • Database path and accessibility
  • Remote provider reachability

Remote checks use a short timeout; failures there only mean widgets will
fall back to cached or built-in data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("🩺 deskdash doctor"))
		fmt.Fprintln(out)

		// Step 1: Configuration
		fmt.Fprintln(out, infoStyle.Render("Step 1: Resolving configuration..."))
		cfg, err := internal.LoadConfig()
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Failed to resolve configuration:"), err)
			return err
		}
		fmt.Fprintln(out, successStyle.Render("✅ Configuration resolved"))
		if verbose {
			fmt.Fprintf(out, "   Config file: %s\n", internal.ConfigFilePath())
			fmt.Fprintf(out, "   Database: %s\n", cfg.DBPath)
			fmt.Fprintf(out, "   Session: %s\n", cfg.SessionID)
		}
		if cfg.OpenWeatherAPIKey == "" {
			fmt.Fprintln(out, warningStyle.Render("⚠️  No OpenWeather API key - weather uses fallback data"))
		}
		if cfg.YouTubeAPIKey == "" {
			fmt.Fprintln(out, warningStyle.Render("⚠️  No YouTube API key - channel stats use fallback data"))
		}
		fmt.Fprintln(out)

		// Step 2: Database
		fmt.Fprintln(out, infoStyle.Render("Step 2: Checking the database..."))
		if dbPath != "" {
			cfg.DBPath = dbPath
		}
		if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
			fmt.Fprintln(out, warningStyle.Render("⚠️  Database does not exist yet - created on first run"))
			if verbose {
				fmt.Fprintf(out, "   Expected: %s\n", cfg.DBPath)
			}
		}
		store, err := internal.OpenStore(cfg.DBPath, cfg.SessionID)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Failed to open the database:"), err)
			return err
		}
		defer store.Close()
		fmt.Fprintln(out, successStyle.Render("✅ Database opened"))
		fmt.Fprintln(out)

		// Step 3: Providers. Failures here degrade widgets, they never
		// break the dashboard.
		fmt.Fprintln(out, infoStyle.Render("Step 3: Checking remote providers..."))
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		reachable := 0
		reachable += checkProvider(cmd, "ip-api", func() error {
			_, err := geoip.NewClient().Locate(ctx)
			return err
		})
		reachable += checkProvider(cmd, "quotable", func() error {
			_, err := quote.NewClient().Random(ctx)
			return err
		})
		reachable += checkProvider(cmd, "github", func() error {
			_, err := github.NewClient().UserStats(ctx, cfg.GitHubUser)
			return err
		})
		reachable += checkProvider(cmd, "anilist", func() error {
			_, err := anilist.NewClient().Trending(ctx, 1)
			return err
		})
		fmt.Fprintln(out)

		// Summary
		fmt.Fprintln(out, headerStyle.Render("📊 Summary"))
		switch {
		case reachable == 4:
			fmt.Fprintln(out, successStyle.Render("✅ Everything looks healthy"))
		case reachable > 0:
			fmt.Fprintln(out, warningStyle.Render(fmt.Sprintf("⚠️  %d of 4 providers reachable - affected widgets degrade to fallback data", reachable)))
		default:
			fmt.Fprintln(out, warningStyle.Render("⚠️  No providers reachable - dashboard runs fully offline"))
		}
		return nil
	},
}

func checkProvider(cmd *cobra.Command, name string, probe func() error) int {
	out := cmd.OutOrStdout()
	if err := probe(); err != nil {
		fmt.Fprintln(out, warningStyle.Render("⚠️  "+name+" unreachable"))
		if verbose {
			fmt.Fprintf(out, "   %v\n", err)
		}
		return 0
	}
	fmt.Fprintln(out, successStyle.Render("✅ "+name+" reachable"))
	return 1
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
