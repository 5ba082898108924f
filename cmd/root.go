package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/yamanjr10/deskdash/internal"
)

var (
	verbose      bool
	dbPath       string
	forceRefresh bool
	version      string = "dev"
	commit       string = "unknown"
	date         string = "unknown"
)

var (
	// Styles shared across commands
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "deskdash",
	Short: "Personal dashboard in your terminal",
	Long: `A personal dashboard for your terminal: weather, calendar, quotes,
anime feeds, a pomodoro timer, and more, backed by a local database.

Every widget keeps its own state; remote data is cached and every widget
degrades to built-in fallback data when a provider is unreachable.

Quick Start:
  deskdash                       # Render the full dashboard
  deskdash weather set Tokyo     # Save your weather location
  deskdash calendar add "Dentist" --date 2026-04-02
  deskdash pomodoro              # Start a 25/5 focus timer

Configuration lives in ~/.config/deskdash/config.yaml and DESKDASH_-prefixed
environment variables.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		renderDashboard(cmd, app)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Custom database location")
	rootCmd.Flags().BoolVar(&forceRefresh, "refresh", false, "Bypass cached data and refetch everything")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (commit: %s, built: %s)\n", version, commit, date)
		},
	})
}

// app bundles everything a command needs: resolved config, the open store,
// and the notification/cache plumbing over it.
type app struct {
	cfg    internal.Config
	store  *internal.Store
	center *internal.NotificationCenter
	cache  *internal.Cache
}

// openApp resolves configuration and opens the dashboard database. The --db
// flag wins over config.
func openApp() (*app, error) {
	cfg, err := internal.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	store, err := internal.OpenStore(cfg.DBPath, cfg.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to open dashboard database: %w", err)
	}

	center := internal.NewNotificationCenter(store)
	return &app{
		cfg:    cfg,
		store:  store,
		center: center,
		cache:  internal.NewCache(store, center),
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		internal.Log.Warn().Err(err).Msg("closing dashboard database")
	}
}

// renderDashboard prints the condensed all-widgets view the bare command
// shows. Remote widgets go through the cache; none of them can fail the
// command.
func renderDashboard(cmd *cobra.Command, app *app) {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	clock := internal.NewClockWidget()
	cv := clock.ViewModel()

	profile := internal.NewProfileWidget(app.store, app.center)
	profile.Load()
	pv := profile.ViewModel()

	fmt.Fprintln(out, headerStyle.Render("🏠 deskdash"))
	fmt.Fprintf(out, "%s  %s\n", titleStyle.Render(pv.Greeting), dimStyle.Render(cv.Date+" "+cv.Time))
	fmt.Fprintf(out, "%s\n\n", dimStyle.Render(fmt.Sprintf("🔥 %d %s streak", pv.Streak, pv.StreakLabel)))

	weather := newWeatherWidget(app)
	weather.Load(ctx, forceRefresh)
	wv := weather.ViewModel()
	line := fmt.Sprintf("%s %s · %s · %s", wv.Location, wv.Temp, wv.Description, wv.Forecast)
	if wv.Degraded {
		line += " " + warningStyle.Render("(offline)")
	}
	fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Weather"), valueStyle.Render(line))

	quote := newQuoteWidget(app)
	quote.Load(ctx)
	qv := quote.ViewModel()
	fmt.Fprintf(out, "%s %s %s\n", titleStyle.Render("Quote"), valueStyle.Render(qv.Text), dimStyle.Render(qv.Author))

	calendar := internal.NewCalendarWidget(app.store, app.center)
	calendar.Load()
	upcoming := calendar.UpcomingEvents(3)
	if len(upcoming) == 0 {
		fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Events"), dimStyle.Render("nothing scheduled"))
	} else {
		fmt.Fprintf(out, "%s", titleStyle.Render("Events"))
		for _, ev := range upcoming {
			fmt.Fprintf(out, " %s %s ·", dimStyle.Render(ev.Date), valueStyle.Render(ev.Title))
		}
		fmt.Fprintln(out)
	}

	countdown := internal.NewCountdownWidget(app.store, app.center)
	countdown.Load()
	dv := countdown.ViewModel()
	fmt.Fprintf(out, "%s %s %s\n", titleStyle.Render("One Piece"), valueStyle.Render(dv.Episode), dimStyle.Render("airs in "+dv.Remaining))

	if unread := app.center.UnreadCount(); unread > 0 {
		fmt.Fprintf(out, "\n%s\n", infoStyle.Render(fmt.Sprintf("🔔 %d unread notification(s) - deskdash notifications", unread)))
	}
}
