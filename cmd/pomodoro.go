package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/yamanjr10/deskdash/internal"
)

var (
	pomodoroWorkMin  int
	pomodoroBreakMin int
)

// pomodoroCmd represents the pomodoro command
var pomodoroCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Run a focus timer in the foreground",
	Long: `Run a work/break focus timer. The timer alternates between work and
break phases until interrupted with Ctrl+C. Phase lengths come from
config (pomodoro_work_min / pomodoro_break_min) unless overridden with
flags.`,
	RunE: runPomodoro,
}

// pomodoroStartCmd represents the pomodoro start command
var pomodoroStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the focus timer",
	RunE:  runPomodoro,
}

// pomodoroSettingsCmd represents the pomodoro settings command
var pomodoroSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the configured phase lengths",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("🍅 Pomodoro Settings"))
		fmt.Fprintf(out, "%s %s min\n", titleStyle.Render("Work:"),
			valueStyle.Render(fmt.Sprintf("%d", app.cfg.PomodoroWorkMin)))
		fmt.Fprintf(out, "%s %s min\n", titleStyle.Render("Break:"),
			valueStyle.Render(fmt.Sprintf("%d", app.cfg.PomodoroBreakMin)))
		return nil
	},
}

func runPomodoro(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	work := app.cfg.PomodoroWorkMin
	breakMin := app.cfg.PomodoroBreakMin
	if cmd.Flags().Changed("work") {
		work = pomodoroWorkMin
	}
	if cmd.Flags().Changed("break") {
		breakMin = pomodoroBreakMin
	}

	w := internal.NewPomodoroWidget(app.center,
		time.Duration(work)*time.Minute, time.Duration(breakMin)*time.Minute)
	w.Start()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render("🍅 Pomodoro"))
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("%d min work / %d min break - Ctrl+C to stop", work, breakMin)))

	w.Run(ctx, ticker.C, func(view internal.PomodoroView) {
		phase := titleStyle.Render(view.Phase)
		if view.Phase == "break" {
			phase = infoStyle.Render(view.Phase)
		}
		fmt.Fprintf(out, "\r%s %s ", phase, valueStyle.Render(view.Remaining))
	})

	fmt.Fprintln(out)
	fmt.Fprintln(out, successStyle.Render("✅ Timer stopped"))
	return nil
}

func init() {
	rootCmd.AddCommand(pomodoroCmd)
	pomodoroCmd.AddCommand(pomodoroStartCmd)
	pomodoroCmd.AddCommand(pomodoroSettingsCmd)

	for _, c := range []*cobra.Command{pomodoroCmd, pomodoroStartCmd} {
		c.Flags().IntVar(&pomodoroWorkMin, "work", 25, "Work phase length in minutes")
		c.Flags().IntVar(&pomodoroBreakMin, "break", 5, "Break phase length in minutes")
	}
}
