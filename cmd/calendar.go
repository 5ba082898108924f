package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/yamanjr10/deskdash/internal"
)

var (
	eventDate     string
	eventTime     string
	eventCategory string
	eventTitle    string
	upcomingLimit int
)

// calendarCmd represents the calendar command
var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Show this month's calendar and today's events",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewCalendarWidget(app.store, app.center)
		w.Load()
		now := time.Now()
		view := w.ViewModel(now.Year(), now.Month())

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("📅 "+view.MonthTitle))
		for _, d := range view.DayNames {
			fmt.Fprintf(out, "%4s", dimStyle.Render(d))
		}
		fmt.Fprintln(out)
		for i, cell := range view.Grid {
			switch {
			case cell.Day == 0:
				fmt.Fprintf(out, "%4s", "")
			case cell.Today:
				fmt.Fprintf(out, "%4s", successStyle.Render(fmt.Sprintf("%d", cell.Day)))
			case cell.HasEvent:
				fmt.Fprintf(out, "%4s", infoStyle.Render(fmt.Sprintf("%d", cell.Day)))
			default:
				fmt.Fprintf(out, "%4s", valueStyle.Render(fmt.Sprintf("%d", cell.Day)))
			}
			if (i+1)%7 == 0 {
				fmt.Fprintln(out)
			}
		}
		if len(view.Grid)%7 != 0 {
			fmt.Fprintln(out)
		}

		if len(view.Today) > 0 {
			fmt.Fprintln(out, titleStyle.Render("\nToday:"))
			for _, ev := range view.Today {
				printEvent(cmd, ev)
			}
		}
		return nil
	},
}

// calendarAddCmd represents the calendar add command
var calendarAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add an event",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewCalendarWidget(app.store, app.center)
		w.Load()
		id, err := w.AddEvent(strings.Join(args, " "), eventDate, eventTime, eventCategory)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Event added"))
		fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("id: "+id))
		return nil
	},
}

// calendarUpdateCmd represents the calendar update command
var calendarUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit an existing event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewCalendarWidget(app.store, app.center)
		w.Load()

		var current *internal.CalendarEvent
		for _, ev := range w.Events() {
			if ev.ID == args[0] {
				e := ev
				current = &e
				break
			}
		}
		if current == nil {
			return fmt.Errorf("no event with id %s", args[0])
		}

		// Only flags the user passed change the event.
		if cmd.Flags().Changed("title") {
			current.Title = eventTitle
		}
		if cmd.Flags().Changed("date") {
			current.Date = eventDate
		}
		if cmd.Flags().Changed("time") {
			current.Time = eventTime
		}
		if cmd.Flags().Changed("category") {
			current.Category = eventCategory
		}

		if err := w.UpdateEvent(*current); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Event updated"))
		return nil
	},
}

// calendarDeleteCmd represents the calendar delete command
var calendarDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Remove an event",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewCalendarWidget(app.store, app.center)
		w.Load()
		w.DeleteEvent(args[0])

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Event deleted"))
		return nil
	},
}

// calendarListCmd represents the calendar list command
var calendarListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every event",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewCalendarWidget(app.store, app.center)
		w.Load()
		events := w.Events()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("📅 All Events"))
		if len(events) == 0 {
			fmt.Fprintln(out, dimStyle.Render("Nothing scheduled"))
			return nil
		}
		for _, ev := range events {
			printEvent(cmd, ev)
		}
		return nil
	},
}

// calendarUpcomingCmd represents the calendar upcoming command
var calendarUpcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "List the next scheduled events",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewCalendarWidget(app.store, app.center)
		w.Load()
		events := w.UpcomingEvents(upcomingLimit)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("📅 Upcoming"))
		if len(events) == 0 {
			fmt.Fprintln(out, dimStyle.Render("Nothing scheduled"))
			return nil
		}
		for _, ev := range events {
			printEvent(cmd, ev)
		}
		return nil
	},
}

func printEvent(cmd *cobra.Command, ev internal.CalendarEvent) {
	out := cmd.OutOrStdout()
	line := fmt.Sprintf("%s  %s", dimStyle.Render(ev.Date), valueStyle.Render(ev.Title))
	if ev.Time != "" {
		line += " " + dimStyle.Render("at "+ev.Time)
	}
	if ev.Category != "" {
		line += " " + infoStyle.Render("["+ev.Category+"]")
	}
	fmt.Fprintf(out, "  %s %s\n", line, dimStyle.Render("("+ev.ID+")"))
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.AddCommand(calendarAddCmd)
	calendarCmd.AddCommand(calendarListCmd)
	calendarCmd.AddCommand(calendarUpdateCmd)
	calendarCmd.AddCommand(calendarDeleteCmd)
	calendarCmd.AddCommand(calendarUpcomingCmd)

	calendarAddCmd.Flags().StringVar(&eventDate, "date", "", "Event date (YYYY-MM-DD)")
	calendarAddCmd.Flags().StringVar(&eventTime, "time", "", "Event time (HH:MM)")
	calendarAddCmd.Flags().StringVar(&eventCategory, "category", "", "Event category")
	_ = calendarAddCmd.MarkFlagRequired("date")

	calendarUpdateCmd.Flags().StringVar(&eventTitle, "title", "", "New title")
	calendarUpdateCmd.Flags().StringVar(&eventDate, "date", "", "New date (YYYY-MM-DD)")
	calendarUpdateCmd.Flags().StringVar(&eventTime, "time", "", "New time (HH:MM)")
	calendarUpdateCmd.Flags().StringVar(&eventCategory, "category", "", "New category")

	calendarUpcomingCmd.Flags().IntVar(&upcomingLimit, "limit", 5, "Maximum events to list")
}
