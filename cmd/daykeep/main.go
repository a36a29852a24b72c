// daykeep is a personal task tracker with completion analytics.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/daykeep/daykeep/internal/analytics"
	"github.com/daykeep/daykeep/internal/backup"
	"github.com/daykeep/daykeep/internal/config"
	"github.com/daykeep/daykeep/internal/model"
	"github.com/daykeep/daykeep/internal/report"
	"github.com/daykeep/daykeep/internal/store"
)

var (
	version   = "0.3.0"
	homeDir   string
	logLevel  string
	logFormat string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "daykeep",
	Short: "Personal task tracker with completion analytics",
	Long: `daykeep tracks three kinds of tasks and turns their completion history
into progress analytics:

- Routine tasks: a weekly schedule, checked off per day
- Calendar tasks: dated one-off tasks, optionally marked as deadlines
- Sustained lists: freeform checklists unrelated to any date

The stats and watch commands aggregate completions over a date range
(weekly, monthly, ytd, yearly, all-time).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("daykeep %s\n", version)
		fmt.Printf("Go version: %s\n", runtime.Version())
		fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion analytics for a date range",
	Long: `Aggregate task completions over a date range and render the analytics
view: perfect routine days, deadlines met, total tasks completed and a
per-day or per-month completion chart.

Range tokens: weekly (Sun-Sat), monthly, ytd, yearly, all-time.
Unknown tokens fall back to weekly.`,
	Run: func(cmd *cobra.Command, args []string) {
		rng, _ := cmd.Flags().GetString("range")
		runStats(rng)
	},
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's routine, tasks and open deadlines",
	Run: func(cmd *cobra.Command, args []string) {
		runToday()
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live analytics view that refreshes on every store change",
	Long: `Render the analytics view and keep it current: every write to a task
collection re-runs aggregation for the active range. When the mirror is
enabled in the config, the store is also autosaved to the mirror file
and external rewrites of that file are imported back.`,
	Run: func(cmd *cobra.Command, args []string) {
		rng, _ := cmd.Flags().GetString("range")
		runWatch(rng)
	},
}

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage calendar tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a calendar task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		day, _ := cmd.Flags().GetString("day")
		timeOfDay, _ := cmd.Flags().GetString("time")
		deadline, _ := cmd.Flags().GetBool("deadline")
		tags, _ := cmd.Flags().GetStringSlice("tags")
		runTaskAdd(day, args[0], timeOfDay, deadline, tags)
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's calendar tasks",
	Run: func(cmd *cobra.Command, args []string) {
		day, _ := cmd.Flags().GetString("day")
		runTaskList(day)
	},
}

var taskEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a calendar task's text, time, deadline flag or tags",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		day, _ := cmd.Flags().GetString("day")
		text, _ := cmd.Flags().GetString("text")
		timeOfDay, _ := cmd.Flags().GetString("time")
		deadline, _ := cmd.Flags().GetBool("deadline")
		deadlineSet := cmd.Flags().Changed("deadline")
		tags, _ := cmd.Flags().GetStringSlice("tags")
		tagsSet := cmd.Flags().Changed("tags")
		runTaskEdit(day, args[0], text, timeOfDay, cmd.Flags().Changed("time"), deadline, deadlineSet, tags, tagsSet)
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a calendar task completed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		day, _ := cmd.Flags().GetString("day")
		runTaskSetDone(day, args[0], true)
	},
}

var taskUndoneCmd = &cobra.Command{
	Use:   "undone <id>",
	Short: "Mark a calendar task not completed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		day, _ := cmd.Flags().GetString("day")
		runTaskSetDone(day, args[0], false)
	},
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a calendar task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		day, _ := cmd.Flags().GetString("day")
		runTaskRm(day, args[0])
	},
}

var routineCmd = &cobra.Command{
	Use:   "routine",
	Short: "Manage the weekly routine schedule",
}

var routineAddCmd = &cobra.Command{
	Use:   "add <weekday> <label>",
	Short: "Schedule a routine task on a weekday",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runRoutineAdd(args[0], args[1])
	},
}

var routineRmCmd = &cobra.Command{
	Use:   "rm <weekday> <label>",
	Short: "Remove a routine task from a weekday",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runRoutineRm(args[0], args[1])
	},
}

var routineListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the weekly routine schedule",
	Run: func(cmd *cobra.Command, args []string) {
		runRoutineList()
	},
}

var routineCheckCmd = &cobra.Command{
	Use:   "check <label>",
	Short: "Mark a routine task completed for a day",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		day, _ := cmd.Flags().GetString("day")
		runRoutineSetDone(day, args[0], true)
	},
}

var routineUncheckCmd = &cobra.Command{
	Use:   "uncheck <label>",
	Short: "Mark a routine task not completed for a day",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		day, _ := cmd.Flags().GetString("day")
		runRoutineSetDone(day, args[0], false)
	},
}

var sustainedCmd = &cobra.Command{
	Use:   "sustained",
	Short: "Manage sustained checklists",
}

var sustainedListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every sustained checklist",
	Run: func(cmd *cobra.Command, args []string) {
		runSustainedList()
	},
}

var sustainedAddListCmd = &cobra.Command{
	Use:   "add-list <title>",
	Short: "Create a sustained checklist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSustainedAddList(args[0])
	},
}

var sustainedRmListCmd = &cobra.Command{
	Use:   "rm-list <list-id>",
	Short: "Delete a sustained checklist and its items",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSustainedRmList(args[0])
	},
}

var sustainedAddCmd = &cobra.Command{
	Use:   "add <list-id> <text>",
	Short: "Add an item to a sustained checklist",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runSustainedAdd(args[0], args[1])
	},
}

var sustainedCheckCmd = &cobra.Command{
	Use:   "check <list-id> <item-id>",
	Short: "Mark a sustained item completed",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runSustainedSetDone(args[0], args[1], true)
	},
}

var sustainedUncheckCmd = &cobra.Command{
	Use:   "uncheck <list-id> <item-id>",
	Short: "Mark a sustained item not completed",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runSustainedSetDone(args[0], args[1], false)
	},
}

var sustainedRmCmd = &cobra.Command{
	Use:   "rm <list-id> <item-id>",
	Short: "Delete a sustained item",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runSustainedRm(args[0], args[1])
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the full store as a JSON snapshot",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		runExport(path)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the store with a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runImport(args[0])
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every task and completion record",
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")
		runClear(force)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration",
	Run: func(cmd *cobra.Command, args []string) {
		runConfigInit()
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Run: func(cmd *cobra.Command, args []string) {
		runConfigValidate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "daykeep home directory (default: ~/.daykeep)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	statsCmd.Flags().StringP("range", "r", "", "date range (weekly, monthly, ytd, yearly, all-time)")
	watchCmd.Flags().StringP("range", "r", "", "date range (weekly, monthly, ytd, yearly, all-time)")

	taskAddCmd.Flags().StringP("day", "d", "", "day (YYYY-MM-DD, default: today)")
	taskAddCmd.Flags().StringP("time", "t", "", "time of day (HH:MM)")
	taskAddCmd.Flags().Bool("deadline", false, "mark as a deadline task")
	taskAddCmd.Flags().StringSlice("tags", nil, "tags")

	taskListCmd.Flags().StringP("day", "d", "", "day (YYYY-MM-DD, default: today)")

	taskEditCmd.Flags().StringP("day", "d", "", "day (YYYY-MM-DD, default: today)")
	taskEditCmd.Flags().String("text", "", "new text")
	taskEditCmd.Flags().StringP("time", "t", "", "new time of day (HH:MM, empty to clear)")
	taskEditCmd.Flags().Bool("deadline", false, "set or clear the deadline flag")
	taskEditCmd.Flags().StringSlice("tags", nil, "new tags")

	taskDoneCmd.Flags().StringP("day", "d", "", "day (YYYY-MM-DD, default: today)")
	taskUndoneCmd.Flags().StringP("day", "d", "", "day (YYYY-MM-DD, default: today)")
	taskRmCmd.Flags().StringP("day", "d", "", "day (YYYY-MM-DD, default: today)")

	routineCheckCmd.Flags().StringP("day", "d", "", "day (YYYY-MM-DD, default: today)")
	routineUncheckCmd.Flags().StringP("day", "d", "", "day (YYYY-MM-DD, default: today)")

	clearCmd.Flags().BoolP("force", "f", false, "force clear without confirmation")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskEditCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskUndoneCmd)
	taskCmd.AddCommand(taskRmCmd)

	routineCmd.AddCommand(routineAddCmd)
	routineCmd.AddCommand(routineRmCmd)
	routineCmd.AddCommand(routineListCmd)
	routineCmd.AddCommand(routineCheckCmd)
	routineCmd.AddCommand(routineUncheckCmd)

	sustainedCmd.AddCommand(sustainedListCmd)
	sustainedCmd.AddCommand(sustainedAddListCmd)
	sustainedCmd.AddCommand(sustainedRmListCmd)
	sustainedCmd.AddCommand(sustainedAddCmd)
	sustainedCmd.AddCommand(sustainedCheckCmd)
	sustainedCmd.AddCommand(sustainedUncheckCmd)
	sustainedCmd.AddCommand(sustainedRmCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(routineCmd)
	rootCmd.AddCommand(sustainedCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogging() {
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}

	if logFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func resolveHome() string {
	if homeDir != "" {
		return homeDir
	}
	return config.DefaultHome()
}

// openStore loads the config and opens the task store. Callers must Close.
func openStore() (*store.Store, *config.Config, string) {
	home := resolveHome()

	cfg, warnings, err := config.Load(home)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Debug(w)
	}

	s, err := store.Open(store.Config{Dir: config.StoreDir(home, cfg)})
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	return s, cfg, home
}

// resolveDay maps an optional --day flag to a canonical day key.
func resolveDay(day string) string {
	if day == "" {
		return model.DayKey(time.Now())
	}
	if !model.IsDayKey(day) {
		fmt.Fprintf(os.Stderr, "Invalid day %q (want YYYY-MM-DD)\n", day)
		os.Exit(1)
	}
	return day
}

func runStats(rng string) {
	s, cfg, _ := openStore()
	defer s.Close()

	if rng == "" {
		rng = cfg.Analytics.DefaultRange
	}
	bridge := report.NewBridge(s, os.Stdout, analytics.ParseRange(rng), cfg.Analytics.DailyGoal)
	if err := bridge.Refresh(); err != nil {
		slog.Error("failed to render analytics", "error", err)
		os.Exit(1)
	}
}

func runToday() {
	s, cfg, _ := openStore()
	defer s.Close()

	now := time.Now()
	dayKey := model.DayKey(now)
	weekday := model.WeekdayName(now)

	fmt.Printf("Today, %s (%s)\n\n", dayKey, weekday)

	routine := s.RecurringSchedule().Tasks(weekday)
	completed := s.CompletedRecurring(dayKey)
	if len(routine) > 0 {
		fmt.Println("Routine:")
		for _, label := range routine {
			fmt.Printf("  %s %s\n", checkbox(completed[label]), label)
		}
		fmt.Println()
	}

	tasks := s.CalendarTasks(dayKey)
	if len(tasks) > 0 {
		fmt.Println("Tasks:")
		for _, t := range tasks {
			line := fmt.Sprintf("  %s %s", checkbox(t.Completed), t.Text)
			if t.Time != "" {
				line += " @ " + t.Time
			}
			if t.IsDeadline {
				line += " [deadline]"
			}
			if len(t.Tags) > 0 {
				line += " #" + strings.Join(t.Tags, " #")
			}
			fmt.Printf("%s  (%s)\n", line, t.ID)
		}
		fmt.Println()
	}

	open := s.OpenDeadlines(dayKey)
	if len(open) > 0 {
		fmt.Println("Open deadlines:")
		for _, d := range open {
			fmt.Printf("  %s  due %s\n", d.Text, d.DeadlineDateKey)
		}
		fmt.Println()
	}

	if len(routine) == 0 && len(tasks) == 0 && len(open) == 0 {
		fmt.Println("Nothing scheduled today.")
	}

	maybeShowDigest(s, cfg, now)
}

// maybeShowDigest prints the weekly analytics digest on Saturdays, at most
// once per week.
func maybeShowDigest(s *store.Store, cfg *config.Config, now time.Time) {
	if now.Weekday() != time.Saturday {
		return
	}
	weekStart := model.DayKey(model.StartOfDay(now).AddDate(0, 0, -int(now.Weekday())))
	if s.DigestShown(weekStart) {
		return
	}

	fmt.Println("Weekly digest:")
	w := analytics.ResolveWindow(analytics.RangeWeekly, now, s)
	res := analytics.Aggregate(s, w)
	series := analytics.Bucketize(res.DailyCounts, w, analytics.ModeDaily)
	fmt.Println(report.Render(res, series, w, cfg.Analytics.DailyGoal))

	if err := s.MarkDigestShown(weekStart); err != nil {
		slog.Warn("failed to record digest", "error", err)
	}
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func runWatch(rng string) {
	s, cfg, home := openStore()
	defer s.Close()

	if rng == "" {
		rng = cfg.Analytics.DefaultRange
	}
	bridge := report.NewBridge(s, os.Stdout, analytics.ParseRange(rng), cfg.Analytics.DailyGoal)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		sig := <-sigChan
		slog.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if cfg.Mirror.Enabled {
		mirrorPath := config.MirrorPath(home, cfg)

		autosaver := backup.NewAutosaver(s, mirrorPath, cfg.Mirror.Interval)
		go autosaver.Run(ctx)

		watcher, err := backup.NewWatcher(backup.WatcherConfig{
			Store: s,
			Path:  mirrorPath,
			OnImport: func() {
				if err := bridge.Refresh(); err != nil {
					slog.Warn("refresh after mirror import failed", "error", err)
				}
			},
		})
		if err != nil {
			slog.Error("failed to create mirror watcher", "error", err)
			os.Exit(1)
		}
		go func() {
			if err := watcher.Watch(ctx); err != nil && ctx.Err() == nil {
				slog.Warn("mirror watcher stopped", "error", err)
			}
		}()
	}

	if err := bridge.Refresh(); err != nil {
		slog.Error("failed to render analytics", "error", err)
		os.Exit(1)
	}
	fmt.Println("Watching for changes (press Ctrl+C to stop)")

	err := s.Subscribe(ctx, func(keys []string) {
		slog.Debug("store changed", "keys", keys)
		if err := bridge.Refresh(); err != nil {
			slog.Warn("refresh failed", "error", err)
		}
	})
	if err != nil {
		slog.Error("subscription error", "error", err)
		os.Exit(1)
	}
}

func runTaskAdd(day, text, timeOfDay string, deadline bool, tags []string) {
	s, _, _ := openStore()
	defer s.Close()

	dayKey := resolveDay(day)
	task, err := s.AddCalendarTask(dayKey, text, timeOfDay, deadline, tags)
	if err != nil {
		slog.Error("failed to add task", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Added %s on %s (%s)\n", task.Text, dayKey, task.ID)
}

func runTaskList(day string) {
	s, _, _ := openStore()
	defer s.Close()

	dayKey := resolveDay(day)
	tasks := s.CalendarTasks(dayKey)
	if len(tasks) == 0 {
		fmt.Printf("No tasks on %s\n", dayKey)
		return
	}
	for _, t := range tasks {
		line := fmt.Sprintf("%s %s", checkbox(t.Completed), t.Text)
		if t.Time != "" {
			line += " @ " + t.Time
		}
		if t.IsDeadline {
			line += " [deadline]"
		}
		if len(t.Tags) > 0 {
			line += " #" + strings.Join(t.Tags, " #")
		}
		fmt.Printf("%s  (%s)\n", line, t.ID)
	}
}

func runTaskEdit(day, id, text, timeOfDay string, timeSet, deadline, deadlineSet bool, tags []string, tagsSet bool) {
	s, _, _ := openStore()
	defer s.Close()

	dayKey := resolveDay(day)
	tasks := s.CalendarTasks(dayKey)

	var current *model.CalendarTask
	for i := range tasks {
		if tasks[i].ID == id {
			current = &tasks[i]
			break
		}
	}
	if current == nil {
		fmt.Fprintf(os.Stderr, "Task %s not found on %s\n", id, dayKey)
		os.Exit(1)
	}

	updated := *current
	if text != "" {
		updated.Text = text
	}
	if timeSet {
		updated.Time = timeOfDay
	}
	if deadlineSet {
		updated.IsDeadline = deadline
	}
	if tagsSet {
		updated.Tags = tags
	}

	if err := s.UpdateCalendarTask(dayKey, updated); err != nil {
		slog.Error("failed to edit task", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Updated %s\n", id)
}

func runTaskSetDone(day, id string, done bool) {
	s, _, _ := openStore()
	defer s.Close()

	dayKey := resolveDay(day)
	if err := s.SetCalendarTaskCompleted(dayKey, id, done); err != nil {
		slog.Error("failed to update task", "error", err)
		os.Exit(1)
	}
	if done {
		fmt.Printf("Completed %s\n", id)
	} else {
		fmt.Printf("Reopened %s\n", id)
	}
}

func runTaskRm(day, id string) {
	s, _, _ := openStore()
	defer s.Close()

	dayKey := resolveDay(day)
	if err := s.DeleteCalendarTask(dayKey, id); err != nil {
		slog.Error("failed to delete task", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted %s\n", id)
}

func runRoutineAdd(weekday, label string) {
	s, _, _ := openStore()
	defer s.Close()

	if err := s.AddRecurringTask(weekday, label); err != nil {
		slog.Error("failed to add routine task", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Scheduled %q on %s\n", label, strings.ToLower(weekday))
}

func runRoutineRm(weekday, label string) {
	s, _, _ := openStore()
	defer s.Close()

	if err := s.RemoveRecurringTask(weekday, label); err != nil {
		slog.Error("failed to remove routine task", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Removed %q from %s\n", label, strings.ToLower(weekday))
}

func runRoutineList() {
	s, _, _ := openStore()
	defer s.Close()

	sched := s.RecurringSchedule()
	empty := true
	for _, weekday := range model.Weekdays {
		tasks := sched.Tasks(weekday)
		if len(tasks) == 0 {
			continue
		}
		empty = false
		fmt.Printf("%s:\n", weekday)
		for _, label := range tasks {
			fmt.Printf("  - %s\n", label)
		}
	}
	if empty {
		fmt.Println("No routine tasks scheduled.")
	}
}

func runRoutineSetDone(day, label string, done bool) {
	s, _, _ := openStore()
	defer s.Close()

	dayKey := resolveDay(day)
	if err := s.SetRecurringCompleted(dayKey, label, done); err != nil {
		slog.Error("failed to update routine completion", "error", err)
		os.Exit(1)
	}
	if done {
		fmt.Printf("Checked %q for %s\n", label, dayKey)
	} else {
		fmt.Printf("Unchecked %q for %s\n", label, dayKey)
	}
}

func runSustainedList() {
	s, _, _ := openStore()
	defer s.Close()

	lists := s.SustainedLists()
	if len(lists) == 0 {
		fmt.Println("No sustained lists.")
		return
	}
	for _, id := range s.SustainedListIDs() {
		list := lists[id]
		fmt.Printf("%s  (%s)\n", list.Title, id)
		for _, item := range list.Items {
			fmt.Printf("  %s %s  (%s)\n", checkbox(item.Completed), item.Text, item.ID)
		}
	}
}

func runSustainedAddList(title string) {
	s, _, _ := openStore()
	defer s.Close()

	id, err := s.AddSustainedList(title)
	if err != nil {
		slog.Error("failed to create list", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Created %q (%s)\n", title, id)
}

func runSustainedRmList(listID string) {
	s, _, _ := openStore()
	defer s.Close()

	if err := s.DeleteSustainedList(listID); err != nil {
		slog.Error("failed to delete list", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted %s\n", listID)
}

func runSustainedAdd(listID, text string) {
	s, _, _ := openStore()
	defer s.Close()

	item, err := s.AddSustainedItem(listID, text)
	if err != nil {
		slog.Error("failed to add item", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Added %s (%s)\n", item.Text, item.ID)
}

func runSustainedSetDone(listID, itemID string, done bool) {
	s, _, _ := openStore()
	defer s.Close()

	if err := s.SetSustainedItemCompleted(listID, itemID, done); err != nil {
		slog.Error("failed to update item", "error", err)
		os.Exit(1)
	}
	if done {
		fmt.Printf("Completed %s\n", itemID)
	} else {
		fmt.Printf("Reopened %s\n", itemID)
	}
}

func runSustainedRm(listID, itemID string) {
	s, _, _ := openStore()
	defer s.Close()

	if err := s.DeleteSustainedItem(listID, itemID); err != nil {
		slog.Error("failed to delete item", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted %s\n", itemID)
}

func runExport(path string) {
	s, cfg, home := openStore()
	defer s.Close()

	snap, err := backup.Export(s)
	if err != nil {
		slog.Error("failed to export store", "error", err)
		os.Exit(1)
	}

	if path == "" {
		path = config.MirrorPath(home, cfg)
	}
	if err := backup.WriteFile(path, snap); err != nil {
		slog.Error("failed to write snapshot", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d keys to %s\n", len(snap.Data), path)
}

func runImport(path string) {
	snap, err := backup.ReadFile(path)
	if err != nil {
		slog.Error("failed to read snapshot", "error", err)
		os.Exit(1)
	}

	s, _, _ := openStore()
	defer s.Close()

	if err := backup.Import(s, snap); err != nil {
		slog.Error("failed to import snapshot", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %d keys from %s\n", len(snap.Data), path)
}

func runClear(force bool) {
	if !force {
		fmt.Print("This will delete all tasks and completion history. Continue? [y/N] ")
		var response string
		_, _ = fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return
		}
	}

	s, _, _ := openStore()
	defer s.Close()

	if err := s.Clear(); err != nil {
		slog.Error("failed to clear store", "error", err)
		os.Exit(1)
	}
	fmt.Println("Store cleared.")
}

func runConfigInit() {
	home := resolveHome()
	cfg := config.DefaultConfig()

	if err := config.Save(home, cfg); err != nil {
		slog.Error("failed to save config", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Created config at %s\n", config.ConfigPath(home))
}

func runConfigValidate() {
	home := resolveHome()

	cfg, warnings, err := config.Load(home)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		fmt.Printf("Warning: %s\n", w)
	}

	errs := config.Validate(cfg)
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Printf("Error: %v\n", e)
		}
		os.Exit(1)
	}
	fmt.Println("Configuration is valid")
}
