package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskboard/taskboard-api/internal/model"
	"github.com/taskboard/taskboard-api/internal/view"
)

func newListCmd() *cobra.Command {
	var (
		status string
		due    string
		search string
		sortBy string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally filtered and sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := api.FetchAll(cmd.Context())
			if err != nil {
				return err
			}

			f := view.Filter{
				Search: search,
				Status: view.StatusFilter(status),
				Due:    view.DueFilter(due),
			}
			tasks = view.Sort(f.Apply(tasks, time.Now()), view.SortOrder(sortBy))

			printTasks(tasks)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "all", "status filter: all, active, completed")
	cmd.Flags().StringVar(&due, "due", "all", "due-date filter: all, overdue, today, this_week")
	cmd.Flags().StringVar(&search, "search", "", "substring match on title or description")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order: date or priority")
	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := api.FetchByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printTasks([]model.Task{task})
			return nil
		},
	}
}

func newCreateCmd() *cobra.Command {
	var (
		title       string
		description string
		priority    string
		dueDate     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := api.Create(cmd.Context(), model.CreateTaskInput{
				Title:       title,
				Description: description,
				Priority:    model.Priority(priority),
				DueDate:     dueDate,
			})
			if err != nil {
				return err
			}
			fmt.Printf("created %s\n", task.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "task title")
	cmd.Flags().StringVar(&description, "desc", "", "task description")
	cmd.Flags().StringVar(&priority, "priority", "", "priority: low, medium, high")
	cmd.Flags().StringVar(&dueDate, "due", "", "due date (YYYY-MM-DD)")
	return cmd
}

func newUpdateCmd() *cobra.Command {
	var (
		title       string
		description string
		priority    string
		dueDate     string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("priority") {
				p := model.Priority(priority)
				patch.Priority = &p
			}
			if cmd.Flags().Changed("due") {
				patch.DueDate = &dueDate
			}

			task, err := api.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			printTasks([]model.Task{task})
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "task title")
	cmd.Flags().StringVar(&description, "desc", "", "task description")
	cmd.Flags().StringVar(&priority, "priority", "", "priority: low, medium, high")
	cmd.Flags().StringVar(&dueDate, "due", "", "due date (YYYY-MM-DD)")
	return cmd
}

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			done := true
			task, err := api.Update(cmd.Context(), args[0], model.TaskPatch{Completed: &done})
			if err != nil {
				return err
			}
			fmt.Printf("completed %s\n", task.ID)
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted %s\n", args[0])
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := api.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("total: %d\nactive: %d\ncompleted: %d\n", stats.Total, stats.Active, stats.Completed)
			for p, n := range stats.ByPriority {
				fmt.Printf("%s: %d\n", p, n)
			}
			return nil
		},
	}
}

func printTasks(tasks []model.Task) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tDUE\tDONE")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n", t.ID, t.Title, t.Priority, t.DueDate, t.Completed)
	}
	w.Flush()
}
