package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/taskreport/internal/board"
	"github.com/twiced-technology-gmbh/taskreport/internal/output"
	"github.com/twiced-technology-gmbh/taskreport/internal/task"
)

var showCmd = &cobra.Command{
	Use:   "show ID[,ID|FROM-TO...]",
	Short: "Show task details",
	Long:  `Displays full details of one or more tasks including their notes.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	ids, err := board.ParseIDs(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tasks := make([]*task.Task, 0, len(ids))
	for _, id := range ids {
		path, err := task.FindByID(cfg.TasksPath(), id)
		if err != nil {
			return err
		}
		t, err := task.Read(path)
		if err != nil {
			return err
		}
		tasks = append(tasks, t)
	}

	switch outputFormat() {
	case output.FormatJSON:
		if len(tasks) == 1 {
			return output.JSON(os.Stdout, tasks[0])
		}
		return output.JSON(os.Stdout, tasks)
	case output.FormatCompact:
		for _, t := range tasks {
			output.TaskDetailCompact(os.Stdout, t)
		}
		return nil
	}

	for i, t := range tasks {
		if i > 0 {
			output.Messagef(os.Stdout, "")
		}
		output.TaskDetail(os.Stdout, t)
	}
	return nil
}
