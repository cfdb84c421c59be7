package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/twiced-technology-gmbh/taskreport/internal/clierr"
	"github.com/twiced-technology-gmbh/taskreport/internal/config"
	"github.com/twiced-technology-gmbh/taskreport/internal/filelock"
	"github.com/twiced-technology-gmbh/taskreport/internal/output"
	"github.com/twiced-technology-gmbh/taskreport/internal/task"
)

var addCmd = &cobra.Command{
	Use:     "add [DESCRIPTION]",
	Aliases: []string{"create"},
	Short:   "Add a new task",
	Long: `Creates a new task file with the given description and optional fields.

Description can be provided as a positional argument or via --description.
Projects are dot-separated paths such as Home.Repairs.Kitchen.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().String("description", "", "task description (alternative to positional argument)")
	addCmd.Flags().String("status", "", "task status (default from config)")
	addCmd.Flags().String("priority", "", "task priority (default from config)")
	addCmd.Flags().String("project", "", "dot-separated project path")
	addCmd.Flags().StringSlice("tags", nil, "comma-separated tags")
	addCmd.Flags().String("notes", "", "task notes (markdown)")
	addCmd.Flags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		switch name {
		case "tag":
			name = "tags"
		case "proj":
			name = "project"
		case "body":
			name = "notes"
		}
		return pflag.NormalizedName(name)
	})
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	desc, err := resolveDescription(cmd, args)
	if err != nil {
		return err
	}

	dir, err := resolveDir()
	if err != nil {
		return err
	}

	// The lock keeps concurrent adds from reading the same next_id.
	var created *task.Task
	err = filelock.With(cmd.Context(), filepath.Join(dir, config.LockFileName), func() error {
		cfg, err := config.Load(dir)
		if err != nil {
			return err
		}
		created, err = addTask(cmd, cfg, desc)
		return err
	})
	if err != nil {
		return err
	}

	return outputAddResult(created)
}

func addTask(cmd *cobra.Command, cfg *config.Config, desc string) (*task.Task, error) {
	now := time.Now()
	t := &task.Task{
		ID:          cfg.NextID,
		Description: desc,
		Status:      cfg.Defaults.Status,
		Priority:    cfg.Defaults.Priority,
		Created:     now,
		Updated:     now,
	}

	if err := applyAddFlags(cmd, t, cfg); err != nil {
		return nil, err
	}

	path := filepath.Join(cfg.TasksPath(), task.GenerateFilename(t.ID, task.GenerateSlug(desc)))
	t.File = path
	if err := task.Write(path, t); err != nil {
		return nil, fmt.Errorf("writing task: %w", err)
	}

	cfg.NextID++
	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}
	logger.Info("task added", "id", t.ID, "project", t.Project, "file", path)
	return t, nil
}

func outputAddResult(t *task.Task) error {
	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, t)
	}

	output.Messagef(os.Stdout, "Created task #%d: %s", t.ID, t.Description)
	output.Messagef(os.Stdout, "  File: %s", t.File)
	output.Messagef(os.Stdout, "  Status: %s | Priority: %s", t.Status, t.Priority)
	if t.Project != "" {
		output.Messagef(os.Stdout, "  Project: %s", t.Project)
	}
	if len(t.Tags) > 0 {
		output.Messagef(os.Stdout, "  Tags: %s", strings.Join(t.Tags, ", "))
	}
	return nil
}

// resolveDescription returns the description from either the positional arg
// or --description.
func resolveDescription(cmd *cobra.Command, args []string) (string, error) {
	flagDesc, _ := cmd.Flags().GetString("description")
	hasPositional := len(args) > 0
	hasFlag := flagDesc != ""

	switch {
	case hasPositional && hasFlag:
		return "", clierr.New(clierr.InvalidInput,
			"description provided both as argument and --description flag; use one or the other")
	case hasPositional:
		return args[0], nil
	case hasFlag:
		return flagDesc, nil
	default:
		return "", errors.New("description is required: provide it as an argument or with --description")
	}
}

func applyAddFlags(cmd *cobra.Command, t *task.Task, cfg *config.Config) error {
	if v, _ := cmd.Flags().GetString("status"); v != "" {
		if err := task.ValidateStatus(v, cfg.Statuses); err != nil {
			return err
		}
		t.Status = v
	}
	if v, _ := cmd.Flags().GetString("priority"); v != "" {
		if err := task.ValidatePriority(v, cfg.Priorities); err != nil {
			return err
		}
		t.Priority = v
	}
	if v, _ := cmd.Flags().GetString("project"); v != "" {
		if err := task.ValidateProject(v); err != nil {
			return err
		}
		t.Project = v
	}
	if v, _ := cmd.Flags().GetStringSlice("tags"); len(v) > 0 {
		t.Tags = v
	}
	if v, _ := cmd.Flags().GetString("notes"); v != "" {
		t.Notes = v
	}
	return nil
}
