package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"assistente-gestao/config"
	"assistente-gestao/internal/command"
	"assistente-gestao/internal/model"
	"assistente-gestao/internal/task"
)

func execCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command...>",
		Short: "Interpret a command and apply it to the task list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			return withUseCase(cmd.Context(), opts, func(ctx context.Context, e env) error {
				out, err := e.uc.ExecuteCommand(ctx, cliScope, task.CommandInput{Text: text})
				if err != nil {
					var rejected *task.RejectedError
					if errors.As(err, &rejected) {
						return fmt.Errorf("comando não reconhecido (%s)", rejected.Reason)
					}
					if out.Message != "" {
						return errors.New(out.Message)
					}
					return err
				}
				return printCommandOutput(cmd.OutOrStdout(), opts, out, e.today)
			})
		},
	}
}

func parseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <command...>",
		Short: "Interpret a command without touching the task list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			interp, err := loadInterpreter(opts)
			if err != nil {
				return err
			}
			// Result is JSON-shaped in both output modes.
			return printJSON(cmd.OutOrStdout(), interp.Parse(strings.Join(args, " ")))
		},
	}
}

func examplesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List example commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			interp, err := loadInterpreter(opts)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), opts, interp.Examples())
		},
	}
}

func suggestCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [partial...]",
		Short: "Suggest command templates for a partial command",
		RunE: func(cmd *cobra.Command, args []string) error {
			interp, err := loadInterpreter(opts)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), opts, interp.Suggestions(strings.Join(args, " ")))
		},
	}
}

func tasksCmd(opts *rootOptions) *cobra.Command {
	tasks := &cobra.Command{Use: "tasks", Short: "Inspect the task list"}
	tasks.AddCommand(tasksListCmd(opts))
	tasks.AddCommand(tasksStatsCmd(opts))
	return tasks
}

func tasksListCmd(opts *rootOptions) *cobra.Command {
	var in struct {
		status  string
		kind    string
		company string
		entity  string
		work    string
		search  string
		limit   int
		offset  int
	}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks ordered by due date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUseCase(cmd.Context(), opts, func(ctx context.Context, e env) error {
				out, err := e.uc.List(ctx, cliScope, task.ListInput{
					Status:  model.TaskStatus(in.status),
					Type:    model.TaskType(in.kind),
					Company: in.company,
					Entity:  in.entity,
					Work:    in.work,
					Search:  in.search,
					Limit:   in.limit,
					Offset:  in.offset,
				})
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), listView{
						Tasks:  toTaskViews(out.Tasks, e.today),
						Total:  out.Total,
						Limit:  out.Limit,
						Offset: out.Offset,
					})
				}
				printTasks(cmd.OutOrStdout(), out.Tasks, e.today)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&in.status, "status", "", "pendente or concluido")
	cmd.Flags().StringVar(&in.kind, "type", "", "Auto, Contrato, Aditamento, Desenvolvimento or Outro")
	cmd.Flags().StringVar(&in.company, "company", "", "auto entre empresa")
	cmd.Flags().StringVar(&in.entity, "entity", "", "entity substring")
	cmd.Flags().StringVar(&in.work, "work", "", "work (obra) substring")
	cmd.Flags().StringVarP(&in.search, "search", "q", "", "free-text search")
	cmd.Flags().IntVar(&in.limit, "limit", 0, "max rows (0 = all)")
	cmd.Flags().IntVar(&in.offset, "offset", 0, "rows to skip")
	return cmd
}

func tasksStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count tasks by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUseCase(cmd.Context(), opts, func(ctx context.Context, e env) error {
				out, err := e.uc.Stats(ctx, cliScope)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				printStats(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
}

func exportCmd(opts *rootOptions) *cobra.Command {
	var format, filter, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUseCase(cmd.Context(), opts, func(ctx context.Context, e env) error {
				out, err := e.uc.Export(ctx, cliScope, task.ExportInput{Format: format, Filter: filter})
				if err != nil {
					return err
				}
				if output == "-" {
					_, err = cmd.OutOrStdout().Write(out.Data)
					return err
				}
				path := output
				if path == "" {
					path = out.Filename
				}
				if err := os.WriteFile(path, out.Data, 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d tarefas exportadas para %s\n", out.Count, path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "json, backup, csv, markdown or yaml")
	cmd.Flags().StringVar(&filter, "filter", "all", "all, pending, completed or overdue")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path, - for stdout (default: generated name)")
	return cmd
}

// loadInterpreter builds an interpreter without opening storage.
func loadInterpreter(opts *rootOptions) (*command.Interpreter, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return newInterpreter(opts, cfg.Interpreter.Timezone)
}
