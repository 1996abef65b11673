package main

import (
	"github.com/spf13/cobra"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	db      string
	today   string
	json    bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "gestao",
		Short: "Contract and work-order deadlines from the terminal",
		Long: `gestao interprets Portuguese commands and manages the deadline list.

Examples:
  gestao exec "Mostrar pendentes para esta semana"
  gestao parse "Auto VIC_0725 reagenda para próxima quinta"
  gestao tasks list --status pendente
  gestao export --format csv --filter overdue`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.db, "db", "", "sqlite database path (overrides storage config)")
	root.PersistentFlags().StringVar(&opts.today, "today", "", "reference day as YYYY-MM-DD (default: now)")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "output JSON")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(execCmd(opts))
	root.AddCommand(parseCmd(opts))
	root.AddCommand(examplesCmd(opts))
	root.AddCommand(suggestCmd(opts))
	root.AddCommand(tasksCmd(opts))
	root.AddCommand(exportCmd(opts))
	return root
}
