package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vefa/internal/cli"
	"vefa/internal/collection"
	"vefa/internal/config"
	"vefa/internal/services"
	"vefa/internal/session"
)

// NewRootCmd builds the vefa-cli command tree. Tables go to out, logs to
// errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	var (
		backendFlag  string
		dbFlag       string
		logLevelFlag string
		state        session.State
	)
	st := newStyles(out)

	root := &cobra.Command{
		Use:           "vefa-cli",
		Short:         "Print the purchase tracker summaries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.SetupLogger(errOut, logLevelFlag, "text")

			cfg := config.Load()
			if backendFlag != "" {
				cfg.DataBackend = backendFlag
			}
			if dbFlag != "" {
				cfg.SQLiteDBPath = dbFlag
			}
			cfg.LogLevel = logLevelFlag
			if err := cfg.Validate(); err != nil {
				return err
			}

			snap, err := cli.LoadSnapshot(cmd.Context(), logger, cfg)
			if err != nil {
				return fmt.Errorf("load seed data: %w", err)
			}
			state = session.NewWorkspace(snap).State()
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&backendFlag, "backend", "b", "", "Seed backend: memory or sqlite (default $DATA_BACKEND)")
	root.PersistentFlags().StringVar(&dbFlag, "db", "", "SQLite seed database path (default $SQLITE_DB_PATH)")
	root.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn", "Log level written to stderr")

	root.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Project overview and financing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeSummary(out, st, services.BuildOverview(state), services.BuildFinance(state))
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "payments",
		Short: "Payment schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writePayments(out, st, services.BuildSchedule(state))
		},
	})

	var docCategory, docQuery string
	documentsCmd := &cobra.Command{
		Use:   "documents",
		Short: "Documents, filtered by category and name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDocuments(out, st, services.BuildDocuments(state, docCategory, docQuery))
		},
	}
	documentsCmd.Flags().StringVarP(&docCategory, "category", "c", collection.AllLabel, "Document category")
	documentsCmd.Flags().StringVarP(&docQuery, "query", "q", "", "Case-insensitive name search")
	root.AddCommand(documentsCmd)

	var contactCategory string
	contactsCmd := &cobra.Command{
		Use:   "contacts",
		Short: "Contacts, filtered by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeContacts(out, st, services.BuildContacts(state, contactCategory))
		},
	}
	contactsCmd.Flags().StringVarP(&contactCategory, "category", "c", collection.AllLabel, "Contact category")
	root.AddCommand(contactsCmd)

	root.AddCommand(&cobra.Command{
		Use:   "steps",
		Short: "Purchase steps and their documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeSteps(out, st, services.BuildSteps(state))
		},
	})

	return root
}
