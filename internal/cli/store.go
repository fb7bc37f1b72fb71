package cli

import (
	"github.com/spf13/cobra"

	"github.com/NutshellEngineering/uuid/internal/store"
)

// newStoreCommand constructs the `store` command.
func newStoreCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Generate UUIDs into a MySQL table, or list the greatest stored keys",
		Long: "Create the table if needed and insert --count generated UUIDs in one transaction.\n" +
			"With --latest K, print the K greatest stored keys instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			latest, _ := cmd.Flags().GetInt("latest")
			ctx := cmd.Context()

			s, err := a.openStore(ctx, store.Config{DSN: a.cfg.MySQL.DSN, Table: a.cfg.MySQL.Table}, a.logger)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Migrate(ctx); err != nil {
				return err
			}

			if latest > 0 {
				ids, err := s.Latest(ctx, latest)
				if err != nil {
					return err
				}
				return writeIDs(cmd.OutOrStdout(), ids, "canonical", false)
			}

			ids, err := a.generate(ctx)
			if err != nil {
				return err
			}
			if err := s.Save(ctx, ids...); err != nil {
				return err
			}
			a.logger.Info("Stored UUIDs", "table", a.cfg.MySQL.Table, "count", len(ids))
			return writeIDs(cmd.OutOrStdout(), ids, "canonical", false)
		},
	}
	addGenFlags(cmd)
	cmd.Flags().String("dsn", "", "MySQL DSN, e.g. user:pass@tcp(localhost:3306)/db")
	cmd.Flags().String("table", store.DefaultTable, "Table name")
	cmd.Flags().Int("latest", 0, "List the K greatest stored keys instead of generating")
	return cmd
}
