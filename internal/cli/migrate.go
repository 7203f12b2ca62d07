package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"moviedb/internal/database/migration"
)

func migrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the catalog schema if it does not exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, err := e.openDB(ctx, e.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := migration.EnsureMigrated(ctx, db, e.log, e.cfg.Database.Host); err != nil {
				return err
			}
			fmt.Fprintln(e.out, "Schema is up to date.")
			return nil
		},
	}
}
