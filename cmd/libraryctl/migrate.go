package main

import (
	"fmt"

	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/db"
	"github.com/spf13/cobra"
)

func newMigrateCmd(e env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the books, members and loans tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.connect()
			if err != nil {
				return err
			}

			if err := db.Migrate(s.db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "migrated %s store\n", s.cfg.DBDriver)
			return nil
		},
	}
}
