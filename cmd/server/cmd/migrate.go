package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"moyudiary/internal/app/server"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применить миграции хранилища",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := server.Migrate(cfg, log); err != nil {
			return fmt.Errorf("ошибка миграции: %w", err)
		}
		fmt.Println("✓ Миграции применены")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
