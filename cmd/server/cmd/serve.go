package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"moyudiary/internal/app/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить веб-приложение",
	Long: `Открывает хранилище, восстанавливает последнюю сессию и обслуживает
страницы и JSON API по адресу RUN_ADDRESS до сигнала завершения.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := server.New(cmd.Context(), cfg, log)
		if err != nil {
			return fmt.Errorf("ошибка инициализации приложения: %w", err)
		}
		defer func() {
			if err := app.Close(); err != nil {
				log.Error("Ошибка закрытия хранилища", "error", err)
			}
		}()

		return app.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
