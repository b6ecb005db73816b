package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"moyudiary/cmd/server/cmd/diary"
	"moyudiary/cmd/server/cmd/types"
	"moyudiary/internal/config"
	"moyudiary/internal/utils/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "moyudiary",
	Short: "摸鱼日记 - дневник перерывов с живым счетчиком заработка",
	Long: `moyudiary - локальное веб-приложение для учета перерывов на работе.

Считает, сколько заработано с начала рабочего дня, сколько дней осталось
до зарплаты и до праздника, и добавляет к каждой записи короткий комментарий.
Данные хранятся на устройстве, отдельно для каждого имени пользователя.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	log = logger.New(cfg.Env, logger.WithLevel(cfg.Logger.LogLevel))

	env := &types.Env{Config: cfg, Log: log}
	cmd.SetContext(context.WithValue(cmd.Context(), types.EnvKey, env))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (yaml, json, toml)")

	rootCmd.AddCommand(diary.DiaryCmd)
}
