package types

import (
	"golang.org/x/exp/slog"

	"moyudiary/internal/config"
)

type contextKey string

// EnvKey - ключ контекста команды, под которым лежит Env.
const EnvKey contextKey = "env"

// Env - загруженная конфигурация и логгер, общие для всех команд.
type Env struct {
	Config *config.Config
	Log    *slog.Logger
}
