package diary

import (
	"fmt"

	"github.com/spf13/cobra"

	"moyudiary/cmd/server/cmd/types"
	"moyudiary/internal/app/server"
	"moyudiary/internal/domain/session"
)

// DiaryCmd - родительская команда для работы с дневником без браузера.
// Команды пишут в то же хранилище, что и сервер, поэтому их не стоит
// запускать одновременно с serve.
var DiaryCmd = &cobra.Command{
	Use:   "diary",
	Short: "Работа с дневником из терминала",
}

func openApp(cmd *cobra.Command) (*server.App, error) {
	env, ok := cmd.Context().Value(types.EnvKey).(*types.Env)
	if !ok || env == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	app, err := server.New(cmd.Context(), env.Config, env.Log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации приложения: %w", err)
	}
	return app, nil
}

func currentSession(app *server.App) (session.Session, error) {
	sess, ok := app.Sessions().Current()
	if !ok {
		return session.Session{}, fmt.Errorf("вход не выполнен: moyudiary diary login <имя>")
	}
	return sess, nil
}
