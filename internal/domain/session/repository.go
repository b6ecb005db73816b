package session

import (
	"context"

	"moyudiary/internal/domain/moyulog"
	"moyudiary/internal/domain/settings"
)

// Repository - постоянное хранилище сессии и данных пользователя.
type Repository interface {
	CurrentUser(ctx context.Context) (string, bool)
	SetCurrentUser(ctx context.Context, userID string) error
	LogoutUser(ctx context.Context) error
	Settings(ctx context.Context, userID string) settings.Settings
	SaveSettings(ctx context.Context, userID string, st settings.Settings) error
	Logs(ctx context.Context, userID string) []moyulog.Log
	SaveLog(ctx context.Context, userID string, l moyulog.Log) error
	ClearLogs(ctx context.Context, userID string) error
}
