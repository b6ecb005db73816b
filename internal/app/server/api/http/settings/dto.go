package settings

import "moyudiary/internal/domain/settings"

type output struct {
	Body settings.Settings
}

type updateInput struct {
	Body settings.Settings
}
