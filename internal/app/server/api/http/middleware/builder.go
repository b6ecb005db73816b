package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

type Middleware = func(ctx huma.Context, next func(huma.Context))

// Chains выдает цепочки мидлварей для операций API. Каждый вызов
// возвращает новый срез, обработчики не делят его между собой.
type Chains struct {
	access Middleware
	auth   Middleware
}

// NewChains: access пишет журнал запросов, auth требует активную сессию.
func NewChains(access, auth Middleware) *Chains {
	return &Chains{access: access, auth: auth}
}

// Public - операции, доступные без входа.
func (c *Chains) Public() huma.Middlewares {
	return huma.Middlewares{c.access}
}

// Protected - операции от имени активного пользователя.
func (c *Chains) Protected() huma.Middlewares {
	return huma.Middlewares{c.access, c.auth}
}
