package command

import (
	"context"
	"strings"

	"github.com/sandevgo/grubbot/internal/core"
	"github.com/sandevgo/grubbot/pkg/log"
)

// OrderService is what the interpreter needs from the order store.
type OrderService interface {
	ListAvailableMenu(ctx context.Context) ([]core.MenuItem, error)
	FindMenuItem(ctx context.Context, name string) (core.MenuItem, error)
	CreateOrder(ctx context.Context, item core.MenuItem, quantity int) (core.Order, error)
	FindOrder(ctx context.Context, id string) (core.Order, error)
}

// Handler is one bot command, keyed on the first word of the message.
type Handler interface {
	Keyword() string
	Execute(ctx context.Context, input string) string
}

// Router maps inbound text to exactly one reply. It never returns an error:
// user-facing failures are always a text message.
type Router struct {
	handlers map[string]Handler
}

func New(handlers []Handler) *Router {
	r := &Router{
		handlers: make(map[string]Handler),
	}
	for _, h := range handlers {
		r.handlers[h.Keyword()] = h
	}
	return r
}

func (r *Router) Dispatch(ctx context.Context, text string) (reply string) {
	logger := log.FromCtx(ctx)

	// A recognized command must still produce a reply if its handler blows up.
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().Interface("panic", rec).Str("input", text).Msg("command handler panicked")
			reply = replyGenericApology
		}
	}()

	trimmed := strings.TrimSpace(text)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return replyWelcome
	}

	keyword := strings.ToLower(fields[0])
	h, ok := r.handlers[keyword]
	if !ok {
		return replyWelcome
	}

	logger.Info().Str("command", keyword).Msg("dispatching command")
	return h.Execute(ctx, trimmed)
}
