package responder

import (
	"context"

	"telegram-info-bot/internal/model"
)

// UseCase dispatches one inbound event: classify, format, deliver.
type UseCase interface {
	Handle(ctx context.Context, ev model.Event) model.Outcome
}

// Transport sends a reply text to a chat. It is an injected capability;
// the responder does not care about its wire format.
type Transport interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}
