package telegram

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"telegram-info-bot/internal/model"
	"telegram-info-bot/internal/responder"
	pkgLog "telegram-info-bot/pkg/log"
	pkgResponse "telegram-info-bot/pkg/response"
	pkgTelegram "telegram-info-bot/pkg/telegram"
)

type handler struct {
	l  pkgLog.Logger
	uc responder.UseCase
}

var errEmptyUpdate = errors.New("empty update payload")

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acks 200 as soon as the update is decoded and runs the pipeline in a
// background goroutine: Telegram expects the ack within seconds and the
// ack must not depend on the delivery outcome.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// JSON null (or {}) decodes cleanly into nothing at all. Reject it at
	// the boundary; it never reaches classification.
	if update.UpdateID == 0 && update.Message == nil {
		h.l.Warnf(ctx, "telegram handler: rejected empty update payload")
		pkgResponse.Error(c, errEmptyUpdate, nil)
		return
	}

	// Non-message updates (polls, channel_post, edits, ...) and messages
	// missing their chat carry nothing the responder can reply to.
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot into the domain event before spawning the goroutine to
	// avoid data races on the gin context.
	ev := toEvent(msg)
	reqID := pkgLog.RequestIDFromContext(ctx)

	go func() {
		// Detach from the request context, which is cancelled on response.
		bgCtx := pkgLog.ContextWithRequestID(context.Background(), reqID)
		outcome := h.uc.Handle(bgCtx, ev)
		switch outcome.Status {
		case model.OutcomeDelivered, model.OutcomeSkipped:
			h.l.Debugf(bgCtx, "telegram handler: update %d handled: %s", update.UpdateID, outcome.Status)
		default:
			h.l.Errorf(bgCtx, "telegram handler: update %d not delivered: %s (%s)",
				update.UpdateID, outcome.Status, outcome.Reason)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// toEvent maps a wire message to the domain event consumed by the pipeline.
func toEvent(msg *pkgTelegram.Message) model.Event {
	ev := model.Event{
		Chat: toChat(msg.Chat),
		Message: &model.Message{
			Text: msg.Text,
		},
	}
	if msg.From != nil {
		ev.Sender = toUser(msg.From)
	}
	if msg.ForwardFrom != nil {
		u := toUser(msg.ForwardFrom)
		ev.Message.ForwardFrom = &u
	}
	if msg.ForwardFromChat != nil {
		ch := toChat(msg.ForwardFromChat)
		ev.Message.ForwardFromChat = &ch
	}
	if msg.ForwardDate != nil {
		value, valid := msg.ForwardDate.Time()
		ev.Message.ForwardDate = &model.Timestamp{
			Raw:   msg.ForwardDate.Raw(),
			Value: value,
			Valid: valid,
		}
	}
	return ev
}

func toUser(u *pkgTelegram.User) model.User {
	return model.User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
	}
}

func toChat(c *pkgTelegram.Chat) model.Chat {
	return model.Chat{
		ID:       c.ID,
		Type:     model.ChatType(c.Type),
		Title:    c.Title,
		Username: c.Username,
	}
}
