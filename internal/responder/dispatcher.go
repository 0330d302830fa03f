package responder

import (
	"context"
	"fmt"

	"telegram-info-bot/internal/model"
)

// Handle runs classify → format → deliver for one event and returns the
// outcome. It never panics and never returns an error: any internal fault
// is contained here so the webhook boundary can always ack the request.
func (uc *usecase) Handle(ctx context.Context, ev model.Event) (out model.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: recovered: %v", LogPrefixHandle, r)
			out = model.Outcome{
				Status: model.OutcomeHandlingFailed,
				Reason: fmt.Sprintf("%v", r),
			}
		}
	}()

	variant := Classify(ev)
	if variant == model.VariantIgnored {
		uc.l.Debugf(ctx, "%s: nothing to reply to in chat %d", LogPrefixHandle, ev.Chat.ID)
		return model.Outcome{Status: model.OutcomeSkipped, Variant: variant}
	}

	text := Format(variant, ev)

	sendCtx, cancel := context.WithTimeout(ctx, uc.deliveryTimeout)
	defer cancel()

	if err := uc.transport.SendMessage(sendCtx, ev.Chat.ID, text); err != nil {
		// Not retried here: retry/backoff belongs to the transport.
		uc.l.Errorf(ctx, "%s: delivery to chat %d failed: %v", LogPrefixHandle, ev.Chat.ID, err)
		return model.Outcome{
			Status:  model.OutcomeDeliveryFailed,
			Variant: variant,
			Reason:  err.Error(),
		}
	}

	uc.l.Infof(ctx, "%s: delivered %s reply to chat %d", LogPrefixHandle, variant, ev.Chat.ID)
	return model.Outcome{Status: model.OutcomeDelivered, Variant: variant}
}
