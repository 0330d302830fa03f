package responder

import "telegram-info-bot/internal/model"

// Classify resolves an event to its reply variant. It is total and pure:
// unrecognized shapes resolve to Ignored, never an error.
//
// The order is a deliberate tie-break: /start wins over forward metadata,
// forward metadata wins over plain text.
func Classify(ev model.Event) model.Variant {
	msg := ev.Message
	if msg == nil {
		return model.VariantIgnored
	}
	if msg.Text == CommandStart {
		return model.VariantStartCommand
	}
	if msg.ForwardFrom != nil || msg.ForwardFromChat != nil {
		return model.VariantForwarded
	}
	if msg.Text != "" {
		return model.VariantPlain
	}
	// Non-text content (photo, sticker, ...) with no forward metadata.
	return model.VariantIgnored
}
