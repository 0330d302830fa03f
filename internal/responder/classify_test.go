package responder_test

import (
	"testing"

	"telegram-info-bot/internal/model"
	"telegram-info-bot/internal/responder"
)

func TestClassify(t *testing.T) {
	user := model.User{ID: 1, FirstName: "Ann"}
	chat := model.Chat{ID: 100, Type: model.ChatTypePrivate}

	tests := []struct {
		name string
		msg  *model.Message
		want model.Variant
	}{
		{
			name: "no message is ignored",
			msg:  nil,
			want: model.VariantIgnored,
		},
		{
			name: "start command",
			msg:  &model.Message{Text: "/start"},
			want: model.VariantStartCommand,
		},
		{
			name: "start command wins over forward metadata",
			msg: &model.Message{
				Text:        "/start",
				ForwardFrom: &model.User{ID: 5, FirstName: "Bob"},
			},
			want: model.VariantStartCommand,
		},
		{
			name: "forwarded from user",
			msg: &model.Message{
				Text:        "look at this",
				ForwardFrom: &model.User{ID: 5, FirstName: "Bob"},
			},
			want: model.VariantForwarded,
		},
		{
			name: "forwarded from chat only",
			msg: &model.Message{
				ForwardFromChat: &model.Chat{ID: -100, Type: model.ChatTypeChannel},
			},
			want: model.VariantForwarded,
		},
		{
			name: "plain text",
			msg:  &model.Message{Text: "hello"},
			want: model.VariantPlain,
		},
		{
			name: "non-text content without forward metadata is ignored",
			msg:  &model.Message{},
			want: model.VariantIgnored,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := model.Event{Sender: user, Chat: chat, Message: tt.msg}
			if got := responder.Classify(ev); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}
