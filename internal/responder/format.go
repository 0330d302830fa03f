package responder

import (
	"fmt"
	"strings"

	"telegram-info-bot/internal/model"
)

// Format renders the reply text for a classified event. Pure and
// deterministic: identical events yield byte-identical replies. Reply
// length limits are the caller's concern.
func Format(variant model.Variant, ev model.Event) string {
	switch variant {
	case model.VariantStartCommand:
		return fmt.Sprintf(TemplateStart, ev.Sender.FirstName)
	case model.VariantForwarded:
		return formatForwarded(ev)
	case model.VariantPlain:
		return formatPlain(ev)
	default:
		return ""
	}
}

func formatForwarded(ev model.Event) string {
	blocks := []block{userBlock(HeaderRequestedBy, ev.Sender)}

	msg := ev.Message
	if msg.ForwardFrom != nil {
		blocks = append(blocks, userBlock(HeaderForwardUser, *msg.ForwardFrom))
	}
	if msg.ForwardFromChat != nil {
		// Title is part of the chat identity here even when the origin
		// chat never set one, so the line stays.
		blocks = append(blocks, chatBlock(HeaderForwardChat, *msg.ForwardFromChat, true))
	}
	if msg.ForwardDate != nil {
		blocks = append(blocks, dateBlock(*msg.ForwardDate))
	}
	blocks = append(blocks, chatBlock(HeaderCurrentChat, ev.Chat, false))

	return render(HeaderForwardedInfo, blocks, "")
}

func formatPlain(ev model.Event) string {
	blocks := []block{
		userBlock(HeaderSender, ev.Sender),
		chatBlock(HeaderPlainChat, ev.Chat, false),
	}
	return render(HeaderPlainInfo, blocks, FooterForwardHint)
}

// block is one titled group of "• Label: value" lines.
type block struct {
	header string
	lines  []string
}

// add appends a line, skipping empty optional values.
func (b *block) add(label, value string) {
	if value == "" {
		return
	}
	b.addRequired(label, value)
}

// addRequired appends a line even when the value is empty.
func (b *block) addRequired(label, value string) {
	b.lines = append(b.lines, fmt.Sprintf("• %s: %s", label, value))
}

func userBlock(header string, u model.User) block {
	b := block{header: header}
	b.addRequired(LabelID, fmt.Sprintf("%d", u.ID))
	b.addRequired(LabelFirstName, u.FirstName)
	b.add(LabelLastName, u.LastName)
	b.add(LabelUsername, atUsername(u.Username))
	return b
}

func chatBlock(header string, c model.Chat, titleRequired bool) block {
	b := block{header: header}
	b.addRequired(LabelID, fmt.Sprintf("%d", c.ID))
	b.addRequired(LabelType, string(c.Type))
	if titleRequired {
		b.addRequired(LabelTitle, c.Title)
	} else {
		b.add(LabelTitle, c.Title)
	}
	b.add(LabelUsername, atUsername(c.Username))
	return b
}

func dateBlock(ts model.Timestamp) block {
	b := block{header: HeaderForwardDate}
	if ts.Valid {
		b.addRequired(LabelDate, ts.Value.UTC().Format(ForwardDateLayout))
	} else {
		// Malformed timestamps degrade to their raw text instead of
		// failing the whole reply.
		b.addRequired(LabelDate, ts.Raw)
	}
	return b
}

func atUsername(username string) string {
	if username == "" {
		return ""
	}
	return "@" + username
}

func render(header string, blocks []block, footer string) string {
	var sb strings.Builder
	sb.WriteString(header)
	for _, b := range blocks {
		sb.WriteString("\n\n")
		sb.WriteString(b.header)
		for _, line := range b.lines {
			sb.WriteString("\n")
			sb.WriteString(line)
		}
	}
	if footer != "" {
		sb.WriteString("\n\n")
		sb.WriteString(footer)
	}
	return sb.String()
}
