package webhook

// SecurityConfig configures inbound webhook hardening. Every check is
// optional: an empty secret or allowlist disables that check.
type SecurityConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// SecretTokenHeader is the header Telegram echoes when setWebhook was
// called with a secret_token.
const SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"
