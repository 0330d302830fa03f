package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	tgDelivery "telegram-info-bot/internal/responder/delivery/telegram"
	"telegram-info-bot/internal/webhook"
	"telegram-info-bot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Bot identity as reported by getMe, shown on /health. May be empty
	// when Telegram was unreachable at startup.
	botUsername string

	telegramHandler tgDelivery.Handler
	security        *webhook.SecurityValidator
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	BotUsername string

	TelegramHandler tgDelivery.Handler
	Security        *webhook.SecurityValidator
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		botUsername:     cfg.BotUsername,
		telegramHandler: cfg.TelegramHandler,
		security:        cfg.Security,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Engine exposes the underlying gin engine for tests.
func (srv *HTTPServer) Engine() *gin.Engine {
	return srv.gin
}
