package responder

import (
	"time"

	pkgLog "telegram-info-bot/pkg/log"
)

// DefaultDeliveryTimeout bounds one send so a hanging transport cannot
// accumulate unbounded outstanding work.
const DefaultDeliveryTimeout = 10 * time.Second

type usecase struct {
	l               pkgLog.Logger
	transport       Transport
	deliveryTimeout time.Duration
}

var _ UseCase = (*usecase)(nil)

// New creates the responder use case. The transport handle is constructed
// once at process start and injected; Handle is safe to call concurrently
// for distinct events.
func New(l pkgLog.Logger, transport Transport, deliveryTimeout time.Duration) UseCase {
	if deliveryTimeout <= 0 {
		deliveryTimeout = DefaultDeliveryTimeout
	}
	return &usecase{
		l:               l,
		transport:       transport,
		deliveryTimeout: deliveryTimeout,
	}
}
