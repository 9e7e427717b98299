// FILE: internal/service/audit_service.go
package service

import (
	"context"
	"log"

	"dreamlife-be/internal/pkg/logger"
	"dreamlife-be/pkg/events"
	pktNats "dreamlife-be/pkg/nats"
)

// IAuditService drains the event bus into the structured log, giving an
// append-only trail of logins, contact submissions, and payments.
type IAuditService interface {
	Start()
}

type auditService struct {
	subscriber *pktNats.Subscriber
	logger     logger.ILogger
}

func NewAuditService(subscriber *pktNats.Subscriber, log logger.ILogger) IAuditService {
	return &auditService{
		subscriber: subscriber,
		logger:     log,
	}
}

func (s *auditService) Start() {
	err := s.subscriber.Subscribe("events.>", "dreamlife-audit", func(ctx context.Context, event events.Event) error {
		s.logger.Info("Audit", "Event received", map[string]interface{}{
			"type":    event.EventType(),
			"payload": event.Payload(),
		})
		return nil
	})
	if err != nil {
		log.Printf("[WARN] Audit subscriber failed to start: %v", err)
	}
}
