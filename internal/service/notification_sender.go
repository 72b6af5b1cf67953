package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"hyperapp/internal/config"
	"hyperapp/internal/redis"
	"hyperapp/pkg/e"
)

// QueueNotifier implements Notifier by handing notifications to the Redis
// queue. Delivery to the push gateway happens in NotificationSender, so the
// proximity monitor never waits on the network.
type QueueNotifier struct {
	queue  *redis.NotificationQueue
	logger *slog.Logger
}

func NewQueueNotifier(queue *redis.NotificationQueue, logger *slog.Logger) *QueueNotifier {
	return &QueueNotifier{queue: queue, logger: logger}
}

func (n *QueueNotifier) Notify(ctx context.Context, title, body string) error {
	return n.queue.Enqueue(ctx, redis.NotificationPayload{
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	})
}

// NotificationSender drains the queue and POSTs payloads to the push
// gateway. Runs until the context is canceled.
type NotificationSender struct {
	logger *slog.Logger
	cfg    config.NotifyConfig
	queue  *redis.NotificationQueue
	http   *http.Client
}

func NewNotificationSender(logger *slog.Logger, cfg config.NotifyConfig, q *redis.NotificationQueue) *NotificationSender {
	return &NotificationSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *NotificationSender) Run(ctx context.Context) {
	s.logger.Info("notification sender started", slog.String("url", s.cfg.GatewayURL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("notification sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if s.cfg.Disabled {
			s.logger.Debug("notification delivery disabled, dropping", slog.String("title", payload.Title))
			continue
		}

		s.sendWithRetry(ctx, payload)
	}
}

func (s *NotificationSender) sendWithRetry(ctx context.Context, p redis.NotificationPayload) {
	const maxRetries = 3

	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("marshal notification payload failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.GatewayURL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create notification request failed", slog.String("error", err.Error()))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("notification delivery failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.GatewayURL),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
