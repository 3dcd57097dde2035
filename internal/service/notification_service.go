package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// notificationRetryIntervals are the waits between delivery attempts.
var notificationRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// notificationService implements ports.NotificationService by POSTing to
// the marketplace notification service. Delivery never blocks the caller
// and its failures are only logged.
type notificationService struct {
	url        string
	secret     string
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	retries    []time.Duration
	log        zerolog.Logger
}

// NewNotificationService creates a new notification service.
// An empty url logs notifications instead of sending them.
func NewNotificationService(
	url string,
	secret string,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	log zerolog.Logger,
) ports.NotificationService {
	return &notificationService{
		url:        url,
		secret:     secret,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		retries:    notificationRetryIntervals,
		log:        log,
	}
}

// Notify sends n asynchronously with retries.
func (s *notificationService) Notify(_ context.Context, n domain.Notification) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	if s.url == "" {
		s.log.Info().
			Str("notification_id", n.ID.String()).
			Str("owner_id", n.OwnerID.String()).
			Str("type", string(n.Type)).
			Str("title", n.Title).
			Msg("notification (no delivery url configured)")
		return
	}

	body, err := json.Marshal(n)
	if err != nil {
		s.log.Error().Err(err).Str("notification_id", n.ID.String()).Msg("notification: failed to marshal payload")
		return
	}

	go s.deliverWithRetries(body, n.ID.String())
}

func (s *notificationService) deliverWithRetries(body []byte, id string) {
	var signature string
	if s.secret != "" {
		signature = s.sigSvc.Sign(s.secret, string(body))
	}

	for attempt := 0; attempt <= len(s.retries); attempt++ {
		if attempt > 0 {
			time.Sleep(s.retries[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(body))
		if err != nil {
			s.log.Error().Err(err).Str("notification_id", id).Msg("notification: failed to create request")
			return
		}
		req.Header.Set("Content-Type", "application/json")
		if signature != "" {
			req.Header.Set("X-Signature", signature)
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			s.log.Warn().Err(err).Str("notification_id", id).Int("attempt", attempt+1).Msg("notification: delivery failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			s.log.Debug().Str("notification_id", id).Int("attempt", attempt+1).Msg("notification: delivered")
			return
		}

		s.log.Warn().Str("notification_id", id).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("notification: non-2xx response, retrying")
	}

	s.log.Error().Str("notification_id", id).Msg("notification: all retry attempts exhausted")
}
