package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "suiteprop/internal/delivery/context"
	"suiteprop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/maintenance-sub"
	localPushTimeout  = 30 * time.Second
)

// PushEnvelope is the body Pub/Sub push subscriptions POST to their endpoint.
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

// PushMessage is the message part of a PushEnvelope. Data is base64 JSON.
type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// localHTTPPublisher delivers maintenance events straight to a push
// endpoint so the dispatch flow can run without a Pub/Sub emulator.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

// NewLocalHTTPPublisher posts each event to endpoint as a push envelope.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
		now:      time.Now,
	}
}

func (p *localHTTPPublisher) PublishMaintenanceRequested(ctx context.Context, event *service.MaintenanceRequestedEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	envelope, err := p.envelope(event)
	if err != nil {
		return err
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.Wrap(err, "encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push to %s", p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint answered %d", resp.StatusCode)
	}

	p.logger.InfoContext(ctx, "Maintenance event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("message_id", envelope.Message.MessageID),
		slog.String("maintenance_request_id", event.Request.ID),
	)

	return nil
}

func (p *localHTTPPublisher) envelope(event *service.MaintenanceRequestedEvent) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode maintenance event")
	}

	return &PushEnvelope{
		Subscription: localSubscription,
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  eventAttributes(event),
			MessageID:   uuid.NewString(),
			PublishTime: p.now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// Close is a no-op; the HTTP client holds no long-lived resources.
func (p *localHTTPPublisher) Close() error {
	return nil
}
