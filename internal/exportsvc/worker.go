package exportsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pixil98/gonorth-export/internal/messaging"
)

// QueueGroup is the NATS queue group shared by all export workers.
const QueueGroup = "gonorth-export"

// Broker is the part of the messaging server the worker uses.
type Broker interface {
	WaitReady(ctx context.Context) error
	HandleRequests(subject string, queue string, handler func(data []byte) []byte) (func(), error)
}

// RenderedEvent is published after each handled request.
type RenderedEvent struct {
	RequestId  string        `json:"request_id"`
	ErrorCount int           `json:"error_count"`
	Failed     bool          `json:"failed"`
	Duration   time.Duration `json:"duration_ns"`
}

// Worker serves render requests until its context is done.
type Worker struct {
	broker    Broker
	service   *Service
	subject   string
	publisher messaging.Publisher
	events    string
}

type WorkerOpt func(*Worker)

// WithEvents publishes a RenderedEvent on subject after every request.
func WithEvents(p messaging.Publisher, subject string) WorkerOpt {
	return func(w *Worker) {
		w.publisher = p
		w.events = subject
	}
}

func NewWorker(broker Broker, service *Service, subject string, opts ...WorkerOpt) *Worker {
	w := &Worker{broker: broker, service: service, subject: subject}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Worker) Start(ctx context.Context) error {
	if err := w.broker.WaitReady(ctx); err != nil {
		return fmt.Errorf("waiting for broker: %w", err)
	}

	unsubscribe, err := w.broker.HandleRequests(w.subject, QueueGroup, func(data []byte) []byte {
		return w.handle(ctx, data)
	})
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", w.subject, err)
	}
	slog.InfoContext(ctx, "export worker listening", "subject", w.subject)

	<-ctx.Done()
	unsubscribe()
	slog.InfoContext(ctx, "export worker stopped", "subject", w.subject)

	return nil
}

func (w *Worker) handle(ctx context.Context, data []byte) []byte {
	started := time.Now()

	var req RenderRequest
	var resp *RenderResponse
	if err := json.Unmarshal(data, &req); err != nil {
		resp = &RenderResponse{RequestId: uuid.NewString(), Error: fmt.Sprintf("decoding request: %v", err)}
	} else {
		if req.RequestId == "" {
			req.RequestId = uuid.NewString()
		}
		resp = w.service.Render(ctx, &req)
	}

	if resp.Error != "" {
		slog.WarnContext(ctx, "render request failed", "request_id", resp.RequestId, "error", resp.Error)
	} else {
		slog.DebugContext(ctx, "render request handled", "request_id", resp.RequestId, "content_errors", len(resp.Errors))
	}

	if w.publisher != nil {
		event := RenderedEvent{
			RequestId:  resp.RequestId,
			ErrorCount: len(resp.Errors),
			Failed:     resp.Error != "",
			Duration:   time.Since(started),
		}
		if err := w.publisher.PublishJSON(w.events, event); err != nil {
			slog.WarnContext(ctx, "publishing render event", "request_id", resp.RequestId, "error", err)
		}
	}

	out, err := json.Marshal(resp)
	if err != nil {
		slog.ErrorContext(ctx, "encoding render response", "request_id", resp.RequestId, "error", err)
		out, _ = json.Marshal(&RenderResponse{RequestId: resp.RequestId, Error: "encoding response failed"})
	}
	return out
}
