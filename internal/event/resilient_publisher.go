package event

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/ChainBot_Go/internal/logger"
)

type retryItem struct {
	event   Event
	attempt int
	lastErr error
}

// ResilientPublisher wraps a Bus. A failed publish is queued and retried in
// the background with exponential backoff; events that exhaust their retries
// are appended to a dead-letter file.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	queue    chan retryItem
	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewResilientPublisher starts the retry worker
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		stop:       make(chan struct{}),
	}

	p.wg.Add(1)
	go p.worker()

	return p, nil
}

// Publish tries once and hands failures to the retry worker. It only returns
// an error when the context is already done.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.PublishWithRetry(ctx, event)
	return nil
}

// PublishWithRetry is Publish without a result for fire-and-forget callers
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return
	}

	item := retryItem{event: event, attempt: 1, lastErr: err}
	if p.maxRetries < 1 {
		p.writeDeadLetter(item, 1)
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	p.enqueue(item)
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops the worker and dead-letters anything still queued
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.stop) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		slog.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	drained := 0
	for {
		select {
		case item := <-p.queue:
			p.writeDeadLetter(item, item.attempt)
			drained++
		default:
			if drained > 0 {
				slog.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return p.deadLetter.Close()
		}
	}
}

func (p *ResilientPublisher) enqueue(item retryItem) {
	select {
	case p.queue <- item:
	default:
		slog.Error(LogMsgRetryQueueFull, "event_type", item.event.Type)
		p.writeDeadLetter(item, item.attempt)
	}
}

func (p *ResilientPublisher) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stop:
			return
		case item := <-p.queue:
			timer := time.NewTimer(CalculateRetryDelay(p.baseDelay, item.attempt))
			select {
			case <-p.stop:
				timer.Stop()
				p.writeDeadLetter(item, item.attempt)
				return
			case <-timer.C:
			}
			p.retry(item)
		}
	}
}

func (p *ResilientPublisher) retry(item retryItem) {
	err := p.inner.Publish(context.Background(), item.event)
	if err == nil {
		slog.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempt)
		return
	}

	item.lastErr = err
	if item.attempt >= p.maxRetries {
		slog.Error(LogMsgEventRetryExhausted, "event_type", item.event.Type, "attempts", item.attempt+1)
		p.writeDeadLetter(item, item.attempt+1)
		return
	}

	slog.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempt, "error", err)
	item.attempt++
	p.enqueue(item)
}

// writeDeadLetter records an event; attempts counts the initial publish too
func (p *ResilientPublisher) writeDeadLetter(item retryItem, attempts int) {
	if err := p.deadLetter.Write(item.event, attempts, item.lastErr); err != nil {
		slog.Error(LogMsgDeadLetterWriteFail, "event_type", item.event.Type, "error", err)
	}
}
