package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"recipebox/internal/model"
	"recipebox/internal/platform/rabbitmq"
)

var errMalformedActivity = errors.New("malformed activity")

type ActivityWriter interface {
	Create(ctx context.Context, activity *model.Activity) error
}

// ActivityPersistWorker drains the activity queue into the database.
type ActivityPersistWorker struct {
	conn      *amqp.Connection
	repo      ActivityWriter
	queueName string
	log       *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewActivityPersistWorker(conn *amqp.Connection, repo ActivityWriter, queueName string, log *slog.Logger) *ActivityPersistWorker {
	if log == nil {
		log = slog.Default()
	}
	return &ActivityPersistWorker{
		conn:      conn,
		repo:      repo,
		queueName: queueName,
		log:       log.With("component", "activity_worker", "queue", queueName),
	}
}

func (w *ActivityPersistWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	if err := rabbitmq.DeclareQueue(ch, w.queueName); err != nil {
		_ = ch.Close()
		cancel()
		return err
	}

	if err := ch.Qos(16, 0, false); err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("set worker qos failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					w.log.Warn("activity deliveries channel closed")
					return
				}
				w.deliver(workerCtx, d)
			}
		}
	}()

	w.log.Info("activity worker started")
	return nil
}

func (w *ActivityPersistWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

func (w *ActivityPersistWorker) deliver(ctx context.Context, d amqp.Delivery) {
	if err := w.handle(ctx, d.Body); err != nil {
		// Malformed payloads will never succeed; storage errors get one more try.
		requeue := !errors.Is(err, errMalformedActivity) && !d.Redelivered
		w.log.Error("persist activity failed", "error", err, "requeue", requeue)
		_ = d.Nack(false, requeue)
		return
	}
	_ = d.Ack(false)
}

func (w *ActivityPersistWorker) handle(ctx context.Context, body []byte) error {
	var activity model.Activity
	if err := json.Unmarshal(body, &activity); err != nil {
		return fmt.Errorf("%w: %v", errMalformedActivity, err)
	}
	if activity.UserID == 0 || activity.Kind == "" {
		return fmt.Errorf("%w: missing user or kind", errMalformedActivity)
	}

	// The broker may redeliver; ids are assigned by the database.
	activity.ID = 0
	return w.repo.Create(ctx, &activity)
}
