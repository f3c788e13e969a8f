package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/spicemart/spicemart/internal/adapter/mailer"
	"github.com/spicemart/spicemart/internal/domain/model"
)

const (
	defaultQueueSize = 16
	maxDeadLetters   = 256
	sendTimeout      = 10 * time.Second
)

// Notifier delivers order status emails asynchronously. Dispatch never blocks
// the caller; failed or overflowing notifications land in a bounded
// dead-letter list so drift stays observable.
type Notifier struct {
	mailer mailer.Client
	logger *slog.Logger

	queue  chan model.Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex

	deadMu sync.Mutex
	dead   []model.Notification
}

// NewNotifier constructs the notification dispatcher.
func NewNotifier(client mailer.Client, queueSize int, logger *slog.Logger) *Notifier {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Notifier{
		mailer: client,
		logger: logger,
		queue:  make(chan model.Notification, queueSize),
	}
}

// Start launches background delivery.
func (n *Notifier) Start(ctx context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel

	n.wg.Add(1)
	go n.run(runCtx)
}

// Stop waits for the delivery loop to finish. Notifications still queued at
// shutdown are recorded as dead letters rather than silently dropped.
func (n *Notifier) Stop() {
	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.mu.Unlock()

	n.wg.Wait()

	for {
		select {
		case notification := <-n.queue:
			n.recordDeadLetter(notification)
		default:
			return
		}
	}
}

// Dispatch enqueues a notification. A full queue records the notification as
// a dead letter and reports the overflow; it never blocks.
func (n *Notifier) Dispatch(notification model.Notification) error {
	select {
	case n.queue <- notification:
		return nil
	default:
		n.recordDeadLetter(notification)
		return fmt.Errorf("notification queue full")
	}
}

// DeadLetters returns a copy of notifications that could not be delivered.
func (n *Notifier) DeadLetters() []model.Notification {
	n.deadMu.Lock()
	defer n.deadMu.Unlock()
	return append([]model.Notification(nil), n.dead...)
}

func (n *Notifier) run(ctx context.Context) {
	defer n.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case notification := <-n.queue:
			n.send(ctx, notification)
		}
	}
}

func (n *Notifier) send(ctx context.Context, notification model.Notification) {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	msg := mailer.Email{
		To:      notification.Recipient,
		ToName:  notification.BuyerName,
		Subject: "Order status update",
		HTML: fmt.Sprintf(
			`<h1>Hi %s, your order status is now: <span style="color:red;">%s</span></h1>`+
				`<p>Visit <a href=%q>your dashboard</a> for more details.</p>`,
			notification.BuyerName, notification.Status, notification.Link,
		),
	}

	if err := n.mailer.Send(sendCtx, msg); err != nil {
		n.logger.Error("status notification send failed",
			slog.String("order_id", notification.OrderID),
			slog.String("recipient", notification.Recipient),
			slog.String("error", err.Error()),
		)
		n.recordDeadLetter(notification)
	}
}

func (n *Notifier) recordDeadLetter(notification model.Notification) {
	n.deadMu.Lock()
	defer n.deadMu.Unlock()
	if len(n.dead) >= maxDeadLetters {
		n.dead = n.dead[1:]
	}
	n.dead = append(n.dead, notification)
}
