package notification

import (
	"context"
	"fmt"

	"yalasafari/models"
	"yalasafari/services/tasks"

	"github.com/hibiken/asynq"
)

// QueueNotifier implements Notifier by enqueuing email tasks on the
// Redis-backed mail queue. The HTTP request returns as soon as the task
// is enqueued; the mail worker delivers in the background.
type QueueNotifier struct {
	client *asynq.Client
}

// NewQueueNotifier wraps an asynq client in a Notifier.
func NewQueueNotifier(client *asynq.Client) *QueueNotifier {
	return &QueueNotifier{client: client}
}

func (q *QueueNotifier) enqueue(ctx context.Context, payload tasks.EmailPayload) error {
	task, err := tasks.NewEmailTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build email task: %w", err)
	}
	if _, err := q.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}
	return nil
}

func (q *QueueNotifier) SafariBookingReceived(ctx context.Context, b *models.SafariBooking) error {
	return q.enqueue(ctx, tasks.EmailPayload{Kind: tasks.KindSafariReceived, SafariBooking: b})
}

func (q *QueueNotifier) SafariBookingConfirmed(ctx context.Context, b *models.SafariBooking) error {
	return q.enqueue(ctx, tasks.EmailPayload{Kind: tasks.KindSafariConfirmed, SafariBooking: b})
}

func (q *QueueNotifier) SafariBookingRejected(ctx context.Context, b *models.SafariBooking, reason string) error {
	return q.enqueue(ctx, tasks.EmailPayload{Kind: tasks.KindSafariRejected, SafariBooking: b, Reason: reason})
}

func (q *QueueNotifier) RoomBookingReceived(ctx context.Context, b *models.RoomBooking, room *models.Room) error {
	return q.enqueue(ctx, tasks.EmailPayload{Kind: tasks.KindRoomReceived, RoomBooking: b, Room: room})
}

func (q *QueueNotifier) TaxiBookingReceived(ctx context.Context, b *models.TaxiBooking, taxi *models.Taxi) error {
	return q.enqueue(ctx, tasks.EmailPayload{Kind: tasks.KindTaxiReceived, TaxiBooking: b, Taxi: taxi})
}

func (q *QueueNotifier) ContactReceived(ctx context.Context, m *models.ContactMessage) error {
	return q.enqueue(ctx, tasks.EmailPayload{Kind: tasks.KindContactReceived, Contact: m})
}
