package notifications

import (
	"context"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Worker drains the confirmation queue and sends one email per message. SMTP
// sends are paced by a rate limiter so a burst of bookings cannot trip the
// mail relay's throttling.
type Worker struct {
	Channel   *amqp091.Channel
	QueueName string
	Mailer    contracts.MailerService
	Limiter   *rate.Limiter
	Log       *zap.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewWorker(
	conn *amqp091.Connection,
	queueName string,
	emailsPerSecond int,
	mailer contracts.MailerService,
	logger *zap.Logger,
) (*Worker, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &Worker{
		Channel:   channel,
		QueueName: queueName,
		Mailer:    mailer,
		Limiter:   rate.NewLimiter(rate.Limit(emailsPerSecond), 1),
		Log:       logger,
		done:      make(chan struct{}),
	}, nil
}

// Start begins consuming in a background goroutine. Messages are acked only
// after the email is sent; failed sends are nacked back onto the queue for
// redelivery.
func (w *Worker) Start(ctx context.Context) error {
	deliveries, err := w.Channel.Consume(w.QueueName, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	ctx, w.cancel = context.WithCancel(ctx)

	go func() {
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handle(ctx, delivery)
			}
		}
	}()

	w.Log.Info("notification worker started",
		zap.String(constvars.LoggingQueueKey, w.QueueName),
	)
	return nil
}

// Stop cancels the consume loop and waits for the in-flight message to finish.
func (w *Worker) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

func (w *Worker) handle(ctx context.Context, delivery amqp091.Delivery) {
	var notification requests.BookingNotification
	if err := json.Unmarshal(delivery.Body, &notification); err != nil {
		// Malformed payloads would fail forever; drop them.
		w.Log.Error("notification worker dropped malformed message",
			zap.String(constvars.LoggingQueueKey, w.QueueName),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	if err := w.Limiter.Wait(ctx); err != nil {
		delivery.Nack(false, true)
		return
	}

	subject := fmt.Sprintf(constvars.EmailBookingConfirmedSubjectFormat, notification.Treatment)
	body := fmt.Sprintf(constvars.EmailBookingConfirmedBodyFormat,
		notification.Treatment,
		notification.AppointmentDate,
		notification.Slot,
	)

	if err := w.Mailer.SendHTMLEmail(notification.Email, subject, body); err != nil {
		w.Log.Error("notification worker failed to send confirmation",
			zap.String(constvars.LoggingUserEmailKey, notification.Email),
			zap.Error(err),
		)
		delivery.Nack(false, true)
		return
	}

	w.Log.Info("notification worker sent confirmation",
		zap.String(constvars.LoggingUserEmailKey, notification.Email),
		zap.String(constvars.LoggingTreatmentKey, notification.Treatment),
	)
	delivery.Ack(false)
}
