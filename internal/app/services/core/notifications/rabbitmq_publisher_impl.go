package notifications

import (
	"context"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	Channel   *amqp091.Channel
	QueueName string
	Log       *zap.Logger
}

// NewRabbitMQPublisher opens a channel on the shared connection and declares
// the confirmation queue as durable, so published notifications survive a
// broker restart.
func NewRabbitMQPublisher(conn *amqp091.Connection, queueName string, logger *zap.Logger) (contracts.NotificationPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrQueuePublish(err)
	}

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, exceptions.ErrQueuePublish(err)
	}

	return &rabbitMQPublisher{
		Channel:   channel,
		QueueName: queueName,
		Log:       logger,
	}, nil
}

func (p *rabbitMQPublisher) PublishBookingConfirmation(ctx context.Context, notification *requests.BookingNotification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.Channel.PublishWithContext(ctx, "", p.QueueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	p.Log.Info("rabbitMQPublisher.PublishBookingConfirmation enqueued",
		zap.String(constvars.LoggingQueueKey, p.QueueName),
		zap.String(constvars.LoggingUserEmailKey, notification.Email),
	)
	return nil
}
