package contracts

import (
	"context"
	"doctorsportal-service/internal/pkg/dto/requests"
)

// NotificationPublisher enqueues booking confirmations for asynchronous
// delivery. Best-effort: callers log publish failures and never surface them
// as booking failures.
type NotificationPublisher interface {
	PublishBookingConfirmation(ctx context.Context, notification *requests.BookingNotification) error
}

// MailerService sends the actual email; consumed by the notification worker,
// never by the request path.
type MailerService interface {
	SendHTMLEmail(to, subject, htmlBody string) error
}
