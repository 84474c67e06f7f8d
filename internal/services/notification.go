package service

import (
	"context"
	"time"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/errors"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	repository "github.com/anayakhandelwal/artisan-gallery-platform/internal/repositories"
	"github.com/anayakhandelwal/artisan-gallery-platform/pkg/sendgrid"
	"github.com/google/uuid"
)

type NotificationService interface {
	SendEmail(ctx context.Context, req *models.EmailNotificationRequest) (*models.Notification, error)
	ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, error)
}

type notificationService struct {
	repo         repository.NotificationRepository
	emailService sendgrid.EmailService
}

func NewNotificationService(repo repository.NotificationRepository, emailService sendgrid.EmailService) NotificationService {
	return &notificationService{repo: repo, emailService: emailService}
}

// SendEmail records the notification, attempts delivery, then updates the
// stored status to reflect the outcome.
func (n *notificationService) SendEmail(ctx context.Context, req *models.EmailNotificationRequest) (*models.Notification, error) {

	notification := &models.Notification{
		ID:        uuid.New(),
		Type:      models.NotificationTypeEmail,
		Recipient: req.Recipient,
		Subject:   req.Subject,
		Content:   req.Content,
		Status:    models.StatusPending,
	}

	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.DatabaseError("Failed to create notification record").WithError(err)
	}

	if err := n.emailService.Send(ctx, req); err != nil {
		notification.Status = models.StatusFailed
		notification.Error = err.Error()

		_ = n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusFailed, notification.Error, nil)

		return nil, errors.ThirdPartyError("Failed to send email").WithError(err)
	}

	sentAt := time.Now()
	notification.Status = models.StatusSent
	notification.SentAt = &sentAt

	if err := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusSent, "", &sentAt); err != nil {
		return nil, errors.DatabaseError("Email sent but failed to update notification status").WithError(err)
	}

	return notification, nil
}

// ListNotifications implements NotificationService.
func (n *notificationService) ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 10 {
		size = 10
	}

	notifications, _, err := n.repo.ListNotifications(ctx, page, size)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list notifications").WithError(err)
	}

	return notifications, nil
}
