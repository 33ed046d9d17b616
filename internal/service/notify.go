package service

import (
	"context"
	"time"

	"github.com/openshelf/circulation/internal/model"
	"github.com/openshelf/circulation/pkg/kafka"
	"go.uber.org/zap"
)

// NotificationEvent is the payload published to the notifications topic for
// each notification document written. Consumed by the email hook.
type NotificationEvent struct {
	NotificationID string                 `json:"notificationId"`
	RecipientID    string                 `json:"recipientId"`
	RecipientDocID string                 `json:"recipientDocId"`
	Type           model.NotificationType `json:"type"`
	Title          string                 `json:"title"`
	Message        string                 `json:"message"`
	LinkTo         *string                `json:"linkTo"`
	CreatedAt      time.Time              `json:"createdAt"`
}

// notify writes a notification document and publishes the matching event.
// Failures are logged and swallowed: a lost notification never rolls back the
// state change it accompanies.
func (s *Service) notify(ctx context.Context, recipient model.Member, typ model.NotificationType, title, message, linkTo string) {
	var link *string
	if linkTo != "" {
		link = &linkTo
	}
	n := model.Notification{
		RecipientID:    recipient.DisplayID,
		RecipientDocID: recipient.DocID,
		Type:           typ,
		Title:          title,
		Message:        message,
		LinkTo:         link,
		Read:           false,
		CreatedAt:      s.now(),
	}
	if err := s.repo.InsertNotification(ctx, &n); err != nil {
		s.log.Error("notify: insert", zap.String("recipient", recipient.DisplayID), zap.Error(err))
		return
	}
	if s.pub == nil {
		return
	}
	ev := NotificationEvent{
		NotificationID: n.DocID,
		RecipientID:    n.RecipientID,
		RecipientDocID: n.RecipientDocID,
		Type:           n.Type,
		Title:          n.Title,
		Message:        n.Message,
		LinkTo:         n.LinkTo,
		CreatedAt:      n.CreatedAt,
	}
	if err := s.pub.Publish(kafka.NotificationsTopic, ev); err != nil {
		s.log.Error("notify: publish", zap.String("notificationId", n.DocID), zap.Error(err))
	}
}

func (s *Service) notifyAdmins(ctx context.Context, typ model.NotificationType, title, message, linkTo string) {
	admins, err := s.repo.FindAdmins(ctx)
	if err != nil {
		s.log.Error("notifyAdmins: find admins", zap.Error(err))
		return
	}
	for _, admin := range admins {
		s.notify(ctx, admin, typ, title, message, linkTo)
	}
}

func (s *Service) notifyMemberByDocID(ctx context.Context, recipientDocID string, typ model.NotificationType, title, message, linkTo string) {
	member, err := s.repo.GetMember(ctx, recipientDocID)
	if err != nil {
		s.log.Error("notifyMember: get member", zap.String("docId", recipientDocID), zap.Error(err))
		return
	}
	s.notify(ctx, member, typ, title, message, linkTo)
}
