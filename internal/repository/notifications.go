package repository

import (
	"context"

	"github.com/openshelf/circulation/internal/docstore"
	"github.com/openshelf/circulation/internal/model"
)

func (r *repository) InsertCalendarEvent(ctx context.Context, event *model.CalendarEvent) error {
	id, version, err := r.insert(ctx, docstore.CalendarEvents, event)
	if err != nil {
		return err
	}
	event.SetMeta(id, version)
	return nil
}

func (r *repository) DeleteCalendarEventsByRequest(ctx context.Context, requestDocID string) error {
	docs, err := r.store.Find(ctx, docstore.CalendarEvents, docstore.Eq("checkoutRequestId", requestDocID))
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if err := r.store.Delete(ctx, docstore.CalendarEvents, doc.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) InsertNotification(ctx context.Context, n *model.Notification) error {
	id, version, err := r.insert(ctx, docstore.Notifications, n)
	if err != nil {
		return err
	}
	n.SetMeta(id, version)
	return nil
}

func (r *repository) GetNotification(ctx context.Context, docID string) (model.Notification, error) {
	var n model.Notification
	if err := r.get(ctx, docstore.Notifications, docID, &n); err != nil {
		return model.Notification{}, err
	}
	return n, nil
}

func (r *repository) UpdateNotification(ctx context.Context, n model.Notification) error {
	return r.update(ctx, docstore.Notifications, n.DocID, n.Version, &n)
}

func (r *repository) FindNotificationsByRecipient(ctx context.Context, recipientDocID string) ([]model.Notification, error) {
	docs, err := r.store.Find(ctx, docstore.Notifications, docstore.Eq("recipientDocId", recipientDocID))
	if err != nil {
		return nil, err
	}
	ns := make([]model.Notification, 0, len(docs))
	for _, doc := range docs {
		var n model.Notification
		if err := r.decode(doc, &n); err != nil {
			return nil, err
		}
		ns = append(ns, n)
	}
	return ns, nil
}
