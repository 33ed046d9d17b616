package handler

import (
	"context"

	"github.com/openshelf/circulation/internal/model"
	"github.com/openshelf/circulation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ CirculationService = (*service.Service)(nil)

// CirculationService is everything the HTTP layer needs from the core.
type CirculationService interface {
	ResolveIdentity(ctx context.Context, authUID, email string) (model.Actor, error)

	PlaceHold(ctx context.Context, actor model.Actor, bookDocID string) (string, error)
	CancelHold(ctx context.Context, actor model.Actor, holdDocID string) error
	FulfillHold(ctx context.Context, actor model.Actor, holdDocID string) (model.Hold, error)
	ListHolds(ctx context.Context, actor model.Actor) ([]model.Hold, error)

	RequestCheckout(ctx context.Context, actor model.Actor, bookDocID string) (string, error)
	ApproveRequest(ctx context.Context, actor model.Actor, requestDocID string, windows []model.PickupWindow, notes string) error
	SelectWindow(ctx context.Context, actor model.Actor, requestDocID string, index int) error
	CompleteRequest(ctx context.Context, actor model.Actor, requestDocID string) (string, error)
	CancelRequest(ctx context.Context, actor model.Actor, requestDocID string) error
	ListRequests(ctx context.Context, actor model.Actor) ([]model.CheckoutRequest, error)

	Checkout(ctx context.Context, actor model.Actor, in service.CheckoutInput) (string, error)
	Checkin(ctx context.Context, actor model.Actor, transactionDocID string, conditionAtCheckin model.Condition, notes string) error
	ListTransactions(ctx context.Context, actor model.Actor) ([]model.Transaction, error)

	CreateBook(ctx context.Context, actor model.Actor, in service.BookInput) (model.Book, error)
	UpdateBook(ctx context.Context, actor model.Actor, docID string, in service.BookInput) (model.Book, error)
	DeleteBook(ctx context.Context, actor model.Actor, docID string) error
	GetBook(ctx context.Context, docID string) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)

	CreateMember(ctx context.Context, actor model.Actor, in service.MemberInput) (model.Member, error)
	UpdateMember(ctx context.Context, actor model.Actor, docID string, in service.MemberInput) (model.Member, error)
	GetMember(ctx context.Context, actor model.Actor, docID string) (model.Member, error)
	ListMembers(ctx context.Context, actor model.Actor) ([]model.Member, error)

	GetSettings(ctx context.Context, actor model.Actor) (model.Settings, error)
	UpdateSettings(ctx context.Context, actor model.Actor, in service.SettingsInput) (model.Settings, error)

	ListNotifications(ctx context.Context, actor model.Actor) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, actor model.Actor, docID string) error
	MarkAllNotificationsRead(ctx context.Context, actor model.Actor) error
	GetDashboard(ctx context.Context, actor model.Actor) (service.Dashboard, error)
}
