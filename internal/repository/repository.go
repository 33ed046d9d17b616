package repository

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/openshelf/circulation/internal/docstore"
	"github.com/openshelf/circulation/internal/errs"
	"github.com/openshelf/circulation/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Repository is the typed view over the document store. Every document is
// validated on the way in and on the way out, so the rest of the service
// never sees a malformed record.
type Repository interface {
	GetBook(ctx context.Context, docID string) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	InsertBook(ctx context.Context, book *model.Book) error
	UpdateBook(ctx context.Context, book model.Book) error
	DeleteBook(ctx context.Context, docID string) error

	GetMember(ctx context.Context, docID string) (model.Member, error)
	ListMembers(ctx context.Context) ([]model.Member, error)
	InsertMember(ctx context.Context, member *model.Member) error
	UpdateMember(ctx context.Context, member model.Member) error
	FindMemberByAuthUID(ctx context.Context, authUID string) (model.Member, error)
	FindMemberByEmail(ctx context.Context, email string) (model.Member, error)
	FindAdmins(ctx context.Context) ([]model.Member, error)

	GetHold(ctx context.Context, docID string) (model.Hold, error)
	InsertHold(ctx context.Context, hold *model.Hold) error
	UpdateHold(ctx context.Context, hold model.Hold) error
	FindActiveHoldsByHolder(ctx context.Context, holderDisplayID string) ([]model.Hold, error)
	FindActiveHoldsByBook(ctx context.Context, bookDocID string) ([]model.Hold, error)
	ListActiveHolds(ctx context.Context) ([]model.Hold, error)
	ListHolds(ctx context.Context) ([]model.Hold, error)

	GetRequest(ctx context.Context, docID string) (model.CheckoutRequest, error)
	InsertRequest(ctx context.Context, req *model.CheckoutRequest) error
	UpdateRequest(ctx context.Context, req model.CheckoutRequest) error
	FindOpenRequests(ctx context.Context, bookDocID, requesterDocID string) ([]model.CheckoutRequest, error)
	FindRequestsByRequester(ctx context.Context, requesterDocID string) ([]model.CheckoutRequest, error)
	ListRequests(ctx context.Context) ([]model.CheckoutRequest, error)

	GetTransaction(ctx context.Context, docID string) (model.Transaction, error)
	InsertTransaction(ctx context.Context, txn *model.Transaction) error
	UpdateTransaction(ctx context.Context, txn model.Transaction) error
	FindOpenTransactionsByBorrower(ctx context.Context, borrowerDocID string) ([]model.Transaction, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)

	InsertCalendarEvent(ctx context.Context, event *model.CalendarEvent) error
	DeleteCalendarEventsByRequest(ctx context.Context, requestDocID string) error

	InsertNotification(ctx context.Context, n *model.Notification) error
	GetNotification(ctx context.Context, docID string) (model.Notification, error)
	UpdateNotification(ctx context.Context, n model.Notification) error
	FindNotificationsByRecipient(ctx context.Context, recipientDocID string) ([]model.Notification, error)

	GetSettings(ctx context.Context) (model.Settings, error)
	UpdateSettings(ctx context.Context, s model.Settings) error
	EnsureSettings(ctx context.Context) error
	AllocateDisplayID(ctx context.Context, prefix, counter string) (string, error)
}

type repository struct {
	store docstore.Store
	valid *validator.Validate
	log   *zap.Logger
}

var _ Repository = (*repository)(nil)

func NewRepository(store docstore.Store, log *zap.Logger) (*repository, error) {
	return &repository{
		store: store,
		valid: validator.New(),
		log:   log.Named("repo"),
	}, nil
}

type document interface {
	SetMeta(docID string, version int64)
}

func (r *repository) decode(doc docstore.Doc, v document) error {
	if err := json.Unmarshal(doc.Data, v); err != nil {
		return errors.Wrap(err, "decode document")
	}
	v.SetMeta(doc.ID, doc.Version)
	if err := r.valid.Struct(v); err != nil {
		return errors.Wrapf(err, "invalid document %s", doc.ID)
	}
	return nil
}

func (r *repository) get(ctx context.Context, collection, docID string, v document) error {
	doc, err := r.store.Get(ctx, collection, docID)
	if err != nil {
		return err
	}
	return r.decode(doc, v)
}

func (r *repository) insert(ctx context.Context, collection string, v document) (string, int64, error) {
	if err := r.valid.Struct(v); err != nil {
		return "", 0, errors.Wrap(err, "invalid document")
	}
	id, err := r.store.Insert(ctx, collection, v)
	if err != nil {
		return "", 0, err
	}
	return id, 1, nil
}

func (r *repository) update(ctx context.Context, collection, docID string, version int64, v document) error {
	if err := r.valid.Struct(v); err != nil {
		return errors.Wrap(err, "invalid document")
	}
	return r.store.Update(ctx, collection, docID, v, version)
}

func (r *repository) GetSettings(ctx context.Context) (model.Settings, error) {
	var s model.Settings
	if err := r.get(ctx, docstore.Settings, docstore.SettingsDocID, &s); err != nil {
		return model.Settings{}, err
	}
	return s, nil
}

func (r *repository) UpdateSettings(ctx context.Context, s model.Settings) error {
	return r.update(ctx, docstore.Settings, docstore.SettingsDocID, s.Version, &s)
}

// EnsureSettings seeds the settings singleton on first start.
func (r *repository) EnsureSettings(ctx context.Context) error {
	if _, err := r.GetSettings(ctx); err == nil {
		return nil
	} else if !errors.Is(err, errs.ErrNotFound) {
		return err
	}
	def := model.DefaultSettings()
	if err := r.store.InsertWithID(ctx, docstore.Settings, docstore.SettingsDocID, &def); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return nil
		}
		return err
	}
	r.log.Info("settings seeded with defaults")
	return nil
}

func (r *repository) AllocateDisplayID(ctx context.Context, prefix, counter string) (string, error) {
	n, err := r.store.AllocateNext(ctx, counter)
	if err != nil {
		return "", err
	}
	return model.FormatDisplayID(prefix, n), nil
}
