package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/openshelf/circulation/internal/errs"
	"github.com/openshelf/circulation/internal/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCheckout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.seedMember(t, model.RoleAdmin)
	member := e.seedMember(t, model.RoleMember)
	book := e.seedBook(t, model.BookAvailable)

	_, err := e.svc.Checkout(ctx, actorFor(member), checkoutInput(book, member))
	require.True(t, errors.Is(err, errs.ErrForbidden))

	transactionID, err := e.svc.Checkout(ctx, actorFor(admin), checkoutInput(book, member))
	require.NoError(t, err)
	require.Equal(t, "TID-0001", transactionID)

	got, err := e.repo.GetBook(ctx, book.DocID)
	require.NoError(t, err)
	require.Equal(t, model.BookCheckedOut, got.Status)
	require.Equal(t, 1, got.TimesCheckedOut)

	borrower, err := e.repo.GetMember(ctx, member.DocID)
	require.NoError(t, err)
	require.Equal(t, 1, borrower.BooksCheckedOut)

	txns, err := e.svc.ListTransactions(ctx, actorFor(admin))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	txn := txns[0]
	require.Equal(t, book.DisplayID, txn.BookID)
	require.Equal(t, member.DisplayID, txn.BorrowerID)
	require.True(t, txn.IsCheckedOut)

	settings, err := e.repo.GetSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, txn.CheckoutDate.AddDate(0, 0, settings.CheckoutDurationDays), txn.DueDate)
}

func TestCheckout_NotAvailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.seedMember(t, model.RoleAdmin)
	member := e.seedMember(t, model.RoleMember)
	book := e.seedBook(t, model.BookOnHold)

	_, err := e.svc.Checkout(ctx, actorFor(admin), checkoutInput(book, member))
	require.True(t, errors.Is(err, errs.ErrNotAvailable))
}

func TestCheckout_LimitReached(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.seedMember(t, model.RoleAdmin)
	member := e.seedMember(t, model.RoleMember)
	first := e.seedBook(t, model.BookAvailable)
	second := e.seedBook(t, model.BookAvailable)

	_, err := e.svc.Checkout(ctx, actorFor(admin), checkoutInput(first, member))
	require.NoError(t, err)

	_, err = e.svc.Checkout(ctx, actorFor(admin), checkoutInput(second, member))
	require.True(t, errors.Is(err, errs.ErrLimitReached))
}

func TestCheckinRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.seedMember(t, model.RoleAdmin)
	member := e.seedMember(t, model.RoleMember)
	book := e.seedBook(t, model.BookAvailable)

	_, err := e.svc.Checkout(ctx, actorFor(admin), checkoutInput(book, member))
	require.NoError(t, err)

	txns, err := e.svc.ListTransactions(ctx, actorFor(admin))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	txnDocID := txns[0].DocID

	e.clock.Advance(10*24*time.Hour + 3*time.Hour)

	err = e.svc.Checkin(ctx, actorFor(member), txnDocID, model.ConditionFair, "")
	require.True(t, errors.Is(err, errs.ErrForbidden))

	require.NoError(t, e.svc.Checkin(ctx, actorFor(admin), txnDocID, model.ConditionFair, "worn spine"))

	txn, err := e.repo.GetTransaction(ctx, txnDocID)
	require.NoError(t, err)
	require.False(t, txn.IsCheckedOut)
	require.NotNil(t, txn.CheckinDate)
	require.Equal(t, 10, *txn.DurationDays)
	require.Equal(t, model.ConditionFair, *txn.ConditionAtCheckin)
	require.Equal(t, "worn spine", txn.Notes)

	got, err := e.repo.GetBook(ctx, book.DocID)
	require.NoError(t, err)
	require.Equal(t, model.BookAvailable, got.Status)
	require.Equal(t, model.ConditionFair, got.Condition)

	borrower, err := e.repo.GetMember(ctx, member.DocID)
	require.NoError(t, err)
	require.Zero(t, borrower.BooksCheckedOut)

	// A closed transaction cannot close again.
	err = e.svc.Checkin(ctx, actorFor(admin), txnDocID, model.ConditionFair, "")
	require.True(t, errors.Is(err, errs.ErrInvalidState))

	// The freed slot lets the member borrow again.
	next := e.seedBook(t, model.BookAvailable)
	_, err = e.svc.Checkout(ctx, actorFor(admin), checkoutInput(next, member))
	require.NoError(t, err)
}

func TestTransactionIDsMonotonic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.seedMember(t, model.RoleAdmin)

	for i := 1; i <= 3; i++ {
		member := e.seedMember(t, model.RoleMember)
		book := e.seedBook(t, model.BookAvailable)
		transactionID, err := e.svc.Checkout(ctx, actorFor(admin), checkoutInput(book, member))
		require.NoError(t, err)
		require.Equal(t, model.FormatDisplayID(model.TransactionIDPrefix, int64(i)), transactionID)
	}
}
