package service_test

import (
	"context"
	"testing"

	"github.com/openshelf/circulation/internal/errs"
	"github.com/openshelf/circulation/internal/model"
	"github.com/openshelf/circulation/internal/service"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCreateBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.seedMember(t, model.RoleAdmin)
	member := e.seedMember(t, model.RoleMember)

	in := service.BookInput{
		Title:      "Parable of the Sower",
		AuthorLast: "Butler",
		Condition:  model.ConditionVeryGood,
	}
	_, err := e.svc.CreateBook(ctx, actorFor(member), in)
	require.True(t, errors.Is(err, errs.ErrForbidden))

	book, err := e.svc.CreateBook(ctx, actorFor(admin), in)
	require.NoError(t, err)
	require.Equal(t, "BID-0001", book.DisplayID)
	require.Equal(t, model.BookAvailable, book.Status)
	require.Zero(t, book.TimesCheckedOut)

	second, err := e.svc.CreateBook(ctx, actorFor(admin), in)
	require.NoError(t, err)
	require.Equal(t, "BID-0002", second.DisplayID)
}

func TestUpdateBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.seedMember(t, model.RoleAdmin)
	book := e.seedBook(t, model.BookAvailable)

	updated, err := e.svc.UpdateBook(ctx, actorFor(admin), book.DocID, service.BookInput{
		Title:      book.Title,
		AuthorLast: book.AuthorLast,
		Condition:  model.ConditionPoor,
		Status:     model.BookRetired,
		Notes:      "water damage",
	})
	require.NoError(t, err)
	require.Equal(t, model.BookRetired, updated.Status)
	require.Equal(t, model.ConditionPoor, updated.Condition)
	require.Equal(t, book.DisplayID, updated.DisplayID)
}

func TestDeleteBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.seedMember(t, model.RoleAdmin)
	book := e.seedBook(t, model.BookAvailable)

	require.NoError(t, e.svc.DeleteBook(ctx, actorFor(admin), book.DocID))
	_, err := e.svc.GetBook(ctx, book.DocID)
	require.True(t, errors.Is(err, errs.ErrNotFound))

	err = e.svc.DeleteBook(ctx, actorFor(admin), book.DocID)
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestUpdateSettings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.seedMember(t, model.RoleAdmin)
	member := e.seedMember(t, model.RoleMember)

	_, err := e.svc.GetSettings(ctx, actorFor(member))
	require.True(t, errors.Is(err, errs.ErrForbidden))

	updated, err := e.svc.UpdateSettings(ctx, actorFor(admin), service.SettingsInput{
		CheckoutDurationDays: 14,
		MaxBooksPerMember:    2,
		CreditCostCheckout:   1,
		CreditRewardDonation: 1,
	})
	require.NoError(t, err)
	require.Equal(t, 14, updated.CheckoutDurationDays)

	// Counters survive a settings write.
	book := e.seedBook(t, model.BookAvailable)
	_, err = e.svc.Checkout(ctx, actorFor(admin), checkoutInput(book, member))
	require.NoError(t, err)

	settings, err := e.svc.GetSettings(ctx, actorFor(admin))
	require.NoError(t, err)
	require.EqualValues(t, 2, settings.NextTransactionID)

	// The new duration drives new due dates.
	txns, err := e.svc.ListTransactions(ctx, actorFor(admin))
	require.NoError(t, err)
	require.Equal(t, txns[0].CheckoutDate.AddDate(0, 0, 14), txns[0].DueDate)
}
