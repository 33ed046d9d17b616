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

func TestPlaceHold(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	member := e.seedMember(t, model.RoleMember)
	book := e.seedBook(t, model.BookAvailable)

	holdID, err := e.svc.PlaceHold(ctx, actorFor(member), book.DocID)
	require.NoError(t, err)

	hold, err := e.repo.GetHold(ctx, holdID)
	require.NoError(t, err)
	require.Equal(t, model.HoldActive, hold.Status)
	require.Equal(t, member.DisplayID, hold.HolderID)
	require.Equal(t, e.clock.Now().Add(model.HoldDuration), hold.ExpiresAt)

	got, err := e.repo.GetBook(ctx, book.DocID)
	require.NoError(t, err)
	require.Equal(t, model.BookOnHold, got.Status)
}

func TestPlaceHold_NotAvailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	member := e.seedMember(t, model.RoleMember)

	for _, status := range []model.BookStatus{
		model.BookCheckedOut, model.BookOnHold, model.BookPendingPickup, model.BookLost, model.BookRetired,
	} {
		book := e.seedBook(t, status)
		_, err := e.svc.PlaceHold(ctx, actorFor(member), book.DocID)
		require.True(t, errors.Is(err, errs.ErrNotAvailable), "status %s", status)
	}
}

func TestPlaceHold_OnePerMember(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	member := e.seedMember(t, model.RoleMember)
	first := e.seedBook(t, model.BookAvailable)
	second := e.seedBook(t, model.BookAvailable)

	_, err := e.svc.PlaceHold(ctx, actorFor(member), first.DocID)
	require.NoError(t, err)

	_, err = e.svc.PlaceHold(ctx, actorFor(member), second.DocID)
	require.True(t, errors.Is(err, errs.ErrAlreadyHeld))

	// Once the first hold lapses the member can hold again.
	e.clock.Advance(model.HoldDuration + time.Minute)
	_, err = e.svc.PlaceHold(ctx, actorFor(member), second.DocID)
	require.NoError(t, err)

	freed, err := e.repo.GetBook(ctx, first.DocID)
	require.NoError(t, err)
	require.Equal(t, model.BookAvailable, freed.Status)
}

func TestExpireHoldIfNeeded_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	member := e.seedMember(t, model.RoleMember)
	book := e.seedBook(t, model.BookAvailable)

	holdID, err := e.svc.PlaceHold(ctx, actorFor(member), book.DocID)
	require.NoError(t, err)

	hold, err := e.repo.GetHold(ctx, holdID)
	require.NoError(t, err)

	// Not yet due.
	expired, err := e.svc.ExpireHoldIfNeeded(ctx, &hold)
	require.NoError(t, err)
	require.False(t, expired)

	e.clock.Advance(model.HoldDuration)
	expired, err = e.svc.ExpireHoldIfNeeded(ctx, &hold)
	require.NoError(t, err)
	require.True(t, expired)
	require.Equal(t, model.HoldExpired, hold.Status)

	// Second pass is a no-op.
	expired, err = e.svc.ExpireHoldIfNeeded(ctx, &hold)
	require.NoError(t, err)
	require.False(t, expired)

	got, err := e.repo.GetBook(ctx, book.DocID)
	require.NoError(t, err)
	require.Equal(t, model.BookAvailable, got.Status)
}

func TestCancelHold_Ownership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	holder := e.seedMember(t, model.RoleMember)
	other := e.seedMember(t, model.RoleMember)
	admin := e.seedMember(t, model.RoleAdmin)
	book := e.seedBook(t, model.BookAvailable)

	holdID, err := e.svc.PlaceHold(ctx, actorFor(holder), book.DocID)
	require.NoError(t, err)

	err = e.svc.CancelHold(ctx, actorFor(other), holdID)
	require.True(t, errors.Is(err, errs.ErrForbidden))

	require.NoError(t, e.svc.CancelHold(ctx, actorFor(holder), holdID))

	hold, err := e.repo.GetHold(ctx, holdID)
	require.NoError(t, err)
	require.Equal(t, model.HoldCancelled, hold.Status)

	got, err := e.repo.GetBook(ctx, book.DocID)
	require.NoError(t, err)
	require.Equal(t, model.BookAvailable, got.Status)

	// Admin may cancel any hold.
	book2 := e.seedBook(t, model.BookAvailable)
	holdID2, err := e.svc.PlaceHold(ctx, actorFor(holder), book2.DocID)
	require.NoError(t, err)
	require.NoError(t, e.svc.CancelHold(ctx, actorFor(admin), holdID2))
}

func TestFulfillHold(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	holder := e.seedMember(t, model.RoleMember)
	admin := e.seedMember(t, model.RoleAdmin)
	book := e.seedBook(t, model.BookAvailable)

	holdID, err := e.svc.PlaceHold(ctx, actorFor(holder), book.DocID)
	require.NoError(t, err)

	_, err = e.svc.FulfillHold(ctx, actorFor(holder), holdID)
	require.True(t, errors.Is(err, errs.ErrForbidden))

	hold, err := e.svc.FulfillHold(ctx, actorFor(admin), holdID)
	require.NoError(t, err)
	require.Equal(t, model.HoldFulfilled, hold.Status)

	got, err := e.repo.GetBook(ctx, book.DocID)
	require.NoError(t, err)
	require.Equal(t, model.BookAvailable, got.Status)

	_, err = e.svc.FulfillHold(ctx, actorFor(admin), holdID)
	require.True(t, errors.Is(err, errs.ErrNotActive))
}

func TestFulfillHold_Expired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	holder := e.seedMember(t, model.RoleMember)
	admin := e.seedMember(t, model.RoleAdmin)
	book := e.seedBook(t, model.BookAvailable)

	holdID, err := e.svc.PlaceHold(ctx, actorFor(holder), book.DocID)
	require.NoError(t, err)

	e.clock.Advance(model.HoldDuration + time.Hour)
	_, err = e.svc.FulfillHold(ctx, actorFor(admin), holdID)
	require.True(t, errors.Is(err, errs.ErrExpired))

	hold, err := e.repo.GetHold(ctx, holdID)
	require.NoError(t, err)
	require.Equal(t, model.HoldExpired, hold.Status)
}

func TestSweepExpiredHolds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.seedMember(t, model.RoleAdmin)

	var holders []model.Member
	for i := 0; i < 3; i++ {
		holders = append(holders, e.seedMember(t, model.RoleMember))
	}
	for _, h := range holders {
		book := e.seedBook(t, model.BookAvailable)
		_, err := e.svc.PlaceHold(ctx, actorFor(h), book.DocID)
		require.NoError(t, err)
	}

	expired, err := e.svc.SweepExpiredHolds(ctx)
	require.NoError(t, err)
	require.Zero(t, expired)

	e.clock.Advance(model.HoldDuration + time.Minute)
	expired, err = e.svc.SweepExpiredHolds(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, expired)

	// Already swept.
	expired, err = e.svc.SweepExpiredHolds(ctx)
	require.NoError(t, err)
	require.Zero(t, expired)

	holds, err := e.svc.ListHolds(ctx, actorFor(admin))
	require.NoError(t, err)
	for _, h := range holds {
		require.Equal(t, model.HoldExpired, h.Status)
	}
}
