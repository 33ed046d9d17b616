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

func TestMarkNotificationRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.seedMember(t, model.RoleAdmin)
	member := e.seedMember(t, model.RoleMember)
	other := e.seedMember(t, model.RoleMember)
	book := e.seedBook(t, model.BookAvailable)

	reqID, err := e.svc.RequestCheckout(ctx, actorFor(member), book.DocID)
	require.NoError(t, err)
	require.NoError(t, e.svc.ApproveRequest(ctx, actorFor(admin), reqID, windows(3), ""))

	list, err := e.svc.ListNotifications(ctx, actorFor(member))
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.False(t, list[0].Read)

	// Not the recipient.
	err = e.svc.MarkNotificationRead(ctx, actorFor(other), list[0].DocID)
	require.True(t, errors.Is(err, errs.ErrForbidden))

	require.NoError(t, e.svc.MarkNotificationRead(ctx, actorFor(member), list[0].DocID))
	// Marking twice is fine.
	require.NoError(t, e.svc.MarkNotificationRead(ctx, actorFor(member), list[0].DocID))

	list, err = e.svc.ListNotifications(ctx, actorFor(member))
	require.NoError(t, err)
	require.True(t, list[0].Read)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.seedMember(t, model.RoleAdmin)
	member := e.seedMember(t, model.RoleMember)

	for i := 0; i < 3; i++ {
		book := e.seedBook(t, model.BookAvailable)
		reqID, err := e.svc.RequestCheckout(ctx, actorFor(member), book.DocID)
		require.NoError(t, err)
		require.NoError(t, e.svc.ApproveRequest(ctx, actorFor(admin), reqID, windows(3), ""))
		require.NoError(t, e.svc.CancelRequest(ctx, actorFor(member), reqID))
	}

	require.NoError(t, e.svc.MarkAllNotificationsRead(ctx, actorFor(member)))

	list, err := e.svc.ListNotifications(ctx, actorFor(member))
	require.NoError(t, err)
	require.Len(t, list, 3)
	for _, n := range list {
		require.True(t, n.Read)
	}
}

func TestGetDashboard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.seedMember(t, model.RoleAdmin)
	member := e.seedMember(t, model.RoleMember)

	held := e.seedBook(t, model.BookAvailable)
	_, err := e.svc.PlaceHold(ctx, actorFor(member), held.DocID)
	require.NoError(t, err)

	requested := e.seedBook(t, model.BookAvailable)
	reqID, err := e.svc.RequestCheckout(ctx, actorFor(member), requested.DocID)
	require.NoError(t, err)
	require.NoError(t, e.svc.ApproveRequest(ctx, actorFor(admin), reqID, windows(3), ""))

	dash, err := e.svc.GetDashboard(ctx, actorFor(member))
	require.NoError(t, err)
	require.Len(t, dash.Holds, 1)
	require.Len(t, dash.Requests, 1)
	require.Empty(t, dash.Loans)
	require.Equal(t, 1, dash.UnreadCount)

	// The lapsed hold drops off the dashboard.
	e.clock.Advance(model.HoldDuration + time.Minute)
	dash, err = e.svc.GetDashboard(ctx, actorFor(member))
	require.NoError(t, err)
	require.Empty(t, dash.Holds)
	require.Len(t, dash.Requests, 1)
}
