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

func TestCreateMember(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.seedMember(t, model.RoleAdmin)
	member := e.seedMember(t, model.RoleMember)

	in := service.MemberInput{
		LastName:  "Okafor",
		FirstName: "Chidi",
		Email:     "chidi@example.org",
		IsActive:  true,
	}
	_, err := e.svc.CreateMember(ctx, actorFor(member), in)
	require.True(t, errors.Is(err, errs.ErrForbidden))

	created, err := e.svc.CreateMember(ctx, actorFor(admin), in)
	require.NoError(t, err)
	// Seeding took MID-0001 and MID-0002.
	require.Equal(t, "MID-0003", created.DisplayID)
	require.Equal(t, model.RoleMember, created.Role)
	require.Nil(t, created.AuthUID)
}

func TestResolveIdentity_BindByEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	member := e.seedMember(t, model.RoleMember)

	// First sign-in: no uid bound yet, email matches.
	actor, err := e.svc.ResolveIdentity(ctx, "auth|abc123", member.Email)
	require.NoError(t, err)
	require.Equal(t, member.DocID, actor.DocID)
	require.Equal(t, model.RoleMember, actor.Role)

	bound, err := e.repo.GetMember(ctx, member.DocID)
	require.NoError(t, err)
	require.NotNil(t, bound.AuthUID)
	require.Equal(t, "auth|abc123", *bound.AuthUID)

	// Subsequent sign-ins resolve by uid even if the email changed.
	actor, err = e.svc.ResolveIdentity(ctx, "auth|abc123", "new@example.org")
	require.NoError(t, err)
	require.Equal(t, member.DocID, actor.DocID)
}

func TestResolveIdentity_Unknown(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	e.seedMember(t, model.RoleMember)

	_, err := e.svc.ResolveIdentity(ctx, "auth|nobody", "nobody@example.org")
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestResolveIdentity_RoleFromRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.seedMember(t, model.RoleAdmin)

	actor, err := e.svc.ResolveIdentity(ctx, "auth|admin1", admin.Email)
	require.NoError(t, err)
	require.True(t, actor.IsAdmin())
}

func TestUpdateMember(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.seedMember(t, model.RoleAdmin)
	member := e.seedMember(t, model.RoleMember)

	updated, err := e.svc.UpdateMember(ctx, actorFor(admin), member.DocID, service.MemberInput{
		LastName:  member.LastName,
		FirstName: member.FirstName,
		Email:     member.Email,
		Role:      model.RoleAdmin,
		IsActive:  false,
		Notes:     "moved away",
	})
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, updated.Role)
	require.False(t, updated.IsActive)
	require.Equal(t, member.DisplayID, updated.DisplayID)
}
