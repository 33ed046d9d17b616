package service

import (
	"context"

	"github.com/openshelf/circulation/internal/errs"
	"github.com/openshelf/circulation/internal/model"
	"go.uber.org/zap"
)

type MemberInput struct {
	LastName       string
	FirstName      string
	Phone          string
	Email          string
	Role           model.Role
	TotalDonations int
	IsActive       bool
	Notes          string
}

// CreateMember registers a member and assigns their display id. Auth binding
// happens later, the first time the member signs in with a matching email.
func (s *Service) CreateMember(ctx context.Context, actor model.Actor, in MemberInput) (model.Member, error) {
	if !actor.IsAdmin() {
		return model.Member{}, errs.ErrForbidden
	}

	displayID, err := s.repo.AllocateDisplayID(ctx, model.MemberIDPrefix, "nextMemberId")
	if err != nil {
		return model.Member{}, err
	}

	role := in.Role
	if role == "" {
		role = model.RoleMember
	}
	now := s.now()
	member := model.Member{
		DisplayID:      displayID,
		LastName:       in.LastName,
		FirstName:      in.FirstName,
		Phone:          in.Phone,
		Email:          in.Email,
		Role:           role,
		TotalDonations: in.TotalDonations,
		IsActive:       in.IsActive,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.InsertMember(ctx, &member); err != nil {
		return model.Member{}, err
	}
	return member, nil
}

// UpdateMember applies profile edits. The checkout count is owned by the
// transaction flow and never set from here.
func (s *Service) UpdateMember(ctx context.Context, actor model.Actor, docID string, in MemberInput) (model.Member, error) {
	if !actor.IsAdmin() {
		return model.Member{}, errs.ErrForbidden
	}
	member, err := s.repo.GetMember(ctx, docID)
	if err != nil {
		return model.Member{}, err
	}

	member.LastName = in.LastName
	member.FirstName = in.FirstName
	member.Phone = in.Phone
	member.Email = in.Email
	if in.Role != "" {
		member.Role = in.Role
	}
	member.TotalDonations = in.TotalDonations
	member.IsActive = in.IsActive
	member.Notes = in.Notes
	member.UpdatedAt = s.now()

	if err := s.repo.UpdateMember(ctx, member); err != nil {
		return model.Member{}, err
	}
	return member, nil
}

func (s *Service) GetMember(ctx context.Context, actor model.Actor, docID string) (model.Member, error) {
	if !actor.IsAdmin() && actor.DocID != docID {
		return model.Member{}, errs.ErrForbidden
	}
	return s.repo.GetMember(ctx, docID)
}

func (s *Service) ListMembers(ctx context.Context, actor model.Actor) ([]model.Member, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	return s.repo.ListMembers(ctx)
}

// ResolveIdentity maps an authenticated principal to a member record. The
// record is looked up by auth uid; a first sign-in falls back to the email
// and binds the uid to the record for the next time.
func (s *Service) ResolveIdentity(ctx context.Context, authUID, email string) (model.Actor, error) {
	member, err := s.repo.FindMemberByAuthUID(ctx, authUID)
	if isNotFound(err) && email != "" {
		member, err = s.repo.FindMemberByEmail(ctx, email)
		if err == nil && member.AuthUID == nil {
			uid := authUID
			member.AuthUID = &uid
			member.UpdatedAt = s.now()
			if uerr := s.repo.UpdateMember(ctx, member); uerr != nil {
				// A concurrent first sign-in may have bound it already.
				if !isConflict(uerr) {
					return model.Actor{}, uerr
				}
				member, err = s.repo.FindMemberByAuthUID(ctx, authUID)
			} else {
				s.log.Info("bound auth identity",
					zap.String("member", member.DisplayID), zap.String("authUid", authUID))
			}
		}
	}
	if err != nil {
		return model.Actor{}, err
	}
	return model.Actor{
		DocID:     member.DocID,
		DisplayID: member.DisplayID,
		Name:      member.FullName(),
		Role:      member.Role,
	}, nil
}
