package repository

import (
	"context"

	"github.com/openshelf/circulation/internal/docstore"
	"github.com/openshelf/circulation/internal/errs"
	"github.com/openshelf/circulation/internal/model"
)

func (r *repository) GetMember(ctx context.Context, docID string) (model.Member, error) {
	var m model.Member
	if err := r.get(ctx, docstore.Members, docID, &m); err != nil {
		return model.Member{}, err
	}
	return m, nil
}

func (r *repository) InsertMember(ctx context.Context, member *model.Member) error {
	id, version, err := r.insert(ctx, docstore.Members, member)
	if err != nil {
		return err
	}
	member.SetMeta(id, version)
	return nil
}

func (r *repository) UpdateMember(ctx context.Context, member model.Member) error {
	return r.update(ctx, docstore.Members, member.DocID, member.Version, &member)
}

func (r *repository) findOneMember(ctx context.Context, preds ...docstore.Predicate) (model.Member, error) {
	docs, err := r.store.Find(ctx, docstore.Members, preds...)
	if err != nil {
		return model.Member{}, err
	}
	if len(docs) == 0 {
		return model.Member{}, errs.ErrNotFound
	}
	var m model.Member
	if err := r.decode(docs[0], &m); err != nil {
		return model.Member{}, err
	}
	return m, nil
}

func (r *repository) FindMemberByAuthUID(ctx context.Context, authUID string) (model.Member, error) {
	return r.findOneMember(ctx, docstore.Eq("authUid", authUID))
}

func (r *repository) FindMemberByEmail(ctx context.Context, email string) (model.Member, error) {
	return r.findOneMember(ctx, docstore.Eq("email", email))
}

func (r *repository) findMembers(ctx context.Context, preds ...docstore.Predicate) ([]model.Member, error) {
	docs, err := r.store.Find(ctx, docstore.Members, preds...)
	if err != nil {
		return nil, err
	}
	members := make([]model.Member, 0, len(docs))
	for _, doc := range docs {
		var m model.Member
		if err := r.decode(doc, &m); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

func (r *repository) FindAdmins(ctx context.Context) ([]model.Member, error) {
	return r.findMembers(ctx, docstore.Eq("role", string(model.RoleAdmin)))
}

func (r *repository) ListMembers(ctx context.Context) ([]model.Member, error) {
	return r.findMembers(ctx)
}
