package repository

import (
	"context"

	"github.com/openshelf/circulation/internal/docstore"
	"github.com/openshelf/circulation/internal/model"
)

func (r *repository) GetHold(ctx context.Context, docID string) (model.Hold, error) {
	var h model.Hold
	if err := r.get(ctx, docstore.Holds, docID, &h); err != nil {
		return model.Hold{}, err
	}
	return h, nil
}

func (r *repository) InsertHold(ctx context.Context, hold *model.Hold) error {
	id, version, err := r.insert(ctx, docstore.Holds, hold)
	if err != nil {
		return err
	}
	hold.SetMeta(id, version)
	return nil
}

func (r *repository) UpdateHold(ctx context.Context, hold model.Hold) error {
	return r.update(ctx, docstore.Holds, hold.DocID, hold.Version, &hold)
}

func (r *repository) findHolds(ctx context.Context, preds ...docstore.Predicate) ([]model.Hold, error) {
	docs, err := r.store.Find(ctx, docstore.Holds, preds...)
	if err != nil {
		return nil, err
	}
	holds := make([]model.Hold, 0, len(docs))
	for _, doc := range docs {
		var h model.Hold
		if err := r.decode(doc, &h); err != nil {
			return nil, err
		}
		holds = append(holds, h)
	}
	return holds, nil
}

func (r *repository) FindActiveHoldsByHolder(ctx context.Context, holderDisplayID string) ([]model.Hold, error) {
	return r.findHolds(ctx,
		docstore.Eq("holderId", holderDisplayID),
		docstore.Eq("status", string(model.HoldActive)),
	)
}

func (r *repository) FindActiveHoldsByBook(ctx context.Context, bookDocID string) ([]model.Hold, error) {
	return r.findHolds(ctx,
		docstore.Eq("bookDocId", bookDocID),
		docstore.Eq("status", string(model.HoldActive)),
	)
}

func (r *repository) ListActiveHolds(ctx context.Context) ([]model.Hold, error) {
	return r.findHolds(ctx, docstore.Eq("status", string(model.HoldActive)))
}

func (r *repository) ListHolds(ctx context.Context) ([]model.Hold, error) {
	return r.findHolds(ctx)
}
