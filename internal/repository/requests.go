package repository

import (
	"context"

	"github.com/openshelf/circulation/internal/docstore"
	"github.com/openshelf/circulation/internal/model"
)

func (r *repository) GetRequest(ctx context.Context, docID string) (model.CheckoutRequest, error) {
	var req model.CheckoutRequest
	if err := r.get(ctx, docstore.CheckoutRequests, docID, &req); err != nil {
		return model.CheckoutRequest{}, err
	}
	return req, nil
}

func (r *repository) InsertRequest(ctx context.Context, req *model.CheckoutRequest) error {
	id, version, err := r.insert(ctx, docstore.CheckoutRequests, req)
	if err != nil {
		return err
	}
	req.SetMeta(id, version)
	return nil
}

func (r *repository) UpdateRequest(ctx context.Context, req model.CheckoutRequest) error {
	return r.update(ctx, docstore.CheckoutRequests, req.DocID, req.Version, &req)
}

func (r *repository) findRequests(ctx context.Context, preds ...docstore.Predicate) ([]model.CheckoutRequest, error) {
	docs, err := r.store.Find(ctx, docstore.CheckoutRequests, preds...)
	if err != nil {
		return nil, err
	}
	reqs := make([]model.CheckoutRequest, 0, len(docs))
	for _, doc := range docs {
		var req model.CheckoutRequest
		if err := r.decode(doc, &req); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// FindOpenRequests returns the requester's non-terminal requests on a book.
func (r *repository) FindOpenRequests(ctx context.Context, bookDocID, requesterDocID string) ([]model.CheckoutRequest, error) {
	return r.findRequests(ctx,
		docstore.Eq("bookDocId", bookDocID),
		docstore.Eq("requesterDocId", requesterDocID),
		docstore.In("status",
			string(model.RequestPending),
			string(model.RequestApproved),
			string(model.RequestScheduled),
		),
	)
}

func (r *repository) FindRequestsByRequester(ctx context.Context, requesterDocID string) ([]model.CheckoutRequest, error) {
	return r.findRequests(ctx, docstore.Eq("requesterDocId", requesterDocID))
}

func (r *repository) ListRequests(ctx context.Context) ([]model.CheckoutRequest, error) {
	return r.findRequests(ctx)
}
