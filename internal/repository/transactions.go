package repository

import (
	"context"
	"strconv"

	"github.com/openshelf/circulation/internal/docstore"
	"github.com/openshelf/circulation/internal/model"
)

func (r *repository) GetTransaction(ctx context.Context, docID string) (model.Transaction, error) {
	var txn model.Transaction
	if err := r.get(ctx, docstore.Transactions, docID, &txn); err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}

func (r *repository) InsertTransaction(ctx context.Context, txn *model.Transaction) error {
	id, version, err := r.insert(ctx, docstore.Transactions, txn)
	if err != nil {
		return err
	}
	txn.SetMeta(id, version)
	return nil
}

func (r *repository) UpdateTransaction(ctx context.Context, txn model.Transaction) error {
	return r.update(ctx, docstore.Transactions, txn.DocID, txn.Version, &txn)
}

func (r *repository) findTransactions(ctx context.Context, preds ...docstore.Predicate) ([]model.Transaction, error) {
	docs, err := r.store.Find(ctx, docstore.Transactions, preds...)
	if err != nil {
		return nil, err
	}
	txns := make([]model.Transaction, 0, len(docs))
	for _, doc := range docs {
		var txn model.Transaction
		if err := r.decode(doc, &txn); err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func (r *repository) FindOpenTransactionsByBorrower(ctx context.Context, borrowerDocID string) ([]model.Transaction, error) {
	return r.findTransactions(ctx,
		docstore.Eq("borrowerDocId", borrowerDocID),
		docstore.Eq("isCheckedOut", strconv.FormatBool(true)),
	)
}

func (r *repository) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	return r.findTransactions(ctx)
}
