package repository

import (
	"context"

	"github.com/openshelf/circulation/internal/docstore"
	"github.com/openshelf/circulation/internal/model"
)

func (r *repository) GetBook(ctx context.Context, docID string) (model.Book, error) {
	var b model.Book
	if err := r.get(ctx, docstore.Books, docID, &b); err != nil {
		return model.Book{}, err
	}
	return b, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	docs, err := r.store.Find(ctx, docstore.Books)
	if err != nil {
		return nil, err
	}
	books := make([]model.Book, 0, len(docs))
	for _, doc := range docs {
		var b model.Book
		if err := r.decode(doc, &b); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, nil
}

func (r *repository) InsertBook(ctx context.Context, book *model.Book) error {
	id, version, err := r.insert(ctx, docstore.Books, book)
	if err != nil {
		return err
	}
	book.SetMeta(id, version)
	return nil
}

func (r *repository) UpdateBook(ctx context.Context, book model.Book) error {
	return r.update(ctx, docstore.Books, book.DocID, book.Version, &book)
}

func (r *repository) DeleteBook(ctx context.Context, docID string) error {
	return r.store.Delete(ctx, docstore.Books, docID)
}
