package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/openshelf/circulation/internal/errs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const documentsTableName = `documents`

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Postgres struct {
	db  *sqlx.DB
	log *zap.Logger
}

var _ Store = (*Postgres)(nil)

func NewPostgres(db *sqlx.DB, log *zap.Logger) *Postgres {
	return &Postgres{
		db:  db,
		log: log.Named("docstore"),
	}
}

func (s *Postgres) Get(ctx context.Context, collection, id string) (Doc, error) {
	query, args, err := qb.Select("id", "version", "data").
		From(documentsTableName).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return Doc{}, err
	}

	var doc Doc
	if err := s.db.QueryRowxContext(ctx, query, args...).Scan(&doc.ID, &doc.Version, &doc.Data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Doc{}, errs.ErrNotFound
		}
		return Doc{}, err
	}
	return doc, nil
}

func (s *Postgres) Find(ctx context.Context, collection string, preds ...Predicate) ([]Doc, error) {
	q := qb.Select("id", "version", "data").
		From(documentsTableName).
		Where(sq.Eq{"collection": collection}).
		OrderBy("created_at")

	for _, p := range preds {
		switch p.Op {
		case OpEq:
			q = q.Where(sq.Expr("data->>? = ?", p.Field, p.Values[0]))
		case OpIn:
			q = q.Where(sq.Expr("data->>? = any(?)", p.Field, p.Values))
		}
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	s.log.Debug("Find", zap.String("query", query), zap.Any("args", args))

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var docs []Doc
	for rows.Next() {
		var doc Doc
		if err := rows.Scan(&doc.ID, &doc.Version, &doc.Data); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *Postgres) Insert(ctx context.Context, collection string, data any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()

	query, args, err := qb.Insert(documentsTableName).
		Columns("collection", "id", "version", "data").
		Values(collection, id, 1, raw).
		ToSql()
	if err != nil {
		return "", err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.log.Error("Insert", zap.String("collection", collection), zap.Error(err))
		return "", err
	}
	return id, nil
}

// InsertWithID is used for fixed-id singleton documents such as settings.
func (s *Postgres) InsertWithID(ctx context.Context, collection, id string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	query, args, err := qb.Insert(documentsTableName).
		Columns("collection", "id", "version", "data").
		Values(collection, id, 1, raw).
		ToSql()
	if err != nil {
		return err
	}
	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return errs.ErrConflict
		}
		return err
	}
	return nil
}

func (s *Postgres) Update(ctx context.Context, collection, id string, data any, expectedVersion int64) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	query, args, err := qb.Update(documentsTableName).
		Set("data", raw).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"collection": collection, "id": id, "version": expectedVersion}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either the document is gone or someone got there first.
		if _, err := s.Get(ctx, collection, id); err != nil {
			return err
		}
		return errs.ErrConflict
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, collection, id string) error {
	query, args, err := qb.Delete(documentsTableName).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *Postgres) AllocateNext(ctx context.Context, counter string) (int64, error) {
	q := fmt.Sprintf(`update %s
	set data = jsonb_set(data, array[$1], to_jsonb(coalesce((data->>$1)::bigint, 1) + 1)),
	    version = version + 1,
	    updated_at = now()
	where collection = $2 and id = $3
	returning (data->>$1)::bigint - 1`, documentsTableName)

	var next int64
	err := s.db.QueryRowxContext(ctx, q, counter, Settings, SettingsDocID).Scan(&next)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.ErrNotFound
		}
		return 0, err
	}
	return next, nil
}
