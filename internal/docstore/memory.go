package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/openshelf/circulation/internal/errs"
)

// Memory is an in-process Store with the same CAS semantics as the postgres
// implementation. It backs tests and local development.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]*memDoc
	seq         int64
}

type memDoc struct {
	version int64
	data    json.RawMessage
	seq     int64
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{collections: make(map[string]map[string]*memDoc)}
}

func (s *Memory) Get(_ context.Context, collection, id string) (Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return Doc{}, errs.ErrNotFound
	}
	return Doc{ID: id, Version: doc.version, Data: append(json.RawMessage(nil), doc.data...)}, nil
}

func (s *Memory) Find(_ context.Context, collection string, preds ...Predicate) ([]Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type match struct {
		doc Doc
		seq int64
	}
	var matches []match
	for id, doc := range s.collections[collection] {
		var body map[string]any
		if err := json.Unmarshal(doc.data, &body); err != nil {
			return nil, err
		}
		if !matchesAll(body, preds) {
			continue
		}
		matches = append(matches, match{
			doc: Doc{ID: id, Version: doc.version, Data: append(json.RawMessage(nil), doc.data...)},
			seq: doc.seq,
		})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].seq < matches[j].seq })

	docs := make([]Doc, 0, len(matches))
	for _, m := range matches {
		docs = append(docs, m.doc)
	}
	return docs, nil
}

func matchesAll(body map[string]any, preds []Predicate) bool {
	for _, p := range preds {
		v, ok := body[p.Field]
		if !ok || v == nil {
			return false
		}
		str, ok := v.(string)
		if !ok {
			str = fmt.Sprint(v)
		}
		var hit bool
		for _, want := range p.Values {
			if str == want {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

func (s *Memory) Insert(_ context.Context, collection string, data any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.put(collection, id, raw)
	return id, nil
}

func (s *Memory) InsertWithID(_ context.Context, collection, id string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.collections[collection][id]; exists {
		return errs.ErrConflict
	}
	s.put(collection, id, raw)
	return nil
}

func (s *Memory) put(collection, id string, raw json.RawMessage) {
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]*memDoc)
	}
	s.seq++
	s.collections[collection][id] = &memDoc{version: 1, data: raw, seq: s.seq}
}

func (s *Memory) Update(_ context.Context, collection, id string, data any, expectedVersion int64) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return errs.ErrNotFound
	}
	if doc.version != expectedVersion {
		return errs.ErrConflict
	}
	doc.version++
	doc.data = raw
	return nil
}

func (s *Memory) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

func (s *Memory) AllocateNext(_ context.Context, counter string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[Settings][SettingsDocID]
	if !ok {
		return 0, errs.ErrNotFound
	}
	var body map[string]any
	if err := json.Unmarshal(doc.data, &body); err != nil {
		return 0, err
	}
	next := int64(1)
	if v, ok := body[counter].(float64); ok {
		next = int64(v)
	}
	body[counter] = next + 1

	raw, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	doc.data = raw
	doc.version++
	return next, nil
}
