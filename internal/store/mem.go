package store

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Mem is an in-memory document store with the same contract as Store.
// It mints uuid string identifiers on insert and keeps documents in
// insertion order. Safe for concurrent use.
type Mem struct {
	mu          sync.RWMutex
	collections map[string][]memDoc
}

type memDoc struct {
	id  string
	raw bson.Raw
}

// NewMem creates an empty in-memory document store.
func NewMem() *Mem {
	return &Mem{collections: make(map[string][]memDoc)}
}

func (m *Mem) Configured() bool { return true }

func (m *Mem) Name() string { return "in-memory" }

func (m *Mem) Ping(ctx context.Context) error { return nil }

func (m *Mem) Collections(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Mem) Insert(ctx context.Context, collection string, doc any) (string, error) {
	fields, err := toFields(doc)
	if err != nil {
		return "", &WriteError{Collection: collection, Err: err}
	}

	id := uuid.NewString()
	fields["_id"] = id

	raw, err := bson.Marshal(fields)
	if err != nil {
		return "", &WriteError{Collection: collection, Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], memDoc{id: id, raw: raw})

	return id, nil
}

func (m *Mem) Upsert(ctx context.Context, collection string, filter map[string]any, doc any) error {
	fields, err := toFields(doc)
	if err != nil {
		return &WriteError{Collection: collection, Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, d := range m.collections[collection] {
		if matches(d.raw, filter) {
			fields["_id"] = d.id
			raw, err := bson.Marshal(fields)
			if err != nil {
				return &WriteError{Collection: collection, Err: err}
			}
			m.collections[collection][i].raw = raw
			return nil
		}
	}

	id := uuid.NewString()
	fields["_id"] = id
	raw, err := bson.Marshal(fields)
	if err != nil {
		return &WriteError{Collection: collection, Err: err}
	}
	m.collections[collection] = append(m.collections[collection], memDoc{id: id, raw: raw})

	return nil
}

func (m *Mem) Query(ctx context.Context, collection string, filter map[string]any, limit int64) ([]bson.Raw, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]bson.Raw, 0)
	for _, d := range m.collections[collection] {
		if !matches(d.raw, filter) {
			continue
		}
		out = append(out, d.raw)
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}

	return out, nil
}

func (m *Mem) FindByID(ctx context.Context, collection string, id string) (bson.Raw, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, d := range m.collections[collection] {
		if d.id == id {
			return d.raw, nil
		}
	}

	return nil, ErrNotFound
}

// toFields round-trips a document through bson into a flat field map.
func toFields(doc any) (bson.M, error) {
	b, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var fields bson.M
	if err := bson.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// matches reports whether the document satisfies the equality filter.
func matches(raw bson.Raw, filter map[string]any) bool {
	if len(filter) == 0 {
		return true
	}

	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return false
	}

	for k, want := range filter {
		got, ok := fields[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
