// Package memory provides a map-backed store.Database used by tests. It
// mirrors the mongodb adapter's observable behavior: generated string ids,
// equality filters, and unique index enforcement on insert.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/grandnode/grandnode2-sub005/internal/store"
)

type collection struct {
	docs    []bson.M
	indexes []store.IndexSpec
}

type Database struct {
	mu          sync.Mutex
	collections map[string]*collection
	collation   map[string]string
}

func New() *Database {
	return &Database{
		collections: make(map[string]*collection),
		collation:   make(map[string]string),
	}
}

func (d *Database) coll(name string) *collection {
	c, ok := d.collections[name]
	if !ok {
		c = &collection{}
		d.collections[name] = c
	}
	return c
}

func (d *Database) CreateCollection(ctx context.Context, name string, collation *store.Collation) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.coll(name)
	if collation != nil {
		d.collation[name] = collation.Locale
	}
	return nil
}

// CollationLocale reports the locale a collection was created with.
func (d *Database) CollationLocale(name string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.collation[name]
}

func (d *Database) CreateIndexes(ctx context.Context, name string, specs []store.IndexSpec) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	c := d.coll(name)
	for _, spec := range specs {
		if spec.Unique {
			seen := make(map[string]bool)
			for _, doc := range c.docs {
				key := indexValue(doc, spec)
				if seen[key] {
					return fmt.Errorf("failed to create index %s on %s: duplicate key %q", spec.Name, name, key)
				}
				seen[key] = true
			}
		}
		c.indexes = append(c.indexes, spec)
	}
	return nil
}

func indexValue(doc bson.M, spec store.IndexSpec) string {
	parts := make([]string, 0, len(spec.Keys))
	for _, k := range spec.Keys {
		parts = append(parts, fmt.Sprintf("%v", doc[k.Field]))
	}
	return strings.Join(parts, "\x00")
}

func (d *Database) InsertOne(ctx context.Context, name string, doc interface{}) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.insertLocked(name, doc)
}

func (d *Database) insertLocked(name string, doc interface{}) (string, error) {
	m, err := flatten(doc)
	if err != nil {
		return "", err
	}

	id, ok := m["_id"].(string)
	if !ok || id == "" {
		id = primitive.NewObjectID().Hex()
		m["_id"] = id
	}

	c := d.coll(name)
	for _, spec := range c.indexes {
		if !spec.Unique {
			continue
		}
		key := indexValue(m, spec)
		for _, existing := range c.docs {
			if indexValue(existing, spec) == key {
				return "", fmt.Errorf("failed to insert into %s: duplicate key %q for index %s", name, key, spec.Name)
			}
		}
	}

	c.docs = append(c.docs, m)
	return id, nil
}

func (d *Database) InsertMany(ctx context.Context, name string, docs []interface{}) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		id, err := d.insertLocked(name, doc)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (d *Database) UpdateByID(ctx context.Context, name string, id string, fields bson.M) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	c := d.coll(name)
	for _, doc := range c.docs {
		if doc["_id"] == id {
			for k, v := range fields {
				doc[k] = normalize(v)
			}
			return nil
		}
	}
	return fmt.Errorf("failed to update %s/%s: %w", name, id, store.ErrNotFound)
}

func (d *Database) FindOne(ctx context.Context, name string, filter bson.M, out interface{}) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, doc := range d.coll(name).docs {
		if matches(doc, filter) {
			return decode(doc, out)
		}
	}
	return store.ErrNotFound
}

func (d *Database) Find(ctx context.Context, name string, filter bson.M, out interface{}) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	matched := bson.A{}
	for _, doc := range d.coll(name).docs {
		if matches(doc, filter) {
			matched = append(matched, doc)
		}
	}
	return decode(matched, out)
}

func (d *Database) Count(ctx context.Context, name string, filter bson.M) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var n int64
	for _, doc := range d.coll(name).docs {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

func (d *Database) ListCollections(ctx context.Context) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	names := make([]string, 0, len(d.collections))
	for name := range d.collections {
		names = append(names, name)
	}
	return names, nil
}

// flatten round-trips a document through bson so field names follow the
// same tags the mongodb adapter would use.
func flatten(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return m, nil
}

func decode(val interface{}, out interface{}) error {
	raw, err := bson.Marshal(bson.M{"v": val})
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	var wrapper struct {
		V bson.RawValue `bson:"v"`
	}
	if err := bson.Unmarshal(raw, &wrapper); err != nil {
		return fmt.Errorf("failed to unmarshal result: %w", err)
	}
	if err := wrapper.V.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}
	return nil
}

func matches(doc bson.M, filter bson.M) bool {
	for field, want := range filter {
		if !equal(doc[field], normalize(want)) {
			return false
		}
	}
	return true
}

// normalize collapses numeric types the way bson round-tripping does, so
// filter values compare cleanly against stored documents.
func normalize(v interface{}) interface{} {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	default:
		return v
	}
}

func equal(a, b interface{}) bool {
	a, b = normalize(a), normalize(b)
	if a == b {
		return true
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}
