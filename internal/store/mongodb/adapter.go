package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/grandnode/grandnode2-sub005/internal/store"
)

type Adapter struct {
	client   *mongo.Client
	database *mongo.Database
	dbName   string
}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) Connect(ctx context.Context, url string) error {
	clientOpts := options.Client().ApplyURI(url)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	a.client = client
	a.dbName = extractDBName(url, clientOpts)
	a.database = client.Database(a.dbName)

	return nil
}

func extractDBName(url string, opts *options.ClientOptions) string {
	parts := strings.Split(url, "/")
	if len(parts) > 3 {
		dbPart := parts[len(parts)-1]
		if idx := strings.Index(dbPart, "?"); idx > 0 {
			dbPart = dbPart[:idx]
		}
		if dbPart != "" && dbPart != "admin" {
			return dbPart
		}
	}

	if opts != nil && opts.Auth != nil && opts.Auth.AuthSource != "" && opts.Auth.AuthSource != "admin" {
		return opts.Auth.AuthSource
	}

	return "grandnode"
}

func (a *Adapter) Close() error {
	if a.client != nil {
		return a.client.Disconnect(context.Background())
	}
	return nil
}

func (a *Adapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx, nil)
}

func (a *Adapter) CreateCollection(ctx context.Context, name string, collation *store.Collation) error {
	opts := options.CreateCollection()
	if collation != nil && collation.Locale != "" {
		opts.SetCollation(&options.Collation{Locale: collation.Locale})
	}

	err := a.database.CreateCollection(ctx, name, opts)
	if err != nil {
		// A re-created collection is not a provisioning failure.
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Code == 48 { // NamespaceExists
			return nil
		}
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}
	return nil
}

func (a *Adapter) CreateIndexes(ctx context.Context, collection string, specs []store.IndexSpec) error {
	if len(specs) == 0 {
		return nil
	}

	mods := make([]mongo.IndexModel, 0, len(specs))
	for _, spec := range specs {
		keys := bson.D{}
		for _, k := range spec.Keys {
			dir := 1
			if k.Desc {
				dir = -1
			}
			keys = append(keys, bson.E{Key: k.Field, Value: dir})
		}
		opts := options.Index().SetName(spec.Name)
		if spec.Unique {
			opts.SetUnique(true)
		}
		mods = append(mods, mongo.IndexModel{Keys: keys, Options: opts})
	}

	if _, err := a.database.Collection(collection).Indexes().CreateMany(ctx, mods); err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
	}
	return nil
}

func (a *Adapter) InsertOne(ctx context.Context, collection string, doc interface{}) (string, error) {
	raw, err := toDocument(doc)
	if err != nil {
		return "", err
	}

	res, err := a.database.Collection(collection).InsertOne(ctx, raw)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	return insertedID(res.InsertedID), nil
}

func (a *Adapter) InsertMany(ctx context.Context, collection string, docs []interface{}) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	raws := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		raw, err := toDocument(doc)
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}

	res, err := a.database.Collection(collection).InsertMany(ctx, raws)
	if err != nil {
		return nil, fmt.Errorf("failed to insert batch into %s: %w", collection, err)
	}

	ids := make([]string, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		ids = append(ids, insertedID(id))
	}
	return ids, nil
}

func (a *Adapter) UpdateByID(ctx context.Context, collection string, id string, fields bson.M) error {
	res, err := a.database.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("failed to update %s/%s: %w", collection, id, store.ErrNotFound)
	}
	return nil
}

func (a *Adapter) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	err := a.database.Collection(collection).FindOne(ctx, filter).Decode(out)
	if err == mongo.ErrNoDocuments {
		return store.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collection, err)
	}
	return nil
}

func (a *Adapter) Find(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	cursor, err := a.database.Collection(collection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s results: %w", collection, err)
	}
	return nil
}

func (a *Adapter) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	return a.database.Collection(collection).CountDocuments(ctx, filter)
}

func (a *Adapter) ListCollections(ctx context.Context) ([]string, error) {
	names, err := a.database.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// toDocument flattens a struct into bson.D and assigns a generated hex id
// when _id is absent or empty, so callers always get the id back as a string.
func toDocument(doc interface{}) (bson.D, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	for i, elem := range d {
		if elem.Key == "_id" {
			if s, ok := elem.Value.(string); ok && s == "" {
				d[i].Value = primitive.NewObjectID().Hex()
			}
			return d, nil
		}
	}

	return append(bson.D{{Key: "_id", Value: primitive.NewObjectID().Hex()}}, d...), nil
}

func insertedID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case primitive.ObjectID:
		return v.Hex()
	default:
		return fmt.Sprintf("%v", v)
	}
}
