package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"admindash/internal/backend"
	"admindash/internal/logging"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the DocumentStore backed by one MongoDB database. Records are
// addressed by their string "id" field, not by _id.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// EnsureIndexes creates the unique id index on every collection plus the
// sort keys the services query by.
func (s *Mongo) EnsureIndexes(ctx context.Context, collections map[string]string) error {
	for name, sortKey := range collections {
		models := []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		}
		if sortKey != "" {
			models = append(models, mongo.IndexModel{Keys: bson.D{{Key: sortKey, Value: -1}}})
		}
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return unavailable(err)
		}
	}
	return nil
}

func (s *Mongo) Get(ctx context.Context, collection, id string, out any) error {
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"id": id}).Decode(out)
	if err != nil {
		return translate(err)
	}
	return nil
}

func (s *Mongo) Query(ctx context.Context, collection string, q backend.Query, out any) error {
	docs, err := s.find(ctx, collection, q)
	if err != nil {
		return err
	}
	return backend.DecodeDocs(docs, out)
}

func (s *Mongo) find(ctx context.Context, collection string, q backend.Query) ([]bson.M, error) {
	coll := s.db.Collection(collection)

	filter := bson.M{}
	for k, v := range q.Filter {
		filter[k] = v
	}

	if q.After != "" && q.OrderBy != "" {
		var anchor bson.M
		if err := coll.FindOne(ctx, bson.M{"id": q.After}).Decode(&anchor); err != nil {
			return nil, fmt.Errorf("cursor %s: %w", q.After, translate(err))
		}
		for k, v := range afterFilter(q.OrderBy, q.Descending, anchor) {
			filter[k] = v
		}
	}

	opts := options.Find()
	if q.OrderBy != "" {
		dir := 1
		if q.Descending {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.OrderBy, Value: dir}, {Key: "_id", Value: dir}})
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	opts.SetProjection(bson.M{"_id": 0})

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, unavailable(err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, unavailable(err)
	}
	return docs, nil
}

// afterFilter selects the records that sort after anchor under the
// (orderBy, _id) ordering find uses, so ties on orderBy are not skipped.
func afterFilter(orderBy string, descending bool, anchor bson.M) bson.M {
	op := "$gt"
	if descending {
		op = "$lt"
	}
	return bson.M{"$or": bson.A{
		bson.M{orderBy: bson.M{op: anchor[orderBy]}},
		bson.M{orderBy: anchor[orderBy], "_id": bson.M{op: anchor["_id"]}},
	}}
}

func (s *Mongo) Insert(ctx context.Context, collection string, doc any) (string, error) {
	d, err := prepare(doc)
	if err != nil {
		return "", err
	}

	if _, err := s.db.Collection(collection).InsertOne(ctx, d); err != nil {
		return "", translate(err)
	}
	return d["id"].(string), nil
}

func (s *Mongo) InsertMany(ctx context.Context, collection string, docs []any) error {
	if len(docs) == 0 {
		return nil
	}

	prepared := make([]interface{}, len(docs))
	for i, doc := range docs {
		d, err := prepare(doc)
		if err != nil {
			return err
		}
		prepared[i] = d
	}

	_, err := s.db.Collection(collection).InsertMany(ctx, prepared)
	return translate(err)
}

func (s *Mongo) Update(ctx context.Context, collection, id string, patch backend.Patch) error {
	set := bson.M{}
	for k, v := range patch {
		if k == "id" {
			continue
		}
		set[k] = v
	}

	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return backend.ErrNotFound
	}
	return nil
}

func (s *Mongo) Delete(ctx context.Context, collection, id string) error {
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return backend.ErrNotFound
	}
	return nil
}

func (s *Mongo) Count(ctx context.Context, collection string, filter backend.Filter) (int64, error) {
	f := bson.M{}
	for k, v := range filter {
		f[k] = v
	}

	n, err := s.db.Collection(collection).CountDocuments(ctx, f)
	if err != nil {
		return 0, unavailable(err)
	}
	return n, nil
}

// Subscribe re-runs q after every change event on the collection. Change
// streams need a replica set; on a standalone server Watch fails and the
// error is returned to the caller.
func (s *Mongo) Subscribe(ctx context.Context, collection string, q backend.Query) (*backend.Subscription, error) {
	watchCtx, cancel := context.WithCancel(ctx)

	stream, err := s.db.Collection(collection).Watch(watchCtx, mongo.Pipeline{})
	if err != nil {
		cancel()
		return nil, unavailable(err)
	}

	ch := make(chan backend.Snapshot, 1)
	emit := func() error {
		docs, err := s.find(watchCtx, collection, q)
		if err != nil {
			return err
		}
		backend.Offer(ch, backend.Snapshot{Collection: collection, Docs: docs, At: time.Now().UTC()})
		return nil
	}

	if err := emit(); err != nil {
		cancel()
		_ = stream.Close(context.Background())
		return nil, err
	}

	go func() {
		defer stream.Close(context.Background())

		for stream.Next(watchCtx) {
			if err := emit(); err != nil && !errors.Is(err, context.Canceled) {
				logging.Logger.Warnf("Event ID: SUBSCRIPTION_REFRESH_FAILED, Description: refreshing %s snapshot failed: %v", collection, err)
			}
		}

		if err := stream.Err(); err != nil && !errors.Is(err, context.Canceled) {
			logging.Logger.Warnf("Event ID: SUBSCRIPTION_STREAM_ENDED, Description: change stream on %s ended: %v", collection, err)
		}
	}()

	return backend.NewSubscription(ch, cancel), nil
}

func prepare(doc any) (bson.M, error) {
	d, err := backend.ToDocument(doc)
	if err != nil {
		return nil, err
	}

	if id, _ := d["id"].(string); id == "" {
		d["id"] = uuid.NewString()
	}
	delete(d, "_id")
	return d, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return backend.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return backend.ErrDuplicate
	}
	return unavailable(err)
}

func unavailable(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", backend.ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %v", backend.ErrUnavailable, err)
}
