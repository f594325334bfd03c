package directory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"admindash/internal/backend"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCredentials stores password credentials in a single collection with
// unique id and email indexes.
type MongoCredentials struct {
	coll *mongo.Collection
}

func NewMongoCredentials(coll *mongo.Collection) *MongoCredentials {
	return &MongoCredentials{coll: coll}
}

func (s *MongoCredentials) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return translate(err)
}

func (s *MongoCredentials) Create(ctx context.Context, cred Credential) error {
	_, err := s.coll.InsertOne(ctx, cred)
	return translate(err)
}

func (s *MongoCredentials) ByEmail(ctx context.Context, email string) (Credential, error) {
	var cred Credential
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&cred)
	return cred, translate(err)
}

func (s *MongoCredentials) ByID(ctx context.Context, id string) (Credential, error) {
	var cred Credential
	err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(&cred)
	return cred, translate(err)
}

func (s *MongoCredentials) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return backend.ErrNotFound
	}
	return nil
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
	return fmt.Errorf("%w: %v", backend.ErrUnavailable, err)
}

type MemoryCredentials struct {
	mu      sync.RWMutex
	byID    map[string]Credential
	byEmail map[string]string
}

func NewMemoryCredentials() *MemoryCredentials {
	return &MemoryCredentials{
		byID:    make(map[string]Credential),
		byEmail: make(map[string]string),
	}
}

func (s *MemoryCredentials) Create(_ context.Context, cred Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[cred.Email]; ok {
		return backend.ErrDuplicate
	}
	if _, ok := s.byID[cred.ID]; ok {
		return backend.ErrDuplicate
	}

	s.byID[cred.ID] = cred
	s.byEmail[cred.Email] = cred.ID
	return nil
}

func (s *MemoryCredentials) ByEmail(_ context.Context, email string) (Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return Credential{}, backend.ErrNotFound
	}
	return s.byID[id], nil
}

func (s *MemoryCredentials) ByID(_ context.Context, id string) (Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cred, ok := s.byID[id]
	if !ok {
		return Credential{}, backend.ErrNotFound
	}
	return cred, nil
}

func (s *MemoryCredentials) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, ok := s.byID[id]
	if !ok {
		return backend.ErrNotFound
	}
	delete(s.byID, id)
	delete(s.byEmail, cred.Email)
	return nil
}
