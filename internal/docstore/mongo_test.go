package docstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAfterFilterBreaksTiesOnID(t *testing.T) {
	at := primitive.NewDateTimeFromTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	oid := primitive.NewObjectID()
	anchor := bson.M{"_id": oid, "createdAt": at}

	got := afterFilter("createdAt", true, anchor)
	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"createdAt": bson.M{"$lt": at}},
		bson.M{"createdAt": at, "_id": bson.M{"$lt": oid}},
	}}, got)

	got = afterFilter("createdAt", false, anchor)
	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"createdAt": bson.M{"$gt": at}},
		bson.M{"createdAt": at, "_id": bson.M{"$gt": oid}},
	}}, got)
}
