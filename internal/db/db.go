package db

import (
	"context"
	"log"

	"admindash/internal/env"
	"admindash/internal/models"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Ctx = context.Background()
var RDB *redis.Client
var Client *mongo.Client
var Database *mongo.Database

var Credentials *mongo.Collection

// SortKeys lists, per record collection, the field the services order by.
var SortKeys = map[string]string{
	models.CollectionUsers:    "createdAt",
	models.CollectionProjects: "createdAt",
	models.CollectionTasks:    "createdAt",
	models.CollectionActivity: "timestamp",
}

func InitDB(deployment string) error {
	var err error

	Client, err = mongo.Connect(
		Ctx,
		options.Client().ApplyURI(env.MONGO_URI),
	)
	if err != nil {
		return err
	}

	err = Client.Ping(Ctx, nil)
	if err != nil {
		log.Print("COULD NOT CONNECT TO MONGODB")
		return err
	}

	name := env.MONGO_DATABASE
	if deployment == "test" {
		name += "_test"
	}
	Database = Client.Database(name)

	// loading collections
	Credentials = GetCollection(name, "credentials", Client)

	return nil
}

func GetCollection(database string, collectionName string, client *mongo.Client) *mongo.Collection {
	return client.Database(database).Collection(collectionName)
}

func InitCache() error {
	var err error

	RDB = redis.NewClient(&redis.Options{
		Addr:     env.REDIS_ADDR,
		Password: env.REDIS_PASSWORD,
		DB:       env.REDIS_DB,
	})

	err = RDB.Ping(Ctx).Err()
	if err != nil {
		log.Print("COULD NOT CONNECT TO REDIS")
		return err
	}

	return nil
}

func Close() {
	if RDB != nil {
		_ = RDB.Close()
	}
	if Client != nil {
		_ = Client.Disconnect(Ctx)
	}
}
