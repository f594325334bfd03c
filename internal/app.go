package internal

import (
	"context"
	"log"
	"strings"

	"admindash/internal/access"
	"admindash/internal/api"
	"admindash/internal/auth"
	"admindash/internal/backend"
	"admindash/internal/core"
	"admindash/internal/db"
	"admindash/internal/directory"
	"admindash/internal/docstore"
	"admindash/internal/env"
	"admindash/internal/events"
	"admindash/internal/logging"
	"admindash/internal/swagger"

	"github.com/gofiber/fiber/v3"
)

// Deps are the collaborators the HTTP surface is built on.
type Deps struct {
	Directory backend.Directory
	Store     backend.DocumentStore
	Activity  *events.Emitter
}

// NewApp mounts every route under /dashboard. Request values are immutable
// because handlers hand params to stores and to websocket goroutines that
// outlive the request.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{Immutable: true})

	gate := access.NewGate(deps.Directory, deps.Store)
	services := core.New(deps.Directory, deps.Store, deps.Activity)

	dashboard := app.Group("/dashboard")

	auth.Routes(dashboard, &auth.Handler{Gate: gate, Users: services.Users})
	swagger.Register(app)
	api.Routes(dashboard, &api.Handler{
		Gate:      gate,
		Services:  services,
		Directory: deps.Directory,
		Store:     deps.Store,
	})

	return app
}

// SetupApp loads the environment, connects MongoDB and Redis and returns the
// production app together with its activity emitter.
func SetupApp(deployment string, envRoot string, appVersion string) (*fiber.App, *events.Emitter) {
	env.Init(envRoot, appVersion)

	deploy := strings.TrimSpace(deployment)

	logging.InitLogger("admindash", env.LOG_FILE, env.LOG_LEVEL)

	if len(env.JWT_SECRET) == 0 {
		log.Fatal("JWT_SECRET is required")
		return nil, nil
	}

	if err := db.InitDB(deploy); err != nil {
		log.Fatal("Could not connect to MongoDB")
		return nil, nil
	}

	if err := db.InitCache(); err != nil {
		log.Fatal("Could not connect to Redis")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), env.REQUEST_TIMEOUT)
	defer cancel()

	mongoStore := docstore.NewMongo(db.Database)
	if err := mongoStore.EnsureIndexes(ctx, db.SortKeys); err != nil {
		log.Fatalf("Could not create indexes: %v", err)
		return nil, nil
	}

	credentials := directory.NewMongoCredentials(db.Credentials)
	if err := credentials.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Could not create credential indexes: %v", err)
		return nil, nil
	}

	store := docstore.WithBreaker(mongoStore, "docstore")
	dir := directory.New(credentials, directory.NewRedisSessions(db.RDB), env.JWT_SECRET, env.SESSION_TTL)
	em := events.NewEmitter(store, deploy)

	logging.Logger.Infof("Event ID: APP_READY, Description: deployment %s version %s", deploy, env.VERSION)

	return NewApp(Deps{Directory: dir, Store: store, Activity: em}), em
}
