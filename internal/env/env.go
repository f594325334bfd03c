package env

import (
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// actual environment variables
var JWT_SECRET []byte
var MONGO_URI string
var MONGO_DATABASE string
var REDIS_ADDR string
var REDIS_PASSWORD string
var REDIS_DB int
var SESSION_TTL time.Duration
var REQUEST_TIMEOUT time.Duration
var PREFORK bool
var DRAIN_MODE bool
var LOG_FILE string
var LOG_LEVEL string

// this is required
var VERSION string

const (
	defaultSessionTTL     = 24 * time.Hour
	defaultRequestTimeout = 10 * time.Second
)

func Init(envRoot string, appVersion string) {
	loadEnv(envRoot)
	loadVersion(appVersion)

	PREFORK, _ = strconv.ParseBool(os.Getenv("PREFORK"))
	DRAIN_MODE, _ = strconv.ParseBool(os.Getenv("DRAIN_MODE"))
	MONGO_URI = os.Getenv("MONGO_URI")
	MONGO_DATABASE = stringOr("MONGO_DATABASE", "admindash")
	REDIS_ADDR = stringOr("REDIS_ADDR", "127.0.0.1:6379")
	REDIS_PASSWORD = os.Getenv("REDIS_PASSWORD")
	REDIS_DB, _ = strconv.Atoi(os.Getenv("REDIS_DB"))
	JWT_SECRET = []byte(os.Getenv("JWT_SECRET"))
	SESSION_TTL = durationOr("SESSION_TTL", defaultSessionTTL)
	REQUEST_TIMEOUT = durationOr("REQUEST_TIMEOUT", defaultRequestTimeout)
	LOG_FILE = strings.TrimSpace(os.Getenv("LOG_FILE"))
	LOG_LEVEL = stringOr("LOG_LEVEL", "info")
}

// InitTest sets the values the in-memory test app needs without touching
// the filesystem.
func InitTest() {
	JWT_SECRET = []byte("test-secret")
	SESSION_TTL = time.Hour
	REQUEST_TIMEOUT = 5 * time.Second
	VERSION = "test"
	DRAIN_MODE = false
}

func stringOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("invalid %s %q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}

func loadEnv(envRoot string) {
	if envRoot == "" {
		envRoot = repoRoot()
	}

	path := path.Join(envRoot, ".env")
	if err := godotenv.Overload(path); err != nil {
		log.Printf("no env file at %s, using process environment: %v", path, err)
	}
}

func loadVersion(appVersion string) {
	if appVersion == "" {
		data, err := os.ReadFile(filepath.Join(repoRoot(), "VERSION"))
		if err != nil {
			log.Printf("failed to read version file from repo root: %v", err)
			VERSION = "unknown"
			return
		}

		trimmed := strings.TrimSpace(string(data))
		if trimmed != "" {
			VERSION = trimmed
		} else {
			VERSION = "unknown"
		}
	} else {
		VERSION = appVersion
	}
}

func repoRoot() string {
	_, b, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(b), "../..")
}
