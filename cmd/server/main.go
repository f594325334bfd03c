// @title Admin Dashboard API
// @version 25.10.16.1
// @description Dashboard API over users, projects, tasks, the activity log and aggregate statistics.
// @BasePath /dashboard
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Provide the session token as `Bearer <token>`.

// @Tag.name Meta
// @Tag.description Health checks and metadata about the dashboard service.

// @Tag.name Auth
// @Tag.description Sign-up, sign-in and session management.

// @Tag.name Dashboard
// @Tag.description Statistics, overview, activity log and reports.

// @Tag.name Users
// @Tag.description Directory profiles and account administration.

// @Tag.name Projects
// @Tag.description Projects owned by dashboard users.

// @Tag.name Tasks
// @Tag.description Tasks inside projects.

// @Tag.name Streams
// @Tag.description WebSocket live views.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"admindash/internal"
	"admindash/internal/db"
	"admindash/internal/env"

	"github.com/gofiber/fiber/v3"
)

func main() {
	deployment := flag.String("deployment", "", "deployment profile (dev|test|prod)")
	portFlag := flag.String("port", "", "port to listen on")
	envRoot := flag.String("env-root", "", "directory containing environment files")
	appVersion := flag.String("app-version", "", "application version override")

	flag.Parse()

	deploy := strings.TrimSpace(*deployment)
	if deploy == "" {
		args := flag.Args()
		if len(args) == 0 {
			fmt.Println("Usage: server --deployment <type> --port <port> [--env-root <dir>] [--app-version <version>]")
			os.Exit(1)
		}
		deploy = strings.TrimSpace(args[0])
	}

	if deploy == "" {
		log.Fatal("deployment is required")
	}

	port := strings.TrimSpace(*portFlag)
	if port == "" {
		log.Fatal("port is required")
	}

	app, em := internal.SetupApp(deploy, *envRoot, *appVersion)

	fmt.Println("APP VERSION:", env.VERSION)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := app.Listen(fmt.Sprintf(":%s", port), fiber.ListenConfig{
		EnablePrefork: env.PREFORK,
	}); err != nil {
		log.Fatalf("Error listening on port %s: %v", port, err)
	}

	em.Close()
	db.Close()
}
