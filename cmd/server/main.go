package main // Entry point package

import (
	"context"
	"log" // Logging library
	"time"

	"github.com/joho/godotenv"    // loads a local .env file in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/game-lounge/internal/config"
	"github.com/iliyamo/game-lounge/internal/database"
	"github.com/iliyamo/game-lounge/internal/handler"
	"github.com/iliyamo/game-lounge/internal/queue"
	"github.com/iliyamo/game-lounge/internal/repository"
	"github.com/iliyamo/game-lounge/internal/router"
	"github.com/iliyamo/game-lounge/internal/session"
	"github.com/iliyamo/game-lounge/internal/view"
)

func main() {
	_ = godotenv.Load() // best effort; real env vars win
	cfg := config.Load()

	// Open the sqlite store and make sure the schema and the demo account
	// exist before serving traffic.
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.Init(initCtx, db, cfg.BcryptCost); err != nil {
		log.Fatalf("init database: %v", err)
	}

	// Sessions live in Redis when one is reachable; otherwise fall back to
	// the in-process store so a dev machine without Redis still runs.
	var store session.Store
	if client := config.NewRedisClient(); client != nil {
		store = session.NewRedisStore(client)
		log.Printf("sessions: using redis store")
	} else {
		store = session.NewMemoryStore()
		log.Printf("sessions: redis unavailable, using in-memory store")
	}

	e := echo.New()
	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}
	e.Renderer = renderer

	users := repository.NewUserRepo(db)
	notes := repository.NewNoteRepo(db)
	stats := repository.NewStatsRepo(db)

	a := handler.NewAuthHandler(cfg, users, store)
	p := handler.NewPageHandler()
	n := handler.NewNoteHandler(notes)
	g := handler.NewGameHandler(stats)
	router.RegisterRoutes(e, cfg, store, a, p, n, g)

	// Background consumer that appends reported game results to a log
	// file. It reconnects forever and never takes the server down.
	go func() {
		if err := queue.StartGameResultConsumer(); err != nil {
			log.Printf("game-consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
