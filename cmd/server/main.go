package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"diaryhub/internal/config"
	"diaryhub/internal/database"
	postgresrepo "diaryhub/internal/repository/postgres"
	"diaryhub/internal/service"
	"diaryhub/internal/transport/http/handlers"
	"diaryhub/internal/transport/http/middleware"
	"diaryhub/internal/transport/ws"
)

func main() {
	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	if err := database.Migrate(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	diaryRepo := postgresrepo.NewDiaryRepo(pool)
	entryRepo := postgresrepo.NewEntryRepo(pool)
	notificationRepo := postgresrepo.NewNotificationRepo(pool)
	tokenRepo := postgresrepo.NewTokenRepo(pool)

	// Services
	tokenService := service.NewTokenService(tokenRepo, cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo, diaryRepo)
	diaryService := service.NewDiaryService(diaryRepo, userRepo)
	entryService := service.NewEntryService(entryRepo, diaryRepo, userRepo, notificationRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	// WebSocket hub for live notification push
	hub := ws.NewHub()
	go hub.Run()
	entryService.SetNotifier(ws.NewHubNotifier(hub))

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	diaryHandler := handlers.NewDiaryHandler(diaryService)
	entryHandler := handlers.NewEntryHandler(entryService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Auth middleware
	auth := middleware.Auth(tokenService)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v2/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v2/auth/login", authHandler.Login)
	mux.Handle("POST /api/v2/auth/logout", auth(http.HandlerFunc(authHandler.Logout)))

	// Diaries
	mux.HandleFunc("GET /api/v2/diaries/{$}", diaryHandler.List)
	mux.Handle("POST /api/v2/diaries/{$}", auth(http.HandlerFunc(diaryHandler.Create)))
	mux.HandleFunc("GET /api/v2/diaries/{id}", diaryHandler.Get)
	mux.Handle("PUT /api/v2/diaries/{id}", auth(http.HandlerFunc(diaryHandler.Update)))
	mux.Handle("DELETE /api/v2/diaries/{id}", auth(http.HandlerFunc(diaryHandler.Delete)))

	// Entries
	mux.Handle("GET /api/v2/diaries/entries", auth(http.HandlerFunc(entryHandler.ListAll)))
	mux.Handle("POST /api/v2/diaries/{id}/entries", auth(http.HandlerFunc(entryHandler.Create)))
	mux.HandleFunc("GET /api/v2/diaries/{id}/entries", entryHandler.ListByDiary)
	mux.Handle("PUT /api/v2/diaries/{id}/entries/{eid}", auth(http.HandlerFunc(entryHandler.Update)))
	mux.Handle("DELETE /api/v2/diaries/{id}/entries/{eid}", auth(http.HandlerFunc(entryHandler.Delete)))

	// Users
	mux.HandleFunc("GET /api/v2/users", userHandler.List)
	mux.HandleFunc("GET /api/v2/users/{id}", userHandler.Get)
	mux.HandleFunc("GET /api/v2/users/{id}/diaries", userHandler.Diaries)
	mux.Handle("DELETE /api/v2/users/{id}", auth(http.HandlerFunc(userHandler.Delete)))

	// Notifications
	mux.Handle("GET /api/v2/notifications", auth(http.HandlerFunc(notificationHandler.List)))
	mux.Handle("POST /api/v2/notifications/{id}/read", auth(http.HandlerFunc(notificationHandler.MarkRead)))

	// Live notification stream
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, tokenService))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}
