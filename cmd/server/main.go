package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"quiz-platform/internal/auth"
	"quiz-platform/internal/models"
	"quiz-platform/internal/progression"
	"quiz-platform/internal/quiz"
	"quiz-platform/pkg/cache"
	"quiz-platform/pkg/database"
	"quiz-platform/pkg/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize database
	dbConfig := &database.Config{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   os.Getenv("DB_NAME"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}

	db, err := database.NewPostgresDB(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.QuizAttempt{},
		&models.UserProgress{},
		&models.ProgressApplication{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize Redis cache
	redisCache := cache.NewRedisCache(os.Getenv("REDIS_ADDR"))
	if err := redisCache.Ping(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisCache.Close()

	// Initialize WebSocket hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Initialize repositories
	authRepo := auth.NewRepository(db)
	quizRepo := quiz.NewRepository(db)
	progressRepo := progression.NewRepository(db)

	// Initialize services
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET must be set")
	}
	authService := auth.NewService(authRepo, jwtSecret)
	quizService := quiz.NewService(quizRepo)
	progressionService := progression.NewService(quizService, progressRepo, redisCache, wsHub)

	if err := quizService.SeedDefaultQuizzes(); err != nil {
		log.Fatalf("Failed to seed quizzes: %v", err)
	}

	// Initialize handlers
	authHandler := auth.NewHandler(authService)
	quizHandler := quiz.NewHandler(quizService)
	progressionHandler := progression.NewHandler(progressionService)

	// Setup router
	router := mux.NewRouter()

	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "*"
	}
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(corsOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	handler := corsMiddleware.Handler(router)

	// Auth routes - no JWT required
	router.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Authenticated API routes
	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(auth.JWTMiddleware(jwtSecret))

	apiRouter.HandleFunc("/auth/me", authHandler.Me).Methods("GET")
	apiRouter.HandleFunc("/quizzes", quizHandler.GetQuizzes).Methods("GET")
	apiRouter.HandleFunc("/quizzes/{quizID}", quizHandler.GetQuiz).Methods("GET")
	apiRouter.HandleFunc("/quiz/submit", progressionHandler.SubmitQuiz).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/user/stats", progressionHandler.GetStats).Methods("GET")
	apiRouter.HandleFunc("/user/history", progressionHandler.GetHistory).Methods("GET")
	apiRouter.HandleFunc("/leaderboard", progressionHandler.GetLeaderboard).Methods("GET")

	// WebSocket endpoint - live progress feed
	router.HandleFunc("/ws", wsHub.HandleWebSocket)

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown setup
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server shutdown gracefully")
}
