package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	apphttp "lendingapi/internal/http"
	"lendingapi/internal/httpx"
	"lendingapi/internal/push"
	"lendingapi/internal/store"
	"lendingapi/internal/usecase"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	databaseDSN := os.Getenv("DB_DSN")

	policy := usecase.Policy{
		MaxOutstanding:    getEnvInt("LENDING_MAX_OUTSTANDING", 2),
		WarnAtOutstanding: getEnvInt("LENDING_WARN_AT", 1),
	}

	// The lending store is Postgres when a DSN is configured, otherwise the
	// in-process store for local development.
	var lendingStore usecase.LendingStore
	var dbPool *pgxpool.Pool
	if databaseDSN != "" {
		dbPool = mustOpenDB(databaseDSN)
		defer dbPool.Close()
		lendingStore = store.NewPostgres(dbPool)
		log.Printf("store=postgres")
	} else {
		lendingStore = store.NewMemory()
		log.Printf("store=memory dsn_not_configured=true")
	}

	lendingService := usecase.NewLendingService(lendingStore, policy)
	queryService := usecase.NewQueryService(lendingStore, lendingStore)

	hub := push.NewHub()
	go hub.Run()

	lendingHandler := apphttp.NewLendingHandler(lendingService, queryService, hub)
	bookHandler := apphttp.NewBookHandler(lendingStore, queryService)
	transactionsHandler := apphttp.NewTransactionsHandler(queryService)
	wsHandler := apphttp.NewWSHandler(hub)

	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if dbPool == nil {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := dbPool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("/borrow-book", requirePost(lendingHandler.BorrowBook))
	router.HandleFunc("/return-book", requirePost(lendingHandler.ReturnBook))
	router.HandleFunc("/borrowed-books/", lendingHandler.BorrowedBooks)

	router.HandleFunc("/books", bookHandler.List)
	router.HandleFunc("/books/", bookHandler.Get)
	router.HandleFunc("/add-book", requirePost(bookHandler.Add))
	router.HandleFunc("/update-book", requirePost(bookHandler.Update))
	router.HandleFunc("/delete-book", requirePost(bookHandler.Delete))

	router.HandleFunc("/transactions", transactionsHandler.List)
	router.HandleFunc("/transactions/grouped", transactionsHandler.Grouped)

	router.HandleFunc("/ws", wsHandler.Subscribe)

	corsOrigins := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ",")
	rateLimit := httpx.NewRateLimitMiddleware(float64(getEnvInt("RATE_LIMIT_RPS", 50)), getEnvInt("RATE_LIMIT_BURST", 100))

	var handler http.Handler = router
	handler = httpx.RequestSizeLimitMiddleware(1 << 20)(handler)
	handler = rateLimit.Middleware(handler)
	handler = httpx.CORSMiddleware(corsOrigins)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("listening addr=%s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}

func requirePost(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

func mustOpenDB(dsn string) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("failed to open db pool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}
	return pool
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return n
}
