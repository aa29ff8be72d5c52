package main

import (
	auth "Thermowall/internal/auth"
	catalog "Thermowall/internal/calc/catalog"
	autodesign "Thermowall/internal/calc/premium/autodesign"
	batch "Thermowall/internal/calc/premium/batch"
	importer "Thermowall/internal/calc/premium/importer"
	recommend "Thermowall/internal/calc/premium/recommend"
	report "Thermowall/internal/calc/report"
	wall "Thermowall/internal/calc/wall"
	config "Thermowall/internal/config"
	history "Thermowall/internal/history"
	repo "Thermowall/internal/repo"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

type deps struct {
	cfg     config.Config
	repo    repo.Repository
	catalog *catalog.Catalog
	log     *zap.Logger
}

func HandleList(mux *mux.Router, d deps) {
	authEnv := &auth.Authenv{JWTkey: []byte(d.cfg.TokenKey), Repo: d.repo, Log: d.log}
	limiter := auth.NewIPRateLimiter(rate.Limit(d.cfg.RateLimit), d.cfg.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	resolver := wall.Resolver{Cities: d.catalog, DefaultResistance: d.cfg.RequiredResistance}
	wallH := &wall.Handler{Resolver: resolver, Repo: d.repo, Log: d.log}
	reportH := &report.Handler{Resolver: resolver, Log: d.log}
	batchH := &batch.Handler{Resolver: resolver, Log: d.log}
	importH := &importer.Handler{Resolver: resolver, Log: d.log}
	recommendH := &recommend.Handler{Catalog: d.catalog, DefaultResistance: d.cfg.RequiredResistance, Log: d.log}
	autoH := &autodesign.Handler{Resolver: resolver, Log: d.log}
	historyH := &history.HistoryHandler{Repo: d.repo, Log: d.log}

	secureApi.HandleFunc("/tools/wall/calc", wallH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/wall/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/wall/batch", batchH.Walls).Methods("POST")
	secureApi.HandleFunc("/tools/wall/import", importH.Walls).Methods("POST")
	secureApi.HandleFunc("/tools/wall/export", importH.Export).Methods("POST")
	secureApi.HandleFunc("/tools/wall/recommend", recommendH.Insulators).Methods("POST")
	secureApi.HandleFunc("/tools/wall/autodesign", autoH.MainLayer).Methods("POST")

	secureApi.HandleFunc("/tools/materials", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(d.catalog); err != nil {
			d.log.Error("encode catalog", zap.Error(err))
		}
	}).Methods("GET")

	secureApi.HandleFunc("/history", historyH.List).Methods("GET")
	secureApi.HandleFunc("/history/{id}", historyH.Get).Methods("GET")

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}

	db, err := repo.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("База не отвечает", zap.Error(err))
	}
	defer db.Close()

	mux := mux.NewRouter()
	HandleList(mux, deps{cfg: cfg, repo: repo.NewPostgresUserDB(db), catalog: cat, log: logger})
	handler := CORS(mux)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", zap.String("addr", cfg.Addr), zap.Int("materials", len(cat.Materials)))
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received, closing active connections")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(err))
	}
	wg.Wait()
	logger.Info("Сервер успешно остановлен")
}
