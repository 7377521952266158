package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	api "github.com/VictoriaCloud360/CursoAPP/internal/api/http"
	"github.com/VictoriaCloud360/CursoAPP/internal/archive"
	"github.com/VictoriaCloud360/CursoAPP/internal/config"
	"github.com/VictoriaCloud360/CursoAPP/internal/db"
	"github.com/VictoriaCloud360/CursoAPP/internal/download"
	"github.com/VictoriaCloud360/CursoAPP/internal/export"
	"github.com/VictoriaCloud360/CursoAPP/internal/ledger"
	"github.com/VictoriaCloud360/CursoAPP/internal/logger"
	"github.com/VictoriaCloud360/CursoAPP/internal/session"
	"github.com/VictoriaCloud360/CursoAPP/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cursoappd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Ledger ---
	var (
		led ledger.Store = ledger.NewMemoryStore()
		dbh *sql.DB
	)
	if cfg.DBDriver != "" {
		openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		dbh, err = db.Open(openCtx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		cancel()
		if err != nil {
			return fmt.Errorf("db open: %w", err)
		}
		defer dbh.Close()
		led = ledger.NewSQLStore(dbh)
	}

	// --- Artifact store ---
	var (
		blobs   storage.BlobStore
		fsBlobs *storage.FSStore
	)
	switch cfg.BlobDriver {
	case "redis":
		rs, err := storage.NewRedisStore(ctx, cfg.RedisURL, "", cfg.DownloadTTL)
		if err != nil {
			return fmt.Errorf("blob store: %w", err)
		}
		defer rs.Close()
		blobs = rs
	default:
		fs, err := storage.NewFSStore(cfg.BlobBasePath)
		if err != nil {
			return fmt.Errorf("blob store: %w", err)
		}
		blobs, fsBlobs = fs, fs
	}

	// --- Export service ---
	opts := []export.Option{
		export.WithStore(blobs),
		export.WithLedger(led),
		export.WithLanguage(cfg.PackageLanguage),
		export.WithLogger(log),
	}
	if cfg.ArchiverEnabled {
		opts = append(opts, export.WithArchiver(archive.NewZipArchiver(cfg.CompressionLevel)))
	} else {
		log.Warn("archiver disabled; SCORM and H5P exports will be refused")
	}
	svc := export.New(opts...)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	api.Mount(r, api.Deps{
		Sessions:  session.NewMemoryStore(),
		Exports:   svc,
		Ledger:    led,
		Blobs:     blobs,
		Tickets:   download.NewIssuer(cfg.DownloadSecret, cfg.DownloadTTL),
		PublicURL: cfg.PublicURL,
		Log:       log,
		Ready: func(ctx context.Context) error {
			if dbh != nil {
				if err := dbh.PingContext(ctx); err != nil {
					return err
				}
			}
			return blobs.Ping(ctx)
		},
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r, ReadHeaderTimeout: 10 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", "addr", cfg.HTTPAddr, "mode", string(cfg.Mode), "db", cfg.DBDriver, "blob", cfg.BlobDriver)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})
	if fsBlobs != nil {
		// redis expires artifacts itself; files need a sweep
		g.Go(func() error {
			return fsBlobs.RunSweeper(gctx, cfg.DownloadTTL, cfg.DownloadTTL, log)
		})
	}
	return g.Wait()
}
