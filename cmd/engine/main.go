package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"

	"interning-engine/internal/config"
	"interning-engine/internal/events"
	"interning-engine/internal/httpapi"
	"interning-engine/internal/levels"
	"interning-engine/internal/listing"
	"interning-engine/internal/refresh"
	"interning-engine/internal/scheduler"
	"interning-engine/internal/store"
)

var cli struct {
	DataDir string `help:"Directory for the user config and database." default:"." env:"INTERNING_DATA_DIR"`
	Config  string `help:"Path to the shipped default config." default:"config/config.yml" type:"path"`
	Addr    string `help:"Listen address; overrides app.port from the config." default:""`
}

func main() {
	kong.Parse(&cli,
		kong.Name("interning-engine"),
		kong.Description("Local engine behind the internship dashboard."),
	)

	if err := os.MkdirAll(cli.DataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir; a second instance would fight over the
	// sqlite writer.
	lock := flock.New(filepath.Join(cli.DataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock data dir: %v", err)
	}
	if !locked {
		log.Fatalf("another engine already runs in %s", cli.DataDir)
	}
	defer func() { _ = lock.Unlock() }()

	userCfgPath, err := config.EnsureUserConfig(cli.DataDir, cli.Config)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(cfg)
	for _, warn := range vr.Warnings {
		log.Printf("level=warn msg=%q", warn)
	}
	if !vr.OK() {
		log.Fatalf("config invalid (%s): %v", userCfgPath, vr.Errors)
	}
	cfgVal.Store(cfg)

	dbPath := filepath.Join(cli.DataDir, "interning.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	table, err := levels.Load()
	if err != nil {
		log.Fatal(err)
	}

	hub := events.NewHub()
	client := listing.NewClient(time.Duration(cfg.Source.MinFetchIntervalSeconds) * time.Second)
	refresher := refresh.New(client, hub)

	mux := httpapi.NewMux(httpapi.Deps{
		Store:       db,
		Hub:         hub,
		Refresher:   refresher,
		Levels:      table,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	})

	addr := cli.Addr
	if addr == "" {
		addr = fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (db=%s)", addr, dbPath)

	srv := &http.Server{
		Handler: httpapi.Chain(mux,
			httpapi.RequestID,
			httpapi.AccessLog,
			httpapi.Recover,
			httpapi.Cors,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	// Initial load, plus the optional background loop. Failures leave
	// the view in its "no data" state until someone hits refresh.
	if interval := cfg.Source.AutoRefreshSeconds; interval > 0 {
		g.Go(func() error {
			scheduler.Every(ctx, time.Duration(interval)*time.Second, "refresh", func(taskCtx context.Context) error {
				current := cfgVal.Load().(config.Config)
				_, err := refresher.Run(taskCtx, current)
				return err
			})
			return nil
		})
	} else {
		g.Go(func() error {
			runCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
			defer cancel()
			if _, err := refresher.Run(runCtx, cfg); err != nil {
				log.Printf("[startup] initial refresh failed: %v", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
