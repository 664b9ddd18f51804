package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/starter_optimizer/cache"
	"github.com/mww/starter_optimizer/config"
	"github.com/mww/starter_optimizer/controller"
	"github.com/mww/starter_optimizer/db"
	"github.com/mww/starter_optimizer/logger"
	"github.com/mww/starter_optimizer/model"
	"github.com/mww/starter_optimizer/platforms/espn"
	"github.com/mww/starter_optimizer/platforms/fetch"
	"github.com/mww/starter_optimizer/platforms/sleeper"
	"github.com/mww/starter_optimizer/web"
	"github.com/sirupsen/logrus"
)

func main() {
	clock := clock.New()

	cfg, err := config.Load(clock)
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}
	log := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration:\n%v", err)
	}

	ctx := context.Background()

	opts := fetch.Options{
		Timeout:          cfg.ExternalAPITimeout,
		BreakerThreshold: cfg.CircuitBreakerThreshold,
		CacheTTL:         cfg.CacheTTL,
		Logger:           log,
	}
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("cannot connect to redis: %v", err)
		}
		defer redisCache.Close()
		opts.Cache = redisCache
	} else {
		opts.Cache = cache.NewMemory(clock)
	}

	// Only the configured platform needs a client, but ESPN is also set up
	// whenever its cookies are present.
	var espnClient espn.Client
	if cfg.Platform == model.PlatformESPN || (cfg.ESPNS2 != "" && cfg.ESPNSWID != "") {
		espnClient, err = espn.New(cfg.ESPNS2, cfg.ESPNSWID, opts)
		if err != nil {
			log.Fatalf("error creating espn client: %v", err)
		}
	}

	sleeperClient, err := sleeper.New(cfg.SleeperScoring, opts)
	if err != nil {
		log.Fatalf("error creating sleeper client: %v", err)
	}

	var store db.DB
	if cfg.PostgresConnStr != "" {
		store, err = db.New(ctx, cfg.PostgresConnStr, clock)
	} else {
		log.WithField("path", cfg.LogCSVPath).Info("no postgres connection configured, using the csv weekly log")
		store, err = db.NewCSV(cfg.LogCSVPath, clock)
	}
	if err != nil {
		log.Fatalf("cannot open the weekly log: %v", err)
	}
	defer store.Close()

	ctrl, err := controller.New(clock, store, espnClient, sleeperClient, cfg.Slots())
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(cfg.Port, ctrl, cfg.League())
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Catch ctrl-c and SIGTERM and shut everything down properly.
	sigChannel := make(chan os.Signal, 2)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Error("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	if cfg.WeeklyLogSchedule != "" {
		wg.Add(1)
		go ctrl.RunWeeklyLog(cfg.WeeklyLogSchedule, controller.LineupRequest{League: cfg.League()}, shutdown, wg)
	}

	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Info("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
