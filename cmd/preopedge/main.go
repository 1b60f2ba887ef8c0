package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"preopedge/airtable"
	"preopedge/alerts"
	"preopedge/config"
	"preopedge/events"
	"preopedge/form"
	"preopedge/logger"
	"preopedge/offline"
	"preopedge/store"
	"preopedge/www"
)

func main() {
	configPath := flag.String("config", "preopedge.yaml", "path to config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Web.Port = *port
	}
	if *debug {
		cfg.LogLevel = "debug"
	}

	logger.Init(cfg.LogLevel, cfg.Environment)
	log := logger.Get()

	// Audit log database
	db, err := store.Open(&cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	log.Infof("audit log database open (driver=%s)", db.Driver())
	defer db.Close()

	bus := events.NewBus()

	// Durable pending queue
	queue := offline.NewStore(cfg.QueuePath, bus, log)
	if n := queue.Len(); n > 0 {
		log.Infof("%d pending submissions loaded from %s", n, cfg.QueuePath)
	}

	// Connectivity: one startup probe, then transition signals only
	online := offline.Probe(context.Background(), cfg.Connectivity.ProbeURL, cfg.Connectivity.ProbeTimeout)
	status := offline.NewMonitor(online, bus)
	log.Infof("startup reachability: online=%v", online)

	// Remote submission client
	remote := airtable.NewClient(&cfg.Airtable)
	if remote.IsConfigured() {
		log.Infof("Airtable configured: table=%q", remote.TableName())
	} else {
		log.Warn("Airtable credentials missing, running in demo mode")
	}

	// Maintenance alerts (optional)
	alertClient := alerts.NewClient(&cfg.Alerts)
	defer alertClient.Close()
	if alertClient.Enabled() {
		if err := alertClient.Connect(); err != nil {
			log.Warnf("alerts connect: %v (alerts disabled until broker is reachable)", err)
		}
		alerts.NewNotifier(alertClient, cfg.SiteID, cfg.Alerts.Topic, log).Register(bus)
	}

	// Every submit outcome lands in the audit log
	bus.SubscribeTypes(func(evt events.Event) {
		res, ok := evt.Payload.(events.SubmissionResultEvent)
		if !ok {
			return
		}
		if err := db.AppendResult(res); err != nil {
			log.Errorf("append submission log: %v", err)
		}
	}, events.TypeSubmissionResult)

	ctrl := form.NewController(queue, status, remote, bus)
	syncer := offline.NewSyncer(queue, remote, log)

	router, stopWeb := www.NewRouter(www.Deps{
		Controller: ctrl,
		Queue:      queue,
		Status:     status,
		Syncer:     syncer,
		Remote:     remote,
		DB:         db,
		Bus:        bus,
		Log:        log,
	})
	defer stopWeb()

	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		log.Infof("Pre-Op Checklist listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("Shutting down...")

	// Stop SSE connections first so long-lived streams close
	stopWeb()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("http server shutdown: %v", err)
	}
}
