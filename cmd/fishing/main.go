package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"CozyFishing/internal/config"
	"CozyFishing/internal/engine"
	"CozyFishing/internal/game"
	"CozyFishing/internal/model"
	"CozyFishing/internal/notifier"
	"CozyFishing/internal/progress"
	"CozyFishing/internal/recorder"
	"CozyFishing/internal/scheduler"

	"github.com/mattn/go-isatty"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CozyFishing starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init progression store
	store := progress.NewStore(cfg.Save.StateFile)
	log.Printf("[INFO] save file: %s (%d coins)", store.FilePath(), store.Coins())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
			if runs, coins, err := sr.Totals(); err == nil {
				log.Printf("[INFO] history: %d runs, %d coins earned", runs, coins)
			}
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Event fan-out: websocket clients, plus the terminal when attached to one
	hub := notifier.NewHub()
	sinks := []model.Sink{hub}
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if interactive {
		sinks = append(sinks, model.SinkFunc(func(ev model.Event) {
			if ev.Type != model.EventCastStarted {
				fmt.Println(notifier.FormatEvent(ev))
			}
		}))
	}

	ctl := game.New(store, game.Options{
		Tuning: engine.Tuning{
			TickMillis:    cfg.Game.TickMillis,
			ReelDelay:     cfg.Game.ReelDelayMillis,
			ShuffleChance: cfg.ShuffleChance(),
			CutPoints:     cfg.Game.RarityCutPoints,
		},
		Seed:     cfg.Game.Seed,
		Recorder: rec,
		Sinks:    sinks,
	})

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loopDone := make(chan struct{})
	go func() {
		ctl.Run(ctx)
		close(loopDone)
	}()

	// Init scheduler
	sched := scheduler.NewScheduler(store, cfg.Save.BackupDir, cfg.Save.KeepBackups)
	sched.Notify = hub.Notice
	if err := sched.RegisterAll(cfg.Schedule.AutosaveCron, cfg.Schedule.BackupCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()

	// UI bridge
	mux := http.NewServeMux()
	mux.Handle("/ws", hub.Handler(ctl))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "ok %d clients\n", hub.Clients())
	})
	srv := &http.Server{Addr: cfg.Server.ListenAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[ERROR] http server: %v", err)
		}
	}()
	log.Printf("[INFO] websocket listening on ws://%s/ws", cfg.Server.ListenAddr)

	// Terminal commands
	if interactive {
		go func() {
			sc := bufio.NewScanner(os.Stdin)
			fmt.Println("Type 'help' for commands.")
			for sc.Scan() {
				if reply := ctl.HandleCommand(sc.Text()); reply != "" {
					fmt.Println(reply)
				}
			}
		}()
	}

	log.Println("[INFO] CozyFishing is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] http shutdown: %v", err)
	}
	sched.Stop()
	cancel()
	<-loopDone
	if err := sched.SaveNow(); err != nil {
		log.Printf("[ERROR] final save: %v", err)
	}
	log.Println("[INFO] CozyFishing stopped")
}
