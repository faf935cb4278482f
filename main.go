package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"roomforge/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "roomforge.toml", "path to config file")
	worldID := flag.String("world", "", "id of a saved world to open")
	worldName := flag.String("name", "untitled", "name for a freshly created world")
	ticks := flag.Int("ticks", 0, "run this many ticks then exit (0 = run until interrupted)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	engine, err := NewEngine(cfg, log, *worldID, *worldName)
	if err != nil {
		return err
	}

	dt := 1.0 / float64(cfg.Engine.TickRate)
	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	log.Info("engine running",
		zap.String("world", engine.World().ID),
		zap.Int("tick_rate", cfg.Engine.TickRate))

	ran := 0
	for {
		select {
		case sig := <-sigCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			return engine.Shutdown()
		case <-ticker.C:
			if err := engine.Tick(dt); err != nil {
				log.Error("tick failed", zap.Error(err))
				return engine.Shutdown()
			}
			ran++
			if *ticks > 0 && ran >= *ticks {
				return engine.Shutdown()
			}
		}
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
