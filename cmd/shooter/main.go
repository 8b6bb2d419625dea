package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/starshot/shooter/internal/config"
	"github.com/starshot/shooter/internal/core/event"
	coresys "github.com/starshot/shooter/internal/core/system"
	"github.com/starshot/shooter/internal/data"
	"github.com/starshot/shooter/internal/persist"
	"github.com/starshot/shooter/internal/scripting"
	"github.com/starshot/shooter/internal/snapshot"
	"github.com/starshot/shooter/internal/system"
	"github.com/starshot/shooter/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

var printer = message.NewPrinter(language.English)

func printBanner(name string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m              starshot  v0.1.0             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m        headless asteroid simulation       \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mrun:\033[0m %s\n\n", name)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := printer.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Simulation driver ─────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/shooter.toml"
	if p := os.Getenv("SHOOTER_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Server.Name)

	switch cfg.Debug.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.Debug.ProfilePath), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(cfg.Debug.ProfilePath), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown debug.profile %q", cfg.Debug.Profile)
	}

	// 3. Resolve tuning
	printSection("tuning")
	if cfg.Tuning.Profile != "" {
		table, err := data.LoadTuningTable(cfg.Tuning.ProfileFile)
		if err != nil {
			return fmt.Errorf("load tuning table: %w", err)
		}
		p := table.Get(cfg.Tuning.Profile)
		if p == nil {
			return fmt.Errorf("tuning profile %q not in %s (have %v)", cfg.Tuning.Profile, cfg.Tuning.ProfileFile, table.Names())
		}
		if cfg.Tuning, err = p.Apply(cfg.Tuning); err != nil {
			return fmt.Errorf("apply tuning profile %q: %w", p.Name, err)
		}
		printOK(fmt.Sprintf("profile %s", p.Name))
	} else {
		printOK("profile none (config values)")
	}
	fmt.Println()

	// 4. Optional run history
	var runs *persist.RunRepo
	if cfg.Database.DSN != "" {
		printSection("database")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		db, err := persist.NewDB(ctx, cfg.Database, log)
		if err != nil {
			cancel()
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()
		err = persist.RunMigrations(ctx, db)
		cancel()
		if err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		runs = persist.NewRunRepo(db)
		printOK("PostgreSQL connected, migrations applied")
		fmt.Println()
	}

	// 5. Build the world
	printSection("world")
	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	ws := world.NewState(world.OptionsFromConfig(cfg, rng))
	printStat("asteroids", ws.Asteroids.Len())
	printStat("lives", int(ws.Play.Lives()))
	fmt.Println()

	// 6. Input source
	deps := system.Deps{
		World:  ws,
		Bus:    event.NewBus(),
		Tuning: cfg.Tuning,
		Rand:   rng,
		Log:    log,
	}
	if cfg.Input.Autopilot {
		engine, err := scripting.NewEngine(cfg.Input.ScriptsDir, log)
		if err != nil {
			return fmt.Errorf("init lua engine: %w", err)
		}
		defer engine.Close()
		if engine.HasAutopilot() {
			deps.Pilot = engine
		} else {
			log.Warn("no autopilot script found, ship runs without input", zap.String("dir", cfg.Input.ScriptsDir))
		}
	}

	event.Subscribe(deps.Bus, func(ev event.LifeLost) {
		log.Info("life lost", zap.Uint8("remaining", ev.Remaining), zap.Uint64("tick", ws.Tick()))
	})

	// 7. Create systems and register with runner
	runner := coresys.NewRunner()
	system.RegisterAll(runner, deps)
	if err := runner.Build(); err != nil {
		return fmt.Errorf("build systems: %w", err)
	}
	log.Debug("system order", zap.Strings("systems", runner.Order()))

	var rec *snapshot.Recorder
	if cfg.Debug.RecordPath != "" {
		f, err := os.Create(cfg.Debug.RecordPath)
		if err != nil {
			return fmt.Errorf("create frame record: %w", err)
		}
		defer f.Close()
		bw := bufio.NewWriter(f)
		defer bw.Flush()
		rec = snapshot.NewRecorder(bw)
	}

	// 8. Game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	ticker := time.NewTicker(cfg.Sim.TickRate)
	defer ticker.Stop()

	printSection("running")
	printReady(fmt.Sprintf("game loop started (tick: %s, seed: %d)", cfg.Sim.TickRate, seed))
	fmt.Println()

	started := time.Now()
	reason := loop(runner, ws, rec, cfg, ticker.C, shutdownCh, log)
	ended := time.Now()

	// Deliver the last tick's events so the stats are complete.
	deps.Bus.SwapBuffers()
	deps.Bus.DispatchAll()

	log.Info("run finished",
		zap.String("reason", reason),
		zap.Uint64("ticks", ws.Tick()),
		zap.Duration("elapsed", ended.Sub(started)),
	)
	printSection("summary")
	printStat("ticks", int(ws.Tick()))
	printStat("lasers fired", ws.Stats.LasersFired)
	printStat("asteroids shot", ws.Stats.AsteroidsShot)
	printStat("asteroids rammed", ws.Stats.AsteroidsRammed)
	printStat("lives left", int(ws.Play.Lives()))
	if rec != nil {
		printStat("frames recorded", rec.Frames())
	}
	fmt.Println()

	if runs != nil {
		record := persist.NewRunRecord(uuid.New(), cfg.Tuning.Profile, started, ended, ws)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := runs.Insert(ctx, record); err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		log.Info("run saved", zap.String("id", record.ID.String()))

		if n := cfg.Database.RecentRuns; n > 0 {
			recent, err := runs.Recent(ctx, n)
			if err != nil {
				return fmt.Errorf("load recent runs: %w", err)
			}
			printSection("recent runs")
			for _, r := range recent {
				fmt.Println("  " + formatRun(r))
			}
			fmt.Println()
		}
	}
	return nil
}

// formatRun renders one run history row for the summary.
func formatRun(r persist.RunRecord) string {
	profileName := r.Profile
	if profileName == "" {
		profileName = "-"
	}
	return printer.Sprintf("%s  %s  %d ticks  shot %d  rammed %d  lives %d",
		r.StartedAt.Local().Format("2006-01-02 15:04"), profileName,
		r.Ticks, r.AsteroidsShot, r.AsteroidsRammed, r.FinalLives)
}

// loop ticks until the game is over, the tick limit is reached or a
// shutdown signal arrives. It returns the stop reason.
func loop(runner *coresys.Runner, ws *world.State, rec *snapshot.Recorder, cfg *config.Config, tick <-chan time.Time, shutdown <-chan os.Signal, log *zap.Logger) string {
	for {
		select {
		case <-tick:
			runner.Tick(cfg.Sim.TickRate)
			if rec != nil {
				if err := rec.Record(snapshot.Capture(ws)); err != nil {
					log.Error("frame record failed, recording stopped", zap.Error(err))
					rec = nil
				}
			}
			if ws.Play.GameOver() {
				return "game over"
			}
			if cfg.Sim.MaxTicks > 0 && ws.Tick() >= cfg.Sim.MaxTicks {
				return "tick limit"
			}
		case sig := <-shutdown:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			return "signal"
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
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
