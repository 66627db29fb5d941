// Command marketsim runs the free-agent market simulation: a persistent,
// seeded weekly economy of released players, NPC clubs, and rival scouts.
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/talgya/touchline/internal/config"
	"github.com/talgya/touchline/internal/engine"
	"github.com/talgya/touchline/internal/persistence"
	"github.com/talgya/touchline/internal/rivals"
	"github.com/talgya/touchline/internal/rng"
	"github.com/talgya/touchline/internal/worldgen"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		slog.Info("no seed configured, using clock", "seed", seed)
	}

	// ── Database ──────────────────────────────────────────────────────
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		os.MkdirAll(dir, 0755)
	}
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Load or Generate World ────────────────────────────────────────
	state, restored, err := db.LoadSnapshot()
	if err != nil {
		slog.Error("failed to load snapshot", "error", err)
		os.Exit(1)
	}
	if restored {
		slog.Info("snapshot restored",
			"season", state.Season,
			"week", state.Week,
			"players", len(state.Players),
			"pool", len(state.Pool.Agents),
			"rivals", len(state.Rivals),
		)
	} else {
		genCfg := worldgen.GenConfig{
			Seed:           seed,
			Countries:      cfg.Countries,
			ClubsPerLeague: cfg.ClubsPerLeague,
			SquadSize:      cfg.SquadSize,
			Contacts:       cfg.Contacts,
			Rivals:         cfg.Rivals,
		}
		slog.Info("generating world...", "seed", seed)
		state = worldgen.Generate(genCfg)
		slog.Info("world generated",
			"leagues", len(state.Leagues),
			"clubs", len(state.Clubs),
			"players", len(state.Players),
			"rivals", len(state.Rivals),
		)
	}

	// One RNG instance threads through every system; the weekly draw
	// order is the determinism contract. Restored runs re-seed from the
	// snapshot's week: every resume from the same snapshot replays
	// identically, though the stream differs from an uninterrupted run.
	r := rng.New(state.Seed + int64(state.AbsoluteWeek()))

	// ── Weekly Loop ───────────────────────────────────────────────────
	for i := 0; i < cfg.Weeks; i++ {
		next, report := engine.AdvanceWeek(&state, r)
		state = next

		for _, msg := range report.Messages {
			slog.Info("inbox",
				"season", msg.Season,
				"week", msg.Week,
				"kind", msg.Kind,
				"title", msg.Title,
			)
		}
		for _, rv := range state.Rivals {
			if rv.IsNemesis && len(rv.CompetingForPlayers) > 0 {
				slog.Debug("nemesis competition",
					"rival", rv.Name,
					"threat", rivals.ThreatLevel(rv, state.Scout).String(),
					"shared_targets", len(rv.CompetingForPlayers),
				)
			}
		}

		slog.Info("week processed",
			"season", report.Season,
			"week", report.Week,
			"pool", state.Pool.AvailableCount(),
			"npc_signings", len(report.NPCSignings),
			"rival_signings", len(report.RivalSignings),
			"discoveries", len(report.NewDiscoveries),
		)

		if (i+1)%cfg.SaveEvery == 0 {
			if err := db.SaveSnapshot(&state); err != nil {
				slog.Error("failed to save snapshot", "error", err)
				os.Exit(1)
			}
			slog.Debug("snapshot saved", "season", state.Season, "week", state.Week)
		}
	}

	if err := db.SaveSnapshot(&state); err != nil {
		slog.Error("failed to save final snapshot", "error", err)
		os.Exit(1)
	}
	slog.Info("simulation finished",
		"season", state.Season,
		"week", state.Week,
		"released_this_season", state.Pool.TotalReleasedThisSeason,
		"signed_this_season", state.Pool.TotalSignedThisSeason,
	)
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
