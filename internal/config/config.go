// Package config defines process configuration and its loading hooks.
// Defaults are layered under an optional YAML file and TOUCHLINE_-prefixed
// environment variables.
package config

// Config contains the simulation process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Seed drives the deterministic RNG. 0 means derive one from the clock.
	Seed int64 `koanf:"seed"`

	// Weeks is how many weekly ticks to simulate before exiting.
	Weeks int `koanf:"weeks"`

	// DBPath is the SQLite snapshot file.
	DBPath string `koanf:"db_path"`

	// SaveEvery controls how often (in weeks) the snapshot is persisted.
	SaveEvery int `koanf:"save_every"`

	// Countries, ClubsPerLeague, SquadSize, Contacts, and Rivals shape the
	// generated world when no snapshot exists yet.
	Countries      []string `koanf:"countries"`
	ClubsPerLeague int      `koanf:"clubs_per_league"`
	SquadSize      int      `koanf:"squad_size"`
	Contacts       int      `koanf:"contacts"`
	Rivals         int      `koanf:"rivals"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Seed:           42,
		Weeks:          defaultWeeks,
		DBPath:         "data/touchline.db",
		SaveEvery:      4,
		Countries:      []string{"ENG", "ESP", "ITA", "GER", "FRA", "BRA", "ARG", "NED"},
		ClubsPerLeague: 12,
		SquadSize:      20,
		Contacts:       14,
		Rivals:         6,
	}
}

// defaultWeeks is two full seasons.
const defaultWeeks = 76
