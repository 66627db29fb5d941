package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/talgya/touchline/internal/config"
)

// clearEnv strips every TOUCHLINE_ variable for the duration of the test so
// the host environment can't leak into assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "TOUCHLINE_") {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	Convey("Given no file and no environment", t, func() {
		cfg, err := config.Load()
		So(err, ShouldBeNil)

		Convey("Then the defaults apply", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Seed, ShouldEqual, int64(42))
			So(cfg.Weeks, ShouldEqual, 76)
			So(cfg.DBPath, ShouldEqual, "data/touchline.db")
			So(cfg.SaveEvery, ShouldEqual, 4)
			So(len(cfg.Countries), ShouldEqual, 8)
			So(cfg.ClubsPerLeague, ShouldEqual, 12)
			So(cfg.SquadSize, ShouldEqual, 20)
			So(cfg.Rivals, ShouldEqual, 6)
		})
	})
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOUCHLINE_SEED", "99")
	t.Setenv("TOUCHLINE_LOG_LEVEL", "debug")
	t.Setenv("TOUCHLINE_SAVE_EVERY", "10")

	Convey("Given TOUCHLINE_ environment variables", t, func() {
		cfg, err := config.Load()
		So(err, ShouldBeNil)

		Convey("Then they override the defaults", func() {
			So(cfg.Seed, ShouldEqual, int64(99))
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.SaveEvery, ShouldEqual, 10)

			Convey("And untouched keys keep their defaults", func() {
				So(cfg.Weeks, ShouldEqual, 76)
				So(cfg.DBPath, ShouldEqual, "data/touchline.db")
			})
		})
	})
}

func TestFileLayer(t *testing.T) {
	clearEnv(t)

	Convey("Given a YAML config file", t, func() {
		path := filepath.Join(t.TempDir(), "touchline.yaml")
		yaml := "weeks: 10\nlog_level: warn\ndb_path: /tmp/alt.db\n"
		So(os.WriteFile(path, []byte(yaml), 0644), ShouldBeNil)
		t.Setenv("TOUCHLINE_CONFIG", path)

		Convey("Then file values layer over the defaults", func() {
			cfg, err := config.Load()
			So(err, ShouldBeNil)
			So(cfg.Weeks, ShouldEqual, 10)
			So(cfg.LogLevel, ShouldEqual, "warn")
			So(cfg.DBPath, ShouldEqual, "/tmp/alt.db")
			So(cfg.Seed, ShouldEqual, int64(42))
		})

		Convey("Then environment still wins over the file", func() {
			t.Setenv("TOUCHLINE_LOG_LEVEL", "error")
			cfg, err := config.Load()
			So(err, ShouldBeNil)
			So(cfg.LogLevel, ShouldEqual, "error")
			So(cfg.Weeks, ShouldEqual, 10)
		})
	})

	Convey("Given a missing config file", t, func() {
		t.Setenv("TOUCHLINE_CONFIG", "/nonexistent/touchline.yaml")

		Convey("Then Load fails loudly", func() {
			_, err := config.Load()
			So(err, ShouldNotBeNil)
		})
	})
}

func TestValidation(t *testing.T) {
	clearEnv(t)

	Convey("Given out-of-range settings", t, func() {
		Convey("Then non-positive weeks are rejected", func() {
			t.Setenv("TOUCHLINE_WEEKS", "0")
			_, err := config.Load()
			So(err, ShouldNotBeNil)
			os.Unsetenv("TOUCHLINE_WEEKS")
		})

		Convey("Then an empty db path is rejected", func() {
			t.Setenv("TOUCHLINE_DB_PATH", "")
			_, err := config.Load()
			So(err, ShouldNotBeNil)
			os.Unsetenv("TOUCHLINE_DB_PATH")
		})

		Convey("Then a non-positive save interval is rejected", func() {
			t.Setenv("TOUCHLINE_SAVE_EVERY", "-1")
			_, err := config.Load()
			So(err, ShouldNotBeNil)
			os.Unsetenv("TOUCHLINE_SAVE_EVERY")
		})
	})
}
