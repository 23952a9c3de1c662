package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hirewire/fitrank/internal/config"
)

func TestLoad(t *testing.T) {
	Convey("Given no configuration sources", t, func() {
		cfg, err := config.Load()

		Convey("Then the defaults apply", func() {
			So(err, ShouldBeNil)
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.JudgeEnabled, ShouldBeFalse)
			So(cfg.GeminiModel, ShouldEqual, "gemini-2.5-flash")
			So(cfg.JudgeTimeoutMS, ShouldEqual, 15_000)
			So(cfg.AboveThreshold, ShouldEqual, 75)
			So(cfg.RecencyYears, ShouldEqual, 0)
			So(cfg.ScoringWidth, ShouldBeGreaterThan, 0)
		})
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FITRANK_LOG_LEVEL", "debug")
	t.Setenv("FITRANK_ABOVE_THRESHOLD", "80")
	t.Setenv("FITRANK_RECENCY_YEARS", "2")

	Convey("Given FITRANK_ environment variables", t, func() {
		cfg, err := config.Load()

		Convey("Then the env values override the defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.AboveThreshold, ShouldEqual, 80)
			So(cfg.RecencyYears, ShouldEqual, 2)
		})
	})
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fitrank.yaml")
	writeFile(t, path, "log_level: warn\nscoring_width: 6\n")

	t.Setenv("FITRANK_CONFIG", path)
	t.Setenv("FITRANK_SCORING_WIDTH", "3")

	Convey("Given a YAML file and an overlapping env var", t, func() {
		cfg, err := config.Load()

		Convey("Then the file applies and env wins the overlap", func() {
			So(err, ShouldBeNil)
			So(cfg.LogLevel, ShouldEqual, "warn")
			So(cfg.ScoringWidth, ShouldEqual, 3)
		})
	})

	Convey("Given a missing config file", t, func() {
		t.Setenv("FITRANK_CONFIG", filepath.Join(dir, "nope.yaml"))

		_, err := config.Load()

		So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
	})
}

func TestValidation(t *testing.T) {
	Convey("Given invalid settings", t, func() {
		Convey("When the threshold is out of range", func() {
			t.Setenv("FITRANK_ABOVE_THRESHOLD", "140")

			_, err := config.Load()

			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("When the recency window exceeds five years", func() {
			t.Setenv("FITRANK_RECENCY_YEARS", "9")

			_, err := config.Load()

			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("When the judge is enabled without an API key", func() {
			t.Setenv("FITRANK_JUDGE_ENABLED", "true")

			_, err := config.Load()

			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
