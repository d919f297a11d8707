package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"company_analyzer/internal/platform/config"
)

var configEnvVars = []string{
	"ANALYZER_CONFIG",
	"ANALYZER_ADDR",
	"ANALYZER_LOG_LEVEL",
	"ANALYZER_SESSION_TTL",
	"ANALYZER_HISTORY_LIMIT",
	"ANALYZER_ANALYZE_RPM",
	"ANALYZER_UPSTREAM_TIMEOUT",
	"ANALYZER_REDIS_ADDR",
	"OPENROUTER_API_KEY",
	"OPENROUTER_BASE_URL",
	"DOTENV_ONLY_VALUE",
}

func clearConfigEnvVars() {
	for _, k := range configEnvVars {
		_ = os.Unsetenv(k)
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load()

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.SessionTTL, convey.ShouldEqual, 24*time.Hour)
				convey.So(cfg.HistoryLimit, convey.ShouldEqual, 10)
				convey.So(cfg.AnalyzeRPM, convey.ShouldEqual, 0)
				convey.So(cfg.UpstreamTimeout, convey.ShouldEqual, time.Duration(0))
				convey.So(cfg.OpenRouterAPIKey, convey.ShouldBeEmpty)
				convey.So(cfg.OpenRouterBaseURL, convey.ShouldEqual, "https://openrouter.ai/api/v1")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("ANALYZER_ADDR", ":9090")
			_ = os.Setenv("ANALYZER_LOG_LEVEL", "debug")
			_ = os.Setenv("ANALYZER_SESSION_TTL", "2h")
			_ = os.Setenv("ANALYZER_HISTORY_LIMIT", "5")
			_ = os.Setenv("ANALYZER_ANALYZE_RPM", "30")
			_ = os.Setenv("ANALYZER_UPSTREAM_TIMEOUT", "45s")
			_ = os.Setenv("ANALYZER_REDIS_ADDR", "localhost:6379")
			_ = os.Setenv("OPENROUTER_API_KEY", "sk-or-test")
			_ = os.Setenv("OPENROUTER_BASE_URL", "http://proxy.local/v1")

			cfg, err := config.Load()

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.SessionTTL, convey.ShouldEqual, 2*time.Hour)
				convey.So(cfg.HistoryLimit, convey.ShouldEqual, 5)
				convey.So(cfg.AnalyzeRPM, convey.ShouldEqual, 30)
				convey.So(cfg.UpstreamTimeout, convey.ShouldEqual, 45*time.Second)
				convey.So(cfg.RedisAddr, convey.ShouldEqual, "localhost:6379")
				convey.So(cfg.OpenRouterAPIKey, convey.ShouldEqual, "sk-or-test")
				convey.So(cfg.OpenRouterBaseURL, convey.ShouldEqual, "http://proxy.local/v1")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			path := writeTempFile(t, "analyzer.yaml", `
addr: ":7070"
history_limit: 20
completion_cache_ttl: 10m
`)
			_ = os.Setenv("ANALYZER_CONFIG", path)

			cfg, err := config.Load()

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.HistoryLimit, convey.ShouldEqual, 20)
				convey.So(cfg.CompletionCacheTTL, convey.ShouldEqual, 10*time.Minute)
			})

			convey.Convey("And env vars take precedence over the file", func() {
				_ = os.Setenv("ANALYZER_HISTORY_LIMIT", "3")

				cfg, err := config.Load()

				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.HistoryLimit, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("ANALYZER_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			_, err := config.Load()

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When a value fails validation", func() {
			_ = os.Setenv("ANALYZER_HISTORY_LIMIT", "0")

			_, err := config.Load()

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "history_limit")
			})
		})
	})
}

func TestLoadDotEnv(t *testing.T) {
	convey.Convey("Given a .env file", t, func() {
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		path := writeTempFile(t, ".env", "OPENROUTER_API_KEY=from-dotenv\nDOTENV_ONLY_VALUE=yes\n")

		convey.Convey("When the variable is not already set", func() {
			err := config.LoadDotEnv(path)

			convey.Convey("Then it is loaded into the environment", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(os.Getenv("OPENROUTER_API_KEY"), convey.ShouldEqual, "from-dotenv")
				convey.So(os.Getenv("DOTENV_ONLY_VALUE"), convey.ShouldEqual, "yes")
			})
		})

		convey.Convey("When the variable is already set", func() {
			_ = os.Setenv("OPENROUTER_API_KEY", "from-env")

			err := config.LoadDotEnv(path)

			convey.Convey("Then the existing value wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(os.Getenv("OPENROUTER_API_KEY"), convey.ShouldEqual, "from-env")
			})
		})

		convey.Convey("When the file does not exist", func() {
			err := config.LoadDotEnv(filepath.Join(t.TempDir(), "nope.env"))

			convey.Convey("Then it is ignored", func() {
				convey.So(err, convey.ShouldBeNil)
			})
		})
	})
}
