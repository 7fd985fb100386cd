package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
)

func TestLoadConfig(t *testing.T) {
	convey.Convey("Given the configuration loader", t, func() {
		// 每条路径都从干净的环境开始
		for _, key := range []string{EnvConfigPath, "SKELETON_LOG_LEVEL", "SKELETON_APP_NAME", "SKELETON_REFRESH_INTERVAL_MS", "SKELETON_METRICS_NAMESPACE"} {
			t.Setenv(key, "")
			_ = os.Unsetenv(key)
		}

		convey.Convey("When nothing is configured", func() {
			cfg, err := Load("")

			convey.Convey("Then defaults are used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.AppName, convey.ShouldEqual, "skeleton_builder")
				convey.So(cfg.Sound, convey.ShouldBeTrue)
				convey.So(cfg.RefreshInterval(), convey.ShouldEqual, 100*time.Millisecond)
				convey.So(cfg.WindowWidth, convey.ShouldEqual, ScreenWidth)
				convey.So(cfg.MetricsNamespace, convey.ShouldEqual, "skeleton")
			})
		})

		convey.Convey("When a YAML file is given", func() {
			path := filepath.Join(t.TempDir(), "skeleton.yaml")
			data := "log_level: debug\nsound: false\nrefresh_interval_ms: 250\nmetrics_addr: \":9090\"\n"
			convey.So(os.WriteFile(path, []byte(data), 0o600), convey.ShouldBeNil)

			cfg, err := Load(path)

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.Sound, convey.ShouldBeFalse)
				convey.So(cfg.RefreshIntervalMS, convey.ShouldEqual, 250)
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":9090")
				convey.So(cfg.AppName, convey.ShouldEqual, "skeleton_builder")
			})

			convey.Convey("Then environment variables override the file", func() {
				t.Setenv("SKELETON_LOG_LEVEL", "warn")
				t.Setenv("SKELETON_APP_NAME", "bones_test")

				cfg, err := Load(path)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.AppName, convey.ShouldEqual, "bones_test")
				convey.So(cfg.RefreshIntervalMS, convey.ShouldEqual, 250)
			})
		})

		convey.Convey("When the config path comes from the environment", func() {
			path := filepath.Join(t.TempDir(), "env.yaml")
			convey.So(os.WriteFile(path, []byte("window_width: 1024\n"), 0o600), convey.ShouldBeNil)
			t.Setenv(EnvConfigPath, path)

			cfg, err := Load("")
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.WindowWidth, convey.ShouldEqual, 1024)
		})

		convey.Convey("When the metrics namespace comes from the environment", func() {
			t.Setenv("SKELETON_METRICS_NAMESPACE", "bones")
			cfg, err := Load("")

			convey.Convey("Then it overrides the default", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.MetricsNamespace, convey.ShouldEqual, "bones")
			})
		})

		convey.Convey("When the metrics namespace is not a metric name", func() {
			t.Setenv("SKELETON_METRICS_NAMESPACE", "bad-name")
			_, err := Load("")

			convey.Convey("Then validation fails", func() {
				convey.So(errors.Is(err, ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the file does not exist", func() {
			_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

			convey.Convey("Then a load error is returned", func() {
				convey.So(errors.Is(err, ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a value is invalid", func() {
			t.Setenv("SKELETON_REFRESH_INTERVAL_MS", "0")
			_, err := Load("")

			convey.Convey("Then validation fails", func() {
				convey.So(errors.Is(err, ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}
