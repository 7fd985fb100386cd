package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/systems"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

var _ systems.EventListener = (*Manager)(nil)

func TestManagerRecordsEvents(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

		Convey("When gameplay events arrive", func() {
			m.OnLifted(types.PartSkull)
			m.OnPlaced(types.PartSkull, 1)
			m.OnLifted(types.PartLeftArm)
			m.OnMismatch(types.PartLeftArm, types.PartRightArm)
			m.OnReverted(types.PartLeftArm)

			Convey("Then counters reflect them", func() {
				So(testutil.ToFloat64(m.lifts), ShouldEqual, 2)
				So(testutil.ToFloat64(m.placements.WithLabelValues("skull")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.mismatches.WithLabelValues("left-arm", "right-arm")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.reverts), ShouldEqual, 1)
				So(testutil.ToFloat64(m.boardDrops), ShouldEqual, 1)
			})
		})

		Convey("When a game is won with a new record", func() {
			m.OnWin(45000, 45000, true)
			m.OnWin(50000, 45000, false)

			Convey("Then wins and records are counted separately", func() {
				So(testutil.ToFloat64(m.wins), ShouldEqual, 2)
				So(testutil.ToFloat64(m.newRecords), ShouldEqual, 1)
				So(testutil.ToFloat64(m.bestTime), ShouldEqual, 45)
			})
		})

		Convey("When the board is reset", func() {
			m.OnPlaced(types.PartRibcage, 3)
			m.OnReset()

			Convey("Then placed bones go back to zero", func() {
				So(testutil.ToFloat64(m.resets), ShouldEqual, 1)
				So(testutil.ToFloat64(m.boardDrops), ShouldEqual, 0)
			})
		})
	})
}

func TestManagerNamespace(t *testing.T) {
	Convey("Given a manager with a custom namespace", t, func() {
		reg := prometheus.NewRegistry()
		m := NewManager(WithNamespace("bones"), WithPrometheusRegistry(reg))
		m.OnWin(30000, 30000, true)

		Convey("Then every metric carries the namespace", func() {
			families, err := reg.Gather()
			So(err, ShouldBeNil)
			So(families, ShouldNotBeEmpty)
			for _, f := range families {
				So(strings.HasPrefix(f.GetName(), "bones_puzzle_"), ShouldBeTrue)
			}
		})
	})

	Convey("Given an empty namespace", t, func() {
		m := NewManager(WithNamespace(""), WithPrometheusRegistry(prometheus.NewRegistry()))

		Convey("Then the default namespace is kept", func() {
			So(m.namespace, ShouldEqual, "skeleton")
		})
	})
}

func TestRouter(t *testing.T) {
	Convey("Given the metrics router", t, func() {
		m := NewManager()
		m.OnWin(30000, 30000, true)
		srv := httptest.NewServer(NewRouter(m))
		defer srv.Close()

		Convey("Then /healthz answers ok", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})

		Convey("Then /metrics exposes the puzzle metrics", func() {
			resp, err := http.Get(srv.URL + "/metrics")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)
			So(strings.Contains(string(body), "skeleton_puzzle_wins_total 1"), ShouldBeTrue)
		})
	})
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, "127.0.0.1:0", NewManager())
	}()
	cancel()

	if err := <-done; err != nil {
		t.Fatalf("Serve returned %v", err)
	}
}
