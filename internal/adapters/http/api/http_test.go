package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	api "github.com/managementsnbllc-hub/eventmap-toronto/internal/adapters/http/api"
	service "github.com/managementsnbllc-hub/eventmap-toronto/internal/app"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
	"github.com/managementsnbllc-hub/eventmap-toronto/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

func ptr(v float64) *float64 { return &v }

func newTestServer(t *testing.T, seed []model.Event) *httptest.Server {
	t.Helper()
	svc := service.New(service.WithSeedEvents(seed))
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(context.Background(), mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func testEvents() []model.Event {
	now := time.Now()
	return []model.Event{
		{
			ID: "jazz", Title: "Jazz Night at The Rex",
			Category: model.CategoryMusic, Mode: model.ModeInPerson,
			StartsAt: now.Add(time.Hour), EndsAt: now.Add(4 * time.Hour),
			Latitude: ptr(43.6503), Longitude: ptr(-79.3883),
			PriceText: "$15",
		},
		{
			ID: "yoga", Title: "Sunrise Yoga",
			Category: model.CategoryWellness, Mode: model.ModeOnline,
			StartsAt: now.Add(2 * time.Hour), EndsAt: now.Add(3 * time.Hour),
			PriceText: "Free",
		},
	}
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

type discoverPayload struct {
	Events []struct {
		ID         string   `json:"id"`
		DistanceKm *float64 `json:"distance_km"`
		SmartScore float64  `json:"smart_score"`
	} `json:"events"`
	Total         int    `json:"total"`
	ActiveFilters int    `json:"active_filters"`
	Summary       string `json:"summary"`
}

func TestDiscoverEndpoint(t *testing.T) {
	ts := newTestServer(t, testEvents())

	Convey("Given the discovery endpoint", t, func() {
		Convey("When querying with a wide custom range", func() {
			var got discoverPayload
			url := fmt.Sprintf("%s/events?time_range=custom&to=%s",
				ts.URL, time.Now().AddDate(0, 1, 0).Format("2006-01-02"))
			status := getJSON(t, url, &got)

			Convey("Then both events return with derived fields", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(got.Total, ShouldEqual, 2)
				for _, e := range got.Events {
					So(e.SmartScore, ShouldBeGreaterThan, 0)
					if e.ID == "jazz" {
						So(e.DistanceKm, ShouldNotBeNil)
					}
					if e.ID == "yoga" {
						So(e.DistanceKm, ShouldBeNil)
					}
				}
			})
		})

		Convey("When filtering by price", func() {
			var got discoverPayload
			url := fmt.Sprintf("%s/events?time_range=custom&to=%s&price=free",
				ts.URL, time.Now().AddDate(0, 1, 0).Format("2006-01-02"))
			status := getJSON(t, url, &got)

			Convey("Then only the free event survives and the summary reads Free", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(got.Total, ShouldEqual, 1)
				So(got.Events[0].ID, ShouldEqual, "yoga")
				So(got.ActiveFilters, ShouldEqual, 1)
				So(got.Summary, ShouldEqual, "Free")
			})
		})

		Convey("When the max_km parameter is malformed", func() {
			status := getJSON(t, ts.URL+"/events?max_km=close", nil)

			So(status, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the from date is malformed", func() {
			status := getJSON(t, ts.URL+"/events?from=yesterdayish", nil)

			So(status, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestEventEndpoints(t *testing.T) {
	ts := newTestServer(t, testEvents())

	Convey("Given the single-event endpoints", t, func() {
		Convey("When fetching a known event", func() {
			var got struct {
				ID         string   `json:"id"`
				DistanceKm *float64 `json:"distance_km"`
			}
			status := getJSON(t, ts.URL+"/events/jazz", &got)

			So(status, ShouldEqual, http.StatusOK)
			So(got.ID, ShouldEqual, "jazz")
			So(got.DistanceKm, ShouldNotBeNil)
		})

		Convey("When fetching an unknown event", func() {
			status := getJSON(t, ts.URL+"/events/nope", nil)

			So(status, ShouldEqual, http.StatusNotFound)
		})

		Convey("When saving and sharing an event", func() {
			resp, err := http.Post(ts.URL+"/events/jazz/save", "application/json", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			var got struct {
				SaveCount int `json:"save_count"`
			}
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(json.NewDecoder(resp.Body).Decode(&got), ShouldBeNil)
			So(got.SaveCount, ShouldEqual, 1)
		})

		Convey("When engaging an unknown event", func() {
			resp, err := http.Post(ts.URL+"/events/nope/share", "application/json", nil)
			So(err, ShouldBeNil)
			resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestIngestEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)

	Convey("Given the ingest endpoint", t, func() {
		Convey("When posting a valid event", func() {
			body, _ := json.Marshal(map[string]any{
				"title":      "Pop-up Show",
				"category":   "music",
				"event_mode": "in_person",
				"starts_at":  time.Now().Add(time.Hour).Format(time.RFC3339),
				"ends_at":    time.Now().Add(3 * time.Hour).Format(time.RFC3339),
			})
			resp, err := http.Post(ts.URL+"/events", "application/json", bytes.NewReader(body))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			var got struct {
				ID       string `json:"id"`
				Category string `json:"category"`
			}
			So(resp.StatusCode, ShouldEqual, http.StatusCreated)
			So(json.NewDecoder(resp.Body).Decode(&got), ShouldBeNil)

			Convey("Then an id is assigned", func() {
				So(got.ID, ShouldNotBeEmpty)
			})
		})

		Convey("When posting an unknown category", func() {
			body, _ := json.Marshal(map[string]any{
				"title":      "Mystery Meetup",
				"category":   "unicorns",
				"event_mode": "in_person",
				"starts_at":  time.Now().Add(time.Hour).Format(time.RFC3339),
				"ends_at":    time.Now().Add(3 * time.Hour).Format(time.RFC3339),
			})
			resp, err := http.Post(ts.URL+"/events", "application/json", bytes.NewReader(body))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			var got struct {
				Category string `json:"category"`
			}
			So(resp.StatusCode, ShouldEqual, http.StatusCreated)
			So(json.NewDecoder(resp.Body).Decode(&got), ShouldBeNil)

			Convey("Then it collapses to other", func() {
				So(got.Category, ShouldEqual, "other")
			})
		})

		Convey("When posting an event that ends before it starts", func() {
			body, _ := json.Marshal(map[string]any{
				"title":     "Backwards",
				"starts_at": time.Now().Add(3 * time.Hour).Format(time.RFC3339),
				"ends_at":   time.Now().Add(time.Hour).Format(time.RFC3339),
			})
			resp, err := http.Post(ts.URL+"/events", "application/json", bytes.NewReader(body))
			So(err, ShouldBeNil)
			resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When posting garbage", func() {
			resp, err := http.Post(ts.URL+"/events", "application/json", bytes.NewReader([]byte("{")))
			So(err, ShouldBeNil)
			resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestMetaEndpoints(t *testing.T) {
	ts := newTestServer(t, testEvents())

	Convey("Given the meta endpoints", t, func() {
		Convey("When hitting healthz", func() {
			var got map[string]string
			status := getJSON(t, ts.URL+"/healthz", &got)

			So(status, ShouldEqual, http.StatusOK)
			So(got["status"], ShouldEqual, "ok")
		})

		Convey("When hitting stats", func() {
			var got map[string]any
			status := getJSON(t, ts.URL+"/stats", &got)

			So(status, ShouldEqual, http.StatusOK)
			So(got["totalEvents"], ShouldEqual, float64(2))
		})

		Convey("When hitting filters", func() {
			var got struct {
				Categories  []string `json:"categories"`
				SortOptions []struct {
					Key string `json:"key"`
				} `json:"sort_options"`
			}
			status := getJSON(t, ts.URL+"/filters", &got)

			So(status, ShouldEqual, http.StatusOK)
			So(len(got.Categories), ShouldEqual, 9)
			So(got.SortOptions[0].Key, ShouldEqual, "smart")
		})

		Convey("When hitting metrics", func() {
			resp, err := http.Get(ts.URL + "/metrics")
			So(err, ShouldBeNil)
			resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})
	})
}
