package service_test

import (
	"context"
	"testing"
	"time"

	service "github.com/managementsnbllc-hub/eventmap-toronto/internal/app"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/geo"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
	"github.com/managementsnbllc-hub/eventmap-toronto/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

func ptr(v float64) *float64 { return &v }

func seedEvents() []model.Event {
	now := time.Now()
	mk := func(id string, startsIn time.Duration, cat model.Category) model.Event {
		return model.Event{
			ID:       id,
			Title:    id,
			Category: cat,
			Mode:     model.ModeInPerson,
			StartsAt: now.Add(startsIn),
			EndsAt:   now.Add(startsIn + 2*time.Hour),
		}
	}
	soon := mk("soon", time.Hour, model.CategoryMusic)
	later := mk("later", 3*time.Hour, model.CategoryFood)
	nextMonth := mk("next-month", 40*24*time.Hour, model.CategoryMusic)
	return []model.Event{soon, later, nextMonth}
}

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service seeded with events", t, func() {
		svc := service.New(service.WithSeedEvents(seedEvents()))

		Convey("When starting", func() {
			So(svc.Start(ctx), ShouldBeNil)

			Convey("Then the store holds the seed", func() {
				So(svc.Size(ctx), ShouldEqual, 3)
			})

			Convey("Then starting again is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
				So(svc.Size(ctx), ShouldEqual, 3)
			})

			Convey("Then stats reflect the store", func() {
				stats := svc.GetStats()
				So(stats["totalEvents"], ShouldEqual, 3)
				So(stats["started"], ShouldBeTrue)
			})
		})
	})
}

func TestServiceQuery(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service", t, func() {
		svc := service.New(service.WithSeedEvents(seedEvents()))
		So(svc.Start(ctx), ShouldBeNil)

		Convey("When querying with a custom range covering everything", func() {
			f := model.DefaultFilters()
			f.TimeRange = model.RangeCustom
			end := time.Now().AddDate(0, 3, 0)
			f.CustomDateEnd = &end
			f.SortBy = model.SortDate
			res := svc.Query(ctx, f, geo.Point{})

			Convey("Then all events come back soonest first", func() {
				So(res.Total, ShouldEqual, 3)
				So(res.Events[0].ID, ShouldEqual, "soon")
				So(res.Events[2].ID, ShouldEqual, "next-month")
			})

			Convey("Then the resolved window accompanies the result", func() {
				So(res.Window.End.After(res.Window.Start), ShouldBeTrue)
			})
		})

		Convey("When querying with the default this-week range", func() {
			res := svc.Query(ctx, model.DefaultFilters(), geo.Point{})

			Convey("Then the far-future event is filtered out", func() {
				for _, e := range res.Events {
					So(e.ID, ShouldNotEqual, "next-month")
				}
			})

			Convey("Then no filters count as active", func() {
				So(res.ActiveFilters, ShouldEqual, 0)
				So(res.Summary, ShouldBeEmpty)
			})
		})

		Convey("When a category restriction is active", func() {
			f := model.DefaultFilters()
			f.Categories = []model.Category{model.CategoryFood}
			res := svc.Query(ctx, f, geo.Point{})

			Convey("Then only food events return, with count and summary set", func() {
				for _, e := range res.Events {
					So(e.Category, ShouldEqual, model.CategoryFood)
				}
				So(res.ActiveFilters, ShouldEqual, 1)
				So(res.Summary, ShouldEqual, "1 category")
			})
		})
	})
}

func TestServiceMaxResults(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with a result cap of 1", t, func() {
		svc := service.New(
			service.WithSeedEvents(seedEvents()),
			service.WithMaxResults(1),
		)
		So(svc.Start(ctx), ShouldBeNil)

		Convey("When a query matches more than the cap", func() {
			f := model.DefaultFilters()
			f.TimeRange = model.RangeCustom
			end := time.Now().AddDate(0, 3, 0)
			f.CustomDateEnd = &end
			res := svc.Query(ctx, f, geo.Point{})

			Convey("Then the slice is truncated but Total keeps the match count", func() {
				So(len(res.Events), ShouldEqual, 1)
				So(res.Total, ShouldBeGreaterThanOrEqualTo, 2)
			})
		})
	})
}

func TestServiceIngestAndEngagement(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started empty service", t, func() {
		svc := service.New()
		So(svc.Start(ctx), ShouldBeNil)

		Convey("When ingesting an event without an id", func() {
			e, err := svc.Ingest(ctx, model.Event{
				Title:    "Pop-up Show",
				Category: model.CategoryMusic,
				Mode:     model.ModeInPerson,
				StartsAt: time.Now().Add(time.Hour),
				EndsAt:   time.Now().Add(2 * time.Hour),
			})

			Convey("Then an id is assigned and the event is stored", func() {
				So(err, ShouldBeNil)
				So(e.ID, ShouldNotBeEmpty)
				So(svc.Size(ctx), ShouldEqual, 1)
			})

			Convey("And recording engagement bumps the counters", func() {
				saved, err := svc.Save(ctx, e.ID)
				So(err, ShouldBeNil)
				So(saved.SaveCount, ShouldEqual, 1)

				shared, err := svc.Share(ctx, e.ID)
				So(err, ShouldBeNil)
				So(shared.ShareCount, ShouldEqual, 1)
			})
		})
	})
}

func TestServiceReference(t *testing.T) {
	Convey("Given reference configuration", t, func() {
		Convey("When none is supplied", func() {
			svc := service.New()

			Convey("Then the Toronto default applies", func() {
				So(svc.Reference(), ShouldResemble, geo.DefaultReference)
			})
		})

		Convey("When a custom reference is supplied", func() {
			ref := geo.Point{Latitude: 45.5019, Longitude: -73.5674}
			svc := service.New(service.WithReference(ref))

			So(svc.Reference(), ShouldResemble, ref)
		})
	})
}
