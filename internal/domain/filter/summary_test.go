package filter_test

import (
	"testing"

	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/filter"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestActiveCount(t *testing.T) {
	Convey("Given filter states", t, func() {
		Convey("When everything is at its default", func() {
			So(filter.ActiveCount(model.DefaultFilters()), ShouldEqual, 0)
		})

		Convey("When one category and the free price filter are set", func() {
			f := model.DefaultFilters()
			f.Categories = []model.Category{model.CategoryMusic}
			f.PriceType = model.PriceFree

			So(filter.ActiveCount(f), ShouldEqual, 2)
		})

		Convey("When every counted dimension is active", func() {
			f := model.DefaultFilters()
			f.Categories = []model.Category{model.CategoryMusic, model.CategoryFood}
			f.EventMode = model.ModeOnline
			f.PriceType = model.PricePaid
			f.MaxDistance = ptr(10)
			f.SortBy = model.SortDate

			So(filter.ActiveCount(f), ShouldEqual, 5)
		})

		Convey("When only the time range and search query deviate", func() {
			// Both affect results but are deliberately not counted; each
			// has its own affordance in the client.
			f := model.DefaultFilters()
			f.TimeRange = model.RangeWeekend
			f.SearchQuery = "jazz"

			So(filter.ActiveCount(f), ShouldEqual, 0)
		})
	})
}

func TestSummary(t *testing.T) {
	Convey("Given filter states", t, func() {
		Convey("When nothing is active", func() {
			_, ok := filter.Summary(model.DefaultFilters())

			Convey("Then there is no summary at all, not an empty one", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When a single category is selected", func() {
			f := model.DefaultFilters()
			f.Categories = []model.Category{model.CategoryArt}
			s, ok := filter.Summary(f)

			So(ok, ShouldBeTrue)
			So(s, ShouldEqual, "1 category")
		})

		Convey("When several dimensions are active", func() {
			f := model.DefaultFilters()
			f.Categories = []model.Category{model.CategoryMusic, model.CategoryNightlife}
			f.EventMode = model.ModeInPerson
			f.PriceType = model.PriceFree
			f.MaxDistance = ptr(5)
			s, ok := filter.Summary(f)

			So(ok, ShouldBeTrue)
			So(s, ShouldEqual, "2 categories · In-person · Free · Within 5 km")
		})

		Convey("When only the sort deviates", func() {
			// Counted by ActiveCount but never rendered.
			f := model.DefaultFilters()
			f.SortBy = model.SortRating

			So(filter.ActiveCount(f), ShouldEqual, 1)
			_, ok := filter.Summary(f)
			So(ok, ShouldBeFalse)
		})

		Convey("When the mode is online and the price is paid", func() {
			f := model.DefaultFilters()
			f.EventMode = model.ModeOnline
			f.PriceType = model.PricePaid
			s, _ := filter.Summary(f)

			So(s, ShouldEqual, "Online · Paid")
		})
	})
}
