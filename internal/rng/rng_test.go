package rng_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/talgya/touchline/internal/rng"
)

func TestSourceDeterminism(t *testing.T) {
	Convey("Given two sources with the same seed", t, func() {
		a := rng.New(42)
		b := rng.New(42)

		Convey("Then every draw matches across a long mixed sequence", func() {
			for i := 0; i < 1000; i++ {
				So(a.NextInt(0, 100), ShouldEqual, b.NextInt(0, 100))
				So(a.NextFloat(0, 1), ShouldEqual, b.NextFloat(0, 1))
				So(a.Chance(0.5), ShouldEqual, b.Chance(0.5))
				So(a.Gaussian(50, 10), ShouldEqual, b.Gaussian(50, 10))
			}
		})
	})

	Convey("Given two sources with different seeds", t, func() {
		a := rng.New(1)
		b := rng.New(2)

		Convey("Then the sequences diverge", func() {
			same := 0
			for i := 0; i < 100; i++ {
				if a.NextInt(0, 1_000_000) == b.NextInt(0, 1_000_000) {
					same++
				}
			}
			So(same, ShouldBeLessThan, 5)
		})
	})
}

func TestNextInt(t *testing.T) {
	Convey("Given a source", t, func() {
		r := rng.New(7)

		Convey("Then NextInt stays within inclusive bounds", func() {
			for i := 0; i < 1000; i++ {
				v := r.NextInt(3, 9)
				So(v, ShouldBeGreaterThanOrEqualTo, 3)
				So(v, ShouldBeLessThanOrEqualTo, 9)
			}
		})

		Convey("Then a degenerate range returns the single value", func() {
			So(r.NextInt(5, 5), ShouldEqual, 5)
		})

		Convey("Then swapped bounds are tolerated", func() {
			v := r.NextInt(9, 3)
			So(v, ShouldBeGreaterThanOrEqualTo, 3)
			So(v, ShouldBeLessThanOrEqualTo, 9)
		})
	})
}

func TestChance(t *testing.T) {
	Convey("Given a source", t, func() {
		r := rng.New(11)

		Convey("Then probability 0 never succeeds", func() {
			for i := 0; i < 1000; i++ {
				So(r.Chance(0), ShouldBeFalse)
			}
		})

		Convey("Then probability 1 always succeeds", func() {
			for i := 0; i < 1000; i++ {
				So(r.Chance(1), ShouldBeTrue)
			}
		})

		Convey("Then a failed trial still consumes a draw", func() {
			a := rng.New(3)
			b := rng.New(3)
			a.Chance(0)
			b.Chance(0.99)
			So(a.NextInt(0, 1_000_000), ShouldEqual, b.NextInt(0, 1_000_000))
		})
	})
}

func TestPickAndShuffle(t *testing.T) {
	Convey("Given a list of items", t, func() {
		items := []string{"a", "b", "c", "d"}

		Convey("Then Pick returns a member", func() {
			r := rng.New(5)
			for i := 0; i < 100; i++ {
				So(items, ShouldContain, rng.Pick(r, items))
			}
		})

		Convey("Then Pick on an empty slice returns the zero value", func() {
			r := rng.New(5)
			So(rng.Pick(r, []string(nil)), ShouldEqual, "")
		})

		Convey("Then Shuffle preserves membership", func() {
			r := rng.New(5)
			shuffled := append([]string(nil), items...)
			rng.Shuffle(r, shuffled)
			So(len(shuffled), ShouldEqual, len(items))
			for _, it := range items {
				So(shuffled, ShouldContain, it)
			}
		})
	})
}

func TestPickWeighted(t *testing.T) {
	Convey("Given weighted items", t, func() {
		Convey("Then zero total weight falls back to the first item", func() {
			r := rng.New(9)
			items := []rng.Weighted[string]{
				{Item: "x", Weight: 0},
				{Item: "y", Weight: 0},
			}
			So(rng.PickWeighted(r, items), ShouldEqual, "x")
		})

		Convey("Then a dominant weight wins almost always", func() {
			r := rng.New(9)
			items := []rng.Weighted[string]{
				{Item: "rare", Weight: 1},
				{Item: "common", Weight: 10_000},
			}
			common := 0
			for i := 0; i < 1000; i++ {
				if rng.PickWeighted(r, items) == "common" {
					common++
				}
			}
			So(common, ShouldBeGreaterThan, 990)
		})

		Convey("Then negative weights never get selected", func() {
			r := rng.New(9)
			items := []rng.Weighted[string]{
				{Item: "bad", Weight: -5},
				{Item: "good", Weight: 1},
			}
			for i := 0; i < 100; i++ {
				So(rng.PickWeighted(r, items), ShouldEqual, "good")
			}
		})
	})
}
