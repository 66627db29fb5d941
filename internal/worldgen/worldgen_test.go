package worldgen_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/talgya/touchline/internal/game"
	"github.com/talgya/touchline/internal/worldgen"
)

func TestGenerateDeterminism(t *testing.T) {
	Convey("Given the same seed", t, func() {
		a := worldgen.Generate(worldgen.SmallTestConfig(7))
		b := worldgen.Generate(worldgen.SmallTestConfig(7))

		Convey("Then the worlds are byte-identical", func() {
			So(a, ShouldResemble, b)
		})
	})

	Convey("Given different seeds", t, func() {
		a := worldgen.Generate(worldgen.SmallTestConfig(7))
		b := worldgen.Generate(worldgen.SmallTestConfig(8))

		Convey("Then the worlds diverge", func() {
			So(a, ShouldNotResemble, b)
		})
	})
}

func TestGenerateShape(t *testing.T) {
	Convey("Given a small config", t, func() {
		cfg := worldgen.SmallTestConfig(3)
		state := worldgen.Generate(cfg)

		Convey("Then the collection sizes follow the config", func() {
			So(len(state.Leagues), ShouldEqual, len(cfg.Countries))
			So(len(state.Clubs), ShouldEqual, len(cfg.Countries)*cfg.ClubsPerLeague)
			So(len(state.Players), ShouldEqual, len(state.Clubs)*cfg.SquadSize)
			So(len(state.Contacts), ShouldEqual, cfg.Contacts)
			So(len(state.Rivals), ShouldEqual, cfg.Rivals)
			So(state.Season, ShouldEqual, 1)
			So(state.Week, ShouldEqual, 1)
			So(state.Seed, ShouldEqual, int64(3))
		})

		Convey("Then every player lands inside the stat envelope", func() {
			for _, p := range state.Players {
				So(p.CurrentAbility, ShouldBeLessThanOrEqualTo, 95)
				So(p.PotentialAbility, ShouldBeGreaterThanOrEqualTo, p.CurrentAbility)
				So(p.PotentialAbility, ShouldBeLessThanOrEqualTo, 99)
				So(p.Age, ShouldBeGreaterThanOrEqualTo, 16)
				So(p.Age, ShouldBeLessThanOrEqualTo, 38)
				So(p.Form, ShouldBeGreaterThanOrEqualTo, -1.0)
				So(p.Form, ShouldBeLessThanOrEqualTo, 1.0)
				So(p.ContractExpiry, ShouldBeGreaterThanOrEqualTo, 1)
				So(p.ContractExpiry, ShouldBeLessThanOrEqualTo, 4)
				So(p.ClubID, ShouldNotEqual, game.ClubID(0))
				So(p.Name, ShouldNotBeEmpty)
			}
		})

		Convey("Then the scout starts employed and at home in their own market", func() {
			_, ok := state.ClubByID(state.Scout.ClubID)
			So(ok, ShouldBeTrue)
			So(state.Scout.Familiarity(cfg.Countries[0]), ShouldBeGreaterThanOrEqualTo, 55)
		})

		Convey("Then the schedule pairs each club at most once per week", func() {
			So(len(state.Fixtures), ShouldBeGreaterThan, 0)
			for week := 1; week <= game.WeeksPerSeason; week++ {
				seen := make(map[game.ClubID]bool)
				for _, f := range state.FixturesForWeek(week) {
					So(f.HomeID, ShouldNotEqual, f.AwayID)
					So(seen[f.HomeID], ShouldBeFalse)
					So(seen[f.AwayID], ShouldBeFalse)
					seen[f.HomeID] = true
					seen[f.AwayID] = true
				}
			}
		})
	})
}

func TestGenerateRivals(t *testing.T) {
	Convey("Given a generated world", t, func() {
		state := worldgen.Generate(worldgen.SmallTestConfig(11))

		Convey("Then exactly one rival is the nemesis", func() {
			nemeses := 0
			for _, rv := range state.Rivals {
				if rv.IsNemesis {
					nemeses++
				}
			}
			So(nemeses, ShouldEqual, 1)
		})

		Convey("Then no rival works for the scout's club and employers are distinct", func() {
			seen := make(map[game.ClubID]bool)
			for _, rv := range state.Rivals {
				So(rv.ClubID, ShouldNotEqual, state.Scout.ClubID)
				So(seen[rv.ClubID], ShouldBeFalse)
				seen[rv.ClubID] = true
			}
		})

		Convey("Then each rival opens with a legal book", func() {
			for _, rv := range state.Rivals {
				So(rv.Quality, ShouldBeGreaterThanOrEqualTo, 1)
				So(rv.Quality, ShouldBeLessThanOrEqualTo, 5)
				So(rv.Aggressiveness, ShouldBeGreaterThanOrEqualTo, 0.0)
				So(rv.Aggressiveness, ShouldBeLessThanOrEqualTo, 1.0)
				So(len(rv.TargetPlayerIDs), ShouldBeLessThanOrEqualTo, 2)
				for _, id := range rv.TargetPlayerIDs {
					p, ok := state.PlayerByID(id)
					So(ok, ShouldBeTrue)
					So(p.ClubID, ShouldNotEqual, rv.ClubID)
				}
			}
		})
	})

	Convey("Given a world with nowhere to employ a rival", t, func() {
		cfg := worldgen.GenConfig{
			Seed:           1,
			Countries:      []string{"ENG"},
			ClubsPerLeague: 1,
			SquadSize:      4,
			Contacts:       1,
			Rivals:         3,
		}
		state := worldgen.Generate(cfg)

		Convey("Then the directory is simply empty", func() {
			So(len(state.Rivals), ShouldEqual, 0)
		})
	})
}
