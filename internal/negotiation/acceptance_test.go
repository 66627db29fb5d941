package negotiation_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/talgya/touchline/internal/game"
	"github.com/talgya/touchline/internal/negotiation"
)

func TestConvictionLadder(t *testing.T) {
	Convey("Given observation counts and confidence", t, func() {
		Convey("Then the score climbs the four tiers", func() {
			So(negotiation.ConvictionFor(1, 1.0), ShouldEqual, negotiation.ConvictionNote)
			So(negotiation.ConvictionFor(3, 0.6), ShouldEqual, negotiation.ConvictionRecommend)
			So(negotiation.ConvictionFor(4, 0.9), ShouldEqual, negotiation.ConvictionStrongRecommend)
			So(negotiation.ConvictionFor(6, 0.9), ShouldEqual, negotiation.ConvictionTablePound)
		})

		Convey("Then the boundaries land on the higher tier", func() {
			So(negotiation.ConvictionFor(3, 0.5), ShouldEqual, negotiation.ConvictionRecommend)
			So(negotiation.ConvictionFor(3, 1.0), ShouldEqual, negotiation.ConvictionStrongRecommend)
			So(negotiation.ConvictionFor(5, 1.0), ShouldEqual, negotiation.ConvictionTablePound)
		})

		Convey("Then zero observations is a mere note", func() {
			So(negotiation.ConvictionFor(0, 1.0), ShouldEqual, negotiation.ConvictionNote)
		})
	})
}

func TestFreeAgentAcceptance(t *testing.T) {
	Convey("Given a scout recommending a free agent to their club", t, func() {
		report := game.ScoutReport{PlayerID: 1, Observations: 4, AvgConfidence: 0.6} // recommend

		Convey("Then a mid-table club weighs conviction, standing, and fit", func() {
			scout := game.Scout{Reputation: 50, Specialization: game.SpecRegional}
			club := game.Club{Reputation: 60}
			// 0.35 + 0.075 + 0.10 alignment
			So(negotiation.CalculateFreeAgentAcceptance(report, scout, club, 55), ShouldAlmostEqual, 0.525, 1e-9)
		})

		Convey("Then a top club discounts the recommendation", func() {
			scout := game.Scout{Reputation: 50, Specialization: game.SpecRegional}
			modest := negotiation.CalculateFreeAgentAcceptance(report, scout, game.Club{Reputation: 60}, 55)
			top := negotiation.CalculateFreeAgentAcceptance(report, scout, game.Club{Reputation: 85}, 80)
			So(top, ShouldBeLessThan, modest)
		})

		Convey("Then a struggling club grabs at the same report", func() {
			scout := game.Scout{Reputation: 50, Specialization: game.SpecRegional}
			modest := negotiation.CalculateFreeAgentAcceptance(report, scout, game.Club{Reputation: 60}, 55)
			weak := negotiation.CalculateFreeAgentAcceptance(report, scout, game.Club{Reputation: 35}, 30)
			So(weak, ShouldBeGreaterThan, modest)
		})

		Convey("Then a first-team scout carries extra weight", func() {
			regional := game.Scout{Reputation: 50, Specialization: game.SpecRegional}
			firstTeam := game.Scout{Reputation: 50, Specialization: game.SpecFirstTeam}
			club := game.Club{Reputation: 60}
			So(negotiation.CalculateFreeAgentAcceptance(report, firstTeam, club, 55),
				ShouldAlmostEqual,
				negotiation.CalculateFreeAgentAcceptance(report, regional, club, 55)+0.05, 1e-9)
		})

		Convey("Then the probability never leaves its band", func() {
			sure := game.ScoutReport{Observations: 10, AvgConfidence: 0.9}
			star := game.Scout{Reputation: 100, Specialization: game.SpecFirstTeam}
			So(negotiation.CalculateFreeAgentAcceptance(sure, star, game.Club{Reputation: 50}, 50), ShouldEqual, 0.95)

			thin := game.ScoutReport{Observations: 1, AvgConfidence: 0.5}
			unknown := game.Scout{Reputation: 0, Specialization: game.SpecData}
			So(negotiation.CalculateFreeAgentAcceptance(thin, unknown, game.Club{Reputation: 85}, 40), ShouldBeGreaterThanOrEqualTo, 0.05)
			So(negotiation.CalculateFreeAgentAcceptance(thin, unknown, game.Club{Reputation: 85}, 40), ShouldBeLessThanOrEqualTo, 0.95)
		})
	})
}
