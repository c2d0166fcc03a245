package state

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHeroStateCycle(t *testing.T) {
	Convey("Given a hero", t, func() {
		var buf strings.Builder
		hero := NewHero()

		Convey("it starts idle", func() {
			So(hero.State(), ShouldEqual, Idle)
		})

		Convey("acting walks the Idle→Running→Jumping→Attacking→Idle cycle", func() {
			hero.Act(&buf)
			So(hero.State(), ShouldEqual, Running)
			hero.Act(&buf)
			So(hero.State(), ShouldEqual, Jumping)
			hero.Act(&buf)
			So(hero.State(), ShouldEqual, Attacking)
			hero.Act(&buf)
			So(hero.State(), ShouldEqual, Idle)

			So(buf.String(), ShouldEqual,
				"the hero starts running\n"+
					"the hero jumps\n"+
					"the hero attacks in midair\n"+
					"the hero lands and rests\n")
		})

		Convey("state objects are shared by reference", func() {
			other := NewHero()
			hero.Act(&buf)
			other.Act(&buf)
			So(hero.State(), ShouldEqual, other.State())
		})
	})
}
