package cmd

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidplay-cli/vidplay/config"
	"github.com/vidplay-cli/vidplay/filesystem"
	"github.com/vidplay-cli/vidplay/key"
	"github.com/vidplay-cli/vidplay/tui"
	"github.com/vidplay-cli/vidplay/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestClosestKey(t *testing.T) {
	Convey("Given a misspelled config key", t, func() {
		So(closestKey("player.seekstep"), ShouldEqual, key.PlayerSeekStep)
		So(closestKey("probe.timout"), ShouldEqual, key.ProbeTimeout)
		So(closestKey("logs.levle"), ShouldEqual, key.LogsLevel)
	})
}

func TestFilterShortcuts(t *testing.T) {
	Convey("Given the shortcut table", t, func() {
		all := tui.Shortcuts()

		Convey("An empty filter keeps everything", func() {
			So(filterShortcuts(all, ""), ShouldResemble, all)
		})

		Convey("A fuzzy filter matches actions", func() {
			actions := lo.Map(filterShortcuts(all, "vol"), func(s tui.Shortcut, _ int) string { return s.Action })
			So(actions, ShouldContain, "Volume up")
			So(actions, ShouldContain, "Volume down")
			So(actions, ShouldNotContain, "Quit")
		})

		Convey("Groups match too", func() {
			So(len(filterShortcuts(all, "playback")), ShouldBeGreaterThan, 0)
		})

		Convey("Nothing matches nonsense", func() {
			So(filterShortcuts(all, "zzzz"), ShouldBeEmpty)
		})
	})
}

func TestEnvNames(t *testing.T) {
	Convey("Given the config registry", t, func() {
		names := envNames()

		So(names, ShouldContain, where.EnvConfigPath)
		So(names, ShouldContain, "VIDPLAY_PLAYER_BINARY")
		So(len(names), ShouldEqual, len(config.Default)+1)
		So(lo.IsSorted(names), ShouldBeTrue)
	})
}
