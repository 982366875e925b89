package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidplay-cli/vidplay/internal/ui"
	"github.com/vidplay-cli/vidplay/mediainfo"
)

func TestInfoPanel(t *testing.T) {
	Convey("Given the media info panel", t, func() {
		panel := newInfoPanel(mediainfo.NewExtractor(library))

		load := func(path string) {
			cmd := panel.extract(path)
			panel, _ = panel.Update(GetInfoMsg{Path: path})
			panel, _ = panel.Update(cmd())
		}

		Convey("It starts empty", func() {
			So(panel.current.IsPresent(), ShouldBeFalse)
			So(panel.View(80), ShouldContainSubstring, "No file opened")
		})

		Convey("Requesting info starts loading", func() {
			var cmd tea.Cmd
			panel, cmd = panel.Update(GetInfoMsg{Path: "/videos/a.mkv"})
			So(cmd, ShouldNotBeNil)
			So(panel.loading(), ShouldBeTrue)
			So(panel.View(80), ShouldContainSubstring, "Reading")
		})

		Convey("A loaded record is shown", func() {
			load("/videos/a.mkv")

			So(panel.loading(), ShouldBeFalse)
			record, ok := panel.current.Get()
			So(ok, ShouldBeTrue)
			So(record.Duration, ShouldEqual, "00:02:05")
			So(record.Bitrate, ShouldEqual, "2.00 Mbps")

			view := panel.View(80)
			So(view, ShouldContainSubstring, "Matroska / WebM")
			So(view, ShouldContainSubstring, "Artist")
		})

		Convey("A failed read keeps the previous record", func() {
			load("/videos/a.mkv")

			_, cmd := panel.Update(GetInfoMsg{Path: "/videos/broken.avi"})
			So(cmd, ShouldNotBeNil)
			panel, _ = panel.Update(GetInfoMsg{Path: "/videos/broken.avi"})

			failed := panel.extract("/videos/broken.avi")()
			So(failed, ShouldHaveSameTypeAs, InfoFailedMsg{})
			So(errors.Is(failed.(InfoFailedMsg).Err, mediainfo.ErrUnreadableContainer), ShouldBeTrue)

			var notify tea.Cmd
			panel, notify = panel.Update(failed)
			So(notify, ShouldNotBeNil)

			record, ok := panel.current.Get()
			So(ok, ShouldBeTrue)
			So(record.Path, ShouldEqual, "/videos/a.mkv")
			So(panel.lastErr, ShouldNotBeNil)
			So(panel.View(80), ShouldContainSubstring, "/videos/a.mkv")
		})

		Convey("The failure is reported as an error notification", func() {
			panel, _ = panel.Update(GetInfoMsg{Path: "/videos/broken.avi"})
			_, cmd := panel.Update(panel.extract("/videos/broken.avi")())
			msg := cmd()
			So(msg, ShouldHaveSameTypeAs, ui.NotifyMsg{})
			So(msg.(ui.NotifyMsg).Error, ShouldBeTrue)
		})

		Convey("A result for an older request is ignored", func() {
			stale := panel.extract("/videos/a.mkv")
			panel, _ = panel.Update(GetInfoMsg{Path: "/videos/a.mkv"})
			panel, _ = panel.Update(GetInfoMsg{Path: "/videos/b.mp4"})

			panel, _ = panel.Update(stale())
			So(panel.current.IsPresent(), ShouldBeFalse)
			So(panel.pending, ShouldEqual, "/videos/b.mp4")

			panel, _ = panel.Update(panel.extract("/videos/b.mp4")())
			record, ok := panel.current.Get()
			So(ok, ShouldBeTrue)
			So(record.Duration, ShouldEqual, "01:01:01")
			So(panel.View(80), ShouldContainSubstring, "none")
		})

		Convey("The spinner stops once loading is done", func() {
			load("/videos/a.mkv")
			_, cmd := panel.Update(spinner.TickMsg{Time: time.Now()})
			So(cmd, ShouldBeNil)
		})

		Convey("Show and hide only react to the info overlay", func() {
			panel, _ = panel.Update(ShowMsg{overlay: aboutOverlay})
			So(panel.visible, ShouldBeFalse)
			panel, _ = panel.Update(ShowMsg{overlay: infoOverlay})
			So(panel.visible, ShouldBeTrue)
			panel, _ = panel.Update(HideMsg{overlay: infoOverlay})
			So(panel.visible, ShouldBeFalse)
		})
	})
}

func TestStatus(t *testing.T) {
	Convey("Given player status events", t, func() {
		var s status

		s.apply("time-pos", 42.5)
		s.apply("duration", 120.0)
		s.apply("volume", 80.0)
		s.apply("pause", true)
		s.apply("fullscreen", true)
		s.apply("filename", "a.mkv")

		So(s.known, ShouldBeTrue)
		So(s.position, ShouldEqual, 42500*time.Millisecond)
		So(s.duration, ShouldEqual, 2*time.Minute)
		So(s.volume, ShouldAlmostEqual, 0.8, 1e-9)
		So(s.paused, ShouldBeTrue)
		So(s.fullscreen, ShouldBeTrue)
		So(s.filename, ShouldEqual, "a.mkv")

		Convey("Unexpected payloads are ignored", func() {
			s.apply("time-pos", nil)
			So(s.position, ShouldEqual, time.Duration(0))
		})

		Convey("The end of a file rewinds the position only", func() {
			s.apply("end-file", map[string]interface{}{"event": "end-file"})
			So(s.position, ShouldEqual, time.Duration(0))
			So(s.filename, ShouldEqual, "a.mkv")
		})

		Convey("Shutdown forgets everything", func() {
			s.apply("shutdown", nil)
			So(s, ShouldResemble, status{})
		})

		Convey("Clock formats hours", func() {
			So(clock(3661*time.Second+500*time.Millisecond), ShouldEqual, "01:01:01")
		})
	})
}
