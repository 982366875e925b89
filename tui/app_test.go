package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidplay-cli/vidplay/filesystem"
	"github.com/vidplay-cli/vidplay/key"
	"github.com/vidplay-cli/vidplay/mediainfo"
	"github.com/vidplay-cli/vidplay/picker"
	"github.com/vidplay-cli/vidplay/playback"
)

func init() {
	filesystem.SetMemMapFs()
}

type fakePlayer struct {
	mu       sync.Mutex
	bound    string
	playing  bool
	position time.Duration
	volume   float64
	calls    []string
	closed   bool
	exited   chan struct{}
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{volume: 0.5, exited: make(chan struct{})}
}

func (f *fakePlayer) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakePlayer) snapshot() (bound string, playing bool, position time.Duration, volume float64, calls []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bound, f.playing, f.position, f.volume, append([]string(nil), f.calls...)
}

func (f *fakePlayer) HasSource() (bool, error) {
	f.record("HasSource")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bound != "", nil
}

func (f *fakePlayer) Bind(path string) error {
	f.record("Bind " + path)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bound = path
	return nil
}

func (f *fakePlayer) SetPlaying(playing bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playing = playing
	return nil
}

func (f *fakePlayer) Position() (time.Duration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.position, nil
}

func (f *fakePlayer) SeekTo(pos time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.position = pos
	return nil
}

func (f *fakePlayer) Volume() (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.volume, nil
}

func (f *fakePlayer) SetVolume(volume float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.volume = volume
	return nil
}

func (f *fakePlayer) ToggleFullscreen() error {
	f.record("ToggleFullscreen")
	return nil
}

func (f *fakePlayer) Eject() error {
	f.record("Eject")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bound = ""
	return nil
}

func (f *fakePlayer) Socket() string {
	return ""
}

func (f *fakePlayer) Wait() <-chan struct{} {
	return f.exited
}

func (f *fakePlayer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

type fakeProber map[string]mediainfo.Container

func (f fakeProber) Probe(_ context.Context, path string) (mediainfo.Container, error) {
	c, ok := f[path]
	if !ok {
		return mediainfo.Container{}, errors.New("invalid data found when processing input")
	}
	return c, nil
}

var library = fakeProber{
	"/videos/a.mkv": {
		FormatDescription: mo.Some("Matroska / WebM"),
		DurationMicros:    125_000_000,
		BitRate:           2_000_000,
		Tags:              []mediainfo.Tag{{Key: "ARTIST", Value: "X"}},
	},
	"/videos/b.mp4": {
		FormatDescription: mo.Some("QuickTime / MOV"),
		DurationMicros:    3_661_000_000,
		BitRate:           1_500_000,
	},
}

// collect runs cmd and any batches it returns. Only use it on commands that do not block.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}

	return []tea.Msg{msg}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func awaitRender(app *App) renderedMsg {
	select {
	case msg := <-app.player.results:
		return msg
	case <-time.After(2 * time.Second):
		return renderedMsg{err: errors.New("render timed out")}
	}
}

func TestApp(t *testing.T) {
	Convey("Given the player screen", t, func() {
		fake := newFakePlayer()
		app := newApp(&Options{}, fake, mediainfo.NewExtractor(library), playback.DefaultSteps)
		defer app.Close()

		Convey("A selected file fans out into the player and the info panel", func() {
			_, cmd := app.Update(FileSelectedMsg{Path: "/videos/a.mkv"})
			msgs := collect(cmd)

			So(msgs, ShouldContain, CommandMsg{Command: playback.SetSource{Path: "/videos/a.mkv"}})
			So(msgs, ShouldContain, GetInfoMsg{Path: "/videos/a.mkv"})
		})

		Convey("A file passed on the command line is preloaded", func() {
			preloaded := newApp(&Options{File: "/videos/b.mp4"}, newFakePlayer(), mediainfo.NewExtractor(library), playback.DefaultSteps)
			defer preloaded.Close()

			_, ok := lo.Find(collectInit(preloaded), func(msg tea.Msg) bool {
				return msg == FileSelectedMsg{Path: "/videos/b.mp4"}
			})
			So(ok, ShouldBeTrue)
		})

		Convey("Picking a file in the dialog closes it and selects the file", func() {
			_, cmd := app.Update(ShowMsg{overlay: pickerOverlay})
			So(app.picker.Visible(), ShouldBeTrue)
			top, ok := app.top()
			So(ok, ShouldBeTrue)
			So(top, ShouldEqual, pickerOverlay)
			_ = cmd

			_, cmd = app.Update(picker.SelectedMsg{Path: "/videos/a.mkv"})
			So(app.overlays.Len(), ShouldEqual, 0)
			So(app.picker.Visible(), ShouldBeFalse)
			So(collect(cmd), ShouldContain, FileSelectedMsg{Path: "/videos/a.mkv"})
		})

		Convey("Commands are rendered onto the stream in order", func() {
			app.Update(CommandMsg{Command: playback.SetSource{Path: "/videos/a.mkv"}})
			So(awaitRender(app).err, ShouldBeNil)

			app.Update(keyPress(" "))
			So(awaitRender(app).err, ShouldBeNil)

			app.Update(keyPress("right"))
			So(awaitRender(app).err, ShouldBeNil)

			app.Update(keyPress("up"))
			So(awaitRender(app).err, ShouldBeNil)

			bound, playing, position, volume, _ := fake.snapshot()
			So(bound, ShouldEqual, "/videos/a.mkv")
			So(playing, ShouldBeTrue)
			So(position, ShouldEqual, 10*time.Second)
			So(volume, ShouldAlmostEqual, 0.6, 1e-9)

			So(app.player.intent.Playing, ShouldBeTrue)
			So(app.player.intent.Volume, ShouldEqual, playback.VolumeUp)
			So(app.player.intent.Seek, ShouldEqual, playback.SeekNone)
		})

		Convey("Opening a different file unloads the old one first", func() {
			app.Update(CommandMsg{Command: playback.SetSource{Path: "/videos/a.mkv"}})
			So(awaitRender(app).err, ShouldBeNil)
			app.Update(CommandMsg{Command: playback.SetSource{Path: "/videos/b.mp4"}})
			So(awaitRender(app).err, ShouldBeNil)

			bound, _, _, _, calls := fake.snapshot()
			So(bound, ShouldEqual, "/videos/b.mp4")
			So(calls, ShouldContain, "Eject")
			So(calls, ShouldContain, "Bind /videos/b.mp4")
		})

		Convey("Reopening the same file does not rebind", func() {
			app.Update(CommandMsg{Command: playback.SetSource{Path: "/videos/a.mkv"}})
			So(awaitRender(app).err, ShouldBeNil)
			app.Update(CommandMsg{Command: playback.SetSource{Path: "/videos/a.mkv"}})
			So(awaitRender(app).err, ShouldBeNil)

			_, _, _, _, calls := fake.snapshot()
			So(lo.Count(calls, "Bind /videos/a.mkv"), ShouldEqual, 1)
			So(calls, ShouldNotContain, "Eject")
		})

		Convey("Fullscreen goes straight to the player", func() {
			_, cmd := app.Update(keyPress("f"))
			collect(cmd)
			_, _, _, _, calls := fake.snapshot()
			So(calls, ShouldContain, "ToggleFullscreen")
		})

		Convey("Overlay keys toggle their windows", func() {
			for _, tc := range []struct {
				key     string
				overlay overlay
			}{
				{"a", aboutOverlay},
				{"?", shortcutsOverlay},
				{"i", infoOverlay},
			} {
				_, cmd := app.Update(keyPress(tc.key))
				So(collect(cmd), ShouldContain, ShowMsg{overlay: tc.overlay})
			}
		})

		Convey("Showing and hiding flips visibility", func() {
			app.Update(ShowMsg{overlay: aboutOverlay})
			So(app.about.visible, ShouldBeTrue)
			So(app.View(), ShouldContainSubstring, "Version:")

			app.Update(HideMsg{overlay: aboutOverlay})
			So(app.about.visible, ShouldBeFalse)
			So(app.overlays.Len(), ShouldEqual, 0)
		})

		Convey("esc closes the top overlay only", func() {
			app.Update(ShowMsg{overlay: infoOverlay})
			app.Update(ShowMsg{overlay: shortcutsOverlay})

			_, cmd := app.Update(keyPress("esc"))
			msgs := collect(cmd)
			So(msgs, ShouldContain, HideMsg{overlay: shortcutsOverlay})

			for _, msg := range msgs {
				app.Update(msg)
			}
			So(app.shortcuts.visible, ShouldBeFalse)
			So(app.info.visible, ShouldBeTrue)
		})

		Convey("The shortcuts window lists every action", func() {
			app.Update(ShowMsg{overlay: shortcutsOverlay})
			view := app.View()
			for _, shortcut := range Shortcuts() {
				So(view, ShouldContainSubstring, shortcut.Action)
			}
		})

		Convey("q quits", func() {
			_, cmd := app.Update(keyPress("q"))
			So(collect(cmd), ShouldContain, tea.QuitMsg{})
		})

		Convey("Closing shuts the player down", func() {
			So(app.Close(), ShouldBeNil)
			So(app.Close(), ShouldBeNil)
			fake.mu.Lock()
			defer fake.mu.Unlock()
			So(fake.closed, ShouldBeTrue)
		})
	})
}

func collectInit(app *App) []tea.Msg {
	// Init also arms the blocking result listeners, so only the preload is run.
	if app.options == nil || app.options.File == "" {
		return nil
	}
	return collect(send(FileSelectedMsg{Path: app.options.File}))
}

func TestSteps(t *testing.T) {
	Convey("Given step settings", t, func() {
		defer viper.Set(key.PlayerSeekStep, 10)
		defer viper.Set(key.PlayerVolumeStep, 10)

		Convey("Defaults match the render contract", func() {
			viper.Set(key.PlayerSeekStep, 10)
			viper.Set(key.PlayerVolumeStep, 10)
			So(Steps(), ShouldResemble, playback.DefaultSteps)
		})

		Convey("Custom steps are converted", func() {
			viper.Set(key.PlayerSeekStep, 5)
			viper.Set(key.PlayerVolumeStep, 25)
			So(Steps(), ShouldResemble, playback.Steps{Seek: 5 * time.Second, Volume: 0.25})
		})

		Convey("Non-positive steps fall back to the defaults", func() {
			viper.Set(key.PlayerSeekStep, 0)
			viper.Set(key.PlayerVolumeStep, -1)
			So(Steps(), ShouldResemble, playback.DefaultSteps)
		})
	})
}
