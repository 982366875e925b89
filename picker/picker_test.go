package picker

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidplay-cli/vidplay/filesystem"
	"github.com/vidplay-cli/vidplay/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestIsVideo(t *testing.T) {
	Convey("Given file names", t, func() {
		Convey("Every listed extension is accepted", func() {
			for _, ext := range Extensions {
				So(IsVideo("clip."+ext), ShouldBeTrue)
			}
		})

		Convey("Matching ignores case", func() {
			So(IsVideo("MOVIE.MKV"), ShouldBeTrue)
			So(IsVideo("/videos/Trip.WebM"), ShouldBeTrue)
		})

		Convey("Other files are rejected", func() {
			So(IsVideo("notes.txt"), ShouldBeFalse)
			So(IsVideo("mkv"), ShouldBeFalse)
			So(IsVideo("archive.mkv.zip"), ShouldBeFalse)
			So(IsVideo(""), ShouldBeFalse)
		})
	})
}

func TestVideos(t *testing.T) {
	Convey("Given a directory with mixed files", t, func() {
		fs := filesystem.API()
		dir := "/library"
		So(fs.MkdirAll(filepath.Join(dir, "season.mkv"), os.ModePerm), ShouldBeNil)
		for _, name := range []string{"b.mp4", "A.MKV", "notes.txt", ".hidden.webm"} {
			So(fs.WriteFile(filepath.Join(dir, name), []byte{}, os.ModePerm), ShouldBeNil)
		}

		Convey("Only visible video files are listed, sorted", func() {
			viper.Set(key.PickerShowHidden, false)
			videos, err := Videos(dir)
			So(err, ShouldBeNil)
			So(videos, ShouldResemble, []string{"A.MKV", "b.mp4"})
		})

		Convey("Hidden videos are listed when enabled", func() {
			viper.Set(key.PickerShowHidden, true)
			defer viper.Set(key.PickerShowHidden, false)

			videos, err := Videos(dir)
			So(err, ShouldBeNil)
			So(videos, ShouldContain, ".hidden.webm")
		})

		Convey("A missing directory is an error", func() {
			_, err := Videos("/nowhere")
			So(err, ShouldNotBeNil)
		})

		Convey("Prompt refuses an empty directory", func() {
			So(fs.MkdirAll("/empty", os.ModePerm), ShouldBeNil)
			_, err := Prompt("/empty")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestStartDir(t *testing.T) {
	Convey("Given the start directory setting", t, func() {
		Convey("A configured directory wins", func() {
			viper.Set(key.PickerStartDir, "/media")
			defer viper.Set(key.PickerStartDir, "")
			So(StartDir(), ShouldEqual, "/media")
		})

		Convey("Otherwise it is not empty", func() {
			viper.Set(key.PickerStartDir, "")
			So(StartDir(), ShouldNotBeEmpty)
		})
	})
}

func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestModel(t *testing.T) {
	Convey("Given a picker over a real directory", t, func() {
		// the bubbles file picker reads the OS filesystem directly
		dir := t.TempDir()
		So(os.WriteFile(filepath.Join(dir, "a.mkv"), []byte{}, 0o644), ShouldBeNil)
		So(os.WriteFile(filepath.Join(dir, "b.Mp4"), []byte{}, 0o644), ShouldBeNil)
		So(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte{}, 0o644), ShouldBeNil)

		viper.Set(key.PickerStartDir, dir)
		defer viper.Set(key.PickerStartDir, "")

		m := New()

		Convey("It starts hidden and ignores keys", func() {
			So(m.Visible(), ShouldBeFalse)
			So(m.View(), ShouldBeEmpty)

			m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			So(cmd, ShouldBeNil)
			So(m.Visible(), ShouldBeFalse)
		})

		Convey("Once shown", func() {
			m, cmd := m.Show()
			So(m.Visible(), ShouldBeTrue)

			m, _ = m.Update(run(cmd))
			So(m.View(), ShouldContainSubstring, "a.mkv")

			Convey("esc cancels", func() {
				m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
				So(m.Visible(), ShouldBeFalse)
				So(run(cmd), ShouldResemble, CancelledMsg{})
			})

			Convey("enter on a video selects it and closes", func() {
				m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
				So(m.Visible(), ShouldBeFalse)
				So(selectedPath(cmd), ShouldEqual, filepath.Join(dir, "a.mkv"))
			})

			Convey("enter on a mixed-case video extension selects it too", func() {
				m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
				m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
				So(m.Visible(), ShouldBeFalse)
				So(selectedPath(cmd), ShouldEqual, filepath.Join(dir, "b.Mp4"))
			})

			Convey("enter on another file keeps the picker open", func() {
				m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
				m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
				m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
				So(m.Visible(), ShouldBeTrue)
				So(m.View(), ShouldContainSubstring, "notes.txt is not a supported video")
			})
		})
	})
}

// selectedPath digs the SelectedMsg out of a command that may be batched.
func selectedPath(cmd tea.Cmd) string {
	switch msg := run(cmd).(type) {
	case SelectedMsg:
		return msg.Path
	case tea.BatchMsg:
		for _, c := range msg {
			if s, ok := run(c).(SelectedMsg); ok {
				return s.Path
			}
		}
	}
	return ""
}
