package version

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given tool version lines", t, func() {
		for line, want := range map[string]Version{
			"mpv 0.37.0 Copyright © 2000-2023 mpv/MPlayer/mplayer2 projects": {0, 37, 0},
			"mpv v0.38.0-dirty Copyright © 2000-2024":                        {0, 38, 0},
			"ffprobe version 6.1.1 Copyright (c) 2007-2023":                  {6, 1, 1},
			"ffprobe version n6.1 Copyright (c) 2007-2023":                   {6, 1, 0},
			"ffprobe version 4.4.2-0ubuntu0.22.04.1 Copyright":               {4, 4, 2},
		} {
			Convey(line, func() {
				v, err := Parse(line)
				So(err, ShouldBeNil)
				So(v, ShouldResemble, want)
			})
		}

		Convey("A line without a version fails", func() {
			_, err := Parse("mpv git-master")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestCompare(t *testing.T) {
	Convey("Given two versions", t, func() {
		So(Compare(Version{1, 2, 3}, Version{1, 2, 3}), ShouldEqual, 0)
		So(Compare(Version{1, 3, 0}, Version{1, 2, 9}), ShouldEqual, 1)
		So(Compare(Version{0, 31, 9}, Version{0, 32, 0}), ShouldEqual, -1)
		So(Compare(Version{2, 0, 0}, Version{1, 99, 99}), ShouldEqual, 1)
	})
}

func TestRequirement(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in")
	}

	Convey("Given a stand-in mpv binary", t, func() {
		dir := t.TempDir()
		binary := filepath.Join(dir, "mpv")

		write := func(line string) {
			script := "#!/bin/sh\necho '" + line + "'\necho 'built on unknown'\n"
			So(os.WriteFile(binary, []byte(script), 0o755), ShouldBeNil)
		}

		Convey("A recent version satisfies the requirement", func() {
			write("mpv 0.37.0 Copyright")
			found, ok, err := MPV.Check(context.Background(), binary)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(found.String(), ShouldEqual, "0.37.0")
		})

		Convey("An old version does not", func() {
			write("mpv 0.29.1 Copyright")
			_, ok, err := MPV.Check(context.Background(), binary)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})

		Convey("A missing binary is an error", func() {
			_, _, err := MPV.Check(context.Background(), filepath.Join(dir, "nope"))
			So(err, ShouldNotBeNil)
		})
	})
}
