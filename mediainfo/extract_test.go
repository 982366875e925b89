package mediainfo

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeProber struct {
	containers map[string]Container
	calls      int
}

func (f *fakeProber) Probe(_ context.Context, path string) (Container, error) {
	f.calls++
	c, ok := f.containers[path]
	if !ok {
		return Container{}, errors.New("invalid data found when processing input")
	}
	return c, nil
}

func TestExtract(t *testing.T) {
	Convey("Given an extractor over known files", t, func() {
		prober := &fakeProber{containers: map[string]Container{
			"/videos/a.mkv": {
				FormatDescription: mo.Some("Matroska / WebM"),
				DurationMicros:    125_000_000,
				BitRate:           2_000_000,
				Tags:              []Tag{{Key: "ARTIST", Value: "X"}},
			},
			"/videos/b.mp4": {
				FormatDescription: mo.Some("QuickTime / MOV"),
				DurationMicros:    3_661_000_000,
				BitRate:           1_500_000,
				Tags: []Tag{
					{Key: "title", Value: "B"},
					{Key: "COMMENT", Value: "one"},
					{Key: "comment", Value: "two"},
				},
			},
		}}
		extractor := NewExtractor(prober)
		ctx := context.Background()

		Convey("File A is formatted", func() {
			record, err := extractor.Extract(ctx, "/videos/a.mkv")
			So(err, ShouldBeNil)
			So(record.Format, ShouldResemble, mo.Some("Matroska / WebM"))
			So(record.Duration, ShouldEqual, "00:02:05")
			So(record.Bitrate, ShouldEqual, "2.00 Mbps")
			So(record.Tags, ShouldResemble, []Tag{{Key: "Artist", Value: "X"}})
		})

		Convey("Opening B after A replaces the record without merging", func() {
			a, err := extractor.Extract(ctx, "/videos/a.mkv")
			So(err, ShouldBeNil)
			b, err := extractor.Extract(ctx, "/videos/b.mp4")
			So(err, ShouldBeNil)

			So(b.Path, ShouldEqual, "/videos/b.mp4")
			So(b.Duration, ShouldEqual, "01:01:01")
			So(b.Bitrate, ShouldEqual, "1.50 Mbps")
			So(b.Tags, ShouldNotContain, a.Tags[0])
			So(b.Tags, ShouldResemble, []Tag{
				{Key: "Title", Value: "B"},
				{Key: "Comment", Value: "one"},
				{Key: "Comment", Value: "two"},
			})
		})

		Convey("Extracting the same file twice gives the same record", func() {
			first, err := extractor.Extract(ctx, "/videos/b.mp4")
			So(err, ShouldBeNil)
			second, err := extractor.Extract(ctx, "/videos/b.mp4")
			So(err, ShouldBeNil)
			So(second, ShouldResemble, first)
		})

		Convey("A probe failure is an unreadable container error", func() {
			_, err := extractor.Extract(ctx, "/videos/broken.avi")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrUnreadableContainer), ShouldBeTrue)

			var unreadable *UnreadableContainerError
			So(errors.As(err, &unreadable), ShouldBeTrue)
			So(unreadable.Path, ShouldEqual, "/videos/broken.avi")
			So(unreadable.Cause.Error(), ShouldContainSubstring, "invalid data")
			So(prober.calls, ShouldEqual, 1)
		})
	})
}
