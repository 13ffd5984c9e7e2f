package conf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func writeConf(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "tiles.conf")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	Convey("Given an ini file", t, func() {
		Convey("With every grid key set", func() {
			path := writeConf(t, "[grid]\nsize_x = 6\nsize_y = 3\ncurrent_x = 5\ncurrent_y = 2\n")
			c, err := Load(path)

			So(err, ShouldBeNil)
			So(c.Grid, ShouldResemble, Grid{SizeX: 6, SizeY: 3, CurrentX: 5, CurrentY: 2})
			So(c.Log, ShouldResemble, Default().Log)
			So(c.Style, ShouldResemble, Default().Style)
		})

		Convey("With no grid section the defaults are kept", func() {
			c, err := Load(writeConf(t, "[log]\nname = other.log\n"))

			So(err, ShouldBeNil)
			So(c.Grid, ShouldResemble, Grid{SizeX: 4, SizeY: 4})
			So(c.Log.Name, ShouldEqual, "other.log")
		})

		Convey("With a non numeric size", func() {
			_, err := Load(writeConf(t, "[grid]\nsize_x = four\n"))

			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("With a non positive size", func() {
			_, err := Load(writeConf(t, "[grid]\nsize_y = 0\n"))
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)

			_, err = Load(writeConf(t, "[grid]\nsize_x = -2\n"))
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("With the cursor outside of the grid", func() {
			_, err := Load(writeConf(t, "[grid]\nsize_x = 2\ncurrent_x = 2\n"))
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)

			_, err = Load(writeConf(t, "[grid]\ncurrent_y = -1\n"))
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
		})
	})

	Convey("Given a missing file", t, func() {
		_, err := Load(filepath.Join(t.TempDir(), "missing.conf"))

		So(err, ShouldNotBeNil)
		So(errors.Is(err, ErrInvalidConfig), ShouldBeFalse)
	})
}

func TestFile(t *testing.T) {
	Convey("A configuration written to disk loads back unchanged", t, func() {
		c := Default()
		c.Grid = Grid{SizeX: 5, SizeY: 2, CurrentX: 1, CurrentY: 1}

		f, err := c.File()
		So(err, ShouldBeNil)

		path := filepath.Join(t.TempDir(), "tiles.conf")
		So(f.SaveTo(path), ShouldBeNil)

		loaded, err := Load(path)
		So(err, ShouldBeNil)
		So(loaded, ShouldResemble, c)
	})
}
