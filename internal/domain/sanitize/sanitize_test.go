package sanitize_test

import (
	"testing"

	sanitize "github.com/okian/faceoff/internal/domain/sanitize"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCell(t *testing.T) {
	Convey("Given raw tabular cell values", t, func() {
		Convey("When a value starts with a formula prefix", func() {
			Convey("Then the leading character is stripped", func() {
				So(sanitize.Cell("=cmd"), ShouldEqual, "cmd")
				So(sanitize.Cell("+1"), ShouldEqual, "1")
				So(sanitize.Cell("-5"), ShouldEqual, "5")
				So(sanitize.Cell("@SUM(A1)"), ShouldEqual, "SUM(A1)")
			})

			Convey("And only one character is stripped", func() {
				So(sanitize.Cell("==cmd"), ShouldEqual, "=cmd")
			})
		})

		Convey("When a value is a thousands-grouped decimal", func() {
			Convey("Then the grouping commas are removed", func() {
				So(sanitize.Cell("1,234"), ShouldEqual, "1234")
				So(sanitize.Cell("1,234.56"), ShouldEqual, "1234.56")
				So(sanitize.Cell("12,345,678"), ShouldEqual, "12345678")
			})

			Convey("And non-grouped comma lists keep their commas", func() {
				So(sanitize.Cell("C,LW"), ShouldEqual, "C,LW")
				So(sanitize.Cell("1,2345"), ShouldEqual, "1,2345")
			})
		})

		Convey("When both rules apply", func() {
			So(sanitize.Cell("=1,234"), ShouldEqual, "1234")
		})

		Convey("When the value is plain", func() {
			So(sanitize.Cell("plain"), ShouldEqual, "plain")
			So(sanitize.Cell(""), ShouldEqual, "")
			So(sanitize.Cell("42.5"), ShouldEqual, "42.5")
		})
	})
}

func TestHeader(t *testing.T) {
	Convey("Given column header keys", t, func() {
		Convey("Then surrounding whitespace is trimmed", func() {
			So(sanitize.Header("  Player "), ShouldEqual, "Player")
			So(sanitize.Header("Score"), ShouldEqual, "Score")
			So(sanitize.Header("\tAge\n"), ShouldEqual, "Age")
		})
	})
}

func TestRow(t *testing.T) {
	Convey("Given a full record", t, func() {
		Convey("Then every cell is cleaned and the original is untouched", func() {
			in := []string{"=Wayne", "1,200,000", "plain"}
			out := sanitize.Row(in)
			So(out, ShouldResemble, []string{"Wayne", "1200000", "plain"})
			So(in[0], ShouldEqual, "=Wayne")
		})
	})
}
