package model

import (
	"testing"
	"time"
)

func TestClampDuration(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 15}, {10, 15}, {15, 15}, {29, 15}, {30, 30}, {44, 30}, {45, 45}, {100, 90},
	}
	for _, c := range cases {
		if got := ClampDuration(c.in); got != c.want {
			t.Fatalf("ClampDuration(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestDayIndexOf_MondayAnchored(t *testing.T) {
	// 2025-06-09 is a Monday.
	monday := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		if got := DayIndexOf(monday.AddDate(0, 0, i)); got != i {
			t.Fatalf("day %d indexed %d", i, got)
		}
	}
}

func TestNextColor_CyclesPalette(t *testing.T) {
	if NextColor(0) != Palette[0] {
		t.Fatalf("first color = %q", NextColor(0))
	}
	if NextColor(len(Palette)) != Palette[0] {
		t.Fatal("palette does not cycle")
	}
}

func TestDailyThoughts_HasContentIgnoresBlank(t *testing.T) {
	d := DailyThoughts{"Mon": "  ", "Tue": ""}
	if d.HasContent() {
		t.Fatal("blank notes counted as content")
	}
	d["Wed"] = "retro went well"
	if !d.HasContent() {
		t.Fatal("real note not counted")
	}
}
