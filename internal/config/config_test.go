package config

import "testing"

func TestNormalized_RejectsInvertedGrid(t *testing.T) {
	c := Config{GridStartHour: 20, GridEndHour: 8, SlotMinutes: 30}.normalized()
	if c.GridEndHour <= c.GridStartHour {
		t.Fatalf("grid still inverted: %d..%d", c.GridStartHour, c.GridEndHour)
	}
}

func TestNormalized_SlotMinutesFallBackToThirty(t *testing.T) {
	c := Config{GridStartHour: 7, GridEndHour: 22, SlotMinutes: 42}.normalized()
	if c.SlotMinutes != 30 {
		t.Fatalf("slot = %d, want 30", c.SlotMinutes)
	}
}

func TestPlanningYears_Range(t *testing.T) {
	c := Config{YearsBack: 1, YearsAhead: 2}
	got := c.PlanningYears(2025)
	want := []int{2024, 2025, 2026, 2027}
	if len(got) != len(want) {
		t.Fatalf("years = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("years = %v, want %v", got, want)
		}
	}
}
