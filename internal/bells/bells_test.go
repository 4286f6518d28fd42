package bells

import (
	"strings"
	"testing"
)

func TestLookupShortDay(t *testing.T) {
	start, end := Lookup(1, true)
	if start != "8:30" || end != "9:00" {
		t.Errorf("Lookup(1, true) = %s-%s, want 8:30-9:00", start, end)
	}
	start, end = Lookup(7, true)
	if start != "17:30" || end != "18:50" {
		t.Errorf("Lookup(7, true) = %s-%s, want 17:30-18:50", start, end)
	}
}

func TestLookupRegularDay(t *testing.T) {
	start, end := Lookup(1, false)
	if start != "8:30" || end != "10:00" {
		t.Errorf("Lookup(1, false) = %s-%s, want 8:30-10:00", start, end)
	}
	// В обычной сетке только шесть пар.
	start, end = Lookup(7, false)
	if start != UnknownTime || end != UnknownTime {
		t.Errorf("Lookup(7, false) = %s-%s, want sentinel", start, end)
	}
}

func TestLookupOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, 99} {
		for _, short := range []bool{true, false} {
			start, end := Lookup(n, short)
			if start != UnknownTime || end != UnknownTime {
				t.Errorf("Lookup(%d, %v) = %s-%s, want sentinel", n, short, start, end)
			}
		}
	}
}

func TestTimetableMentionsBothGrids(t *testing.T) {
	text := Timetable()
	if !strings.Contains(text, "ПОНЕДЕЛЬНИК") || !strings.Contains(text, "ВТОРНИК - СУББОТА") {
		t.Errorf("Timetable() missing day headers:\n%s", text)
	}
	if !strings.Contains(text, "8:30 — 9:00") || !strings.Contains(text, "8:30 — 10:00") {
		t.Errorf("Timetable() missing first lesson times:\n%s", text)
	}
}
