package render

import (
	"strings"
	"testing"

	"github.com/espadawo/College-Timetable-Bot/internal/models"
)

func TestRenderGroupExpandsFullWeek(t *testing.T) {
	doc := &models.ScheduleDocument{
		Kind:  models.ViewGroup,
		Name:  "АА-11",
		Title: "Расписание группы АА-11",
	}
	text := Render(doc)

	// Документ без единого дня всё равно разворачивается в полную неделю.
	if got := strings.Count(text, "📌"); got != 7 {
		t.Errorf("day sections = %d, want 7:\n%s", got, text)
	}
	if got := strings.Count(text, "Пар нет"); got != 7 {
		t.Errorf("empty day markers = %d, want 7", got)
	}
	for _, name := range models.Weekdays {
		if !strings.Contains(text, strings.ToUpper(name)) {
			t.Errorf("missing weekday section %s", name)
		}
	}
}

func TestRenderGroupUsesCanonicalNamesForMissingDays(t *testing.T) {
	doc := &models.ScheduleDocument{
		Kind:  models.ViewGroup,
		Title: "Расписание группы АА-11",
		Days: []models.Day{
			{WeekdayIdx: 2, Weekday: "Среда", Lessons: []models.Lesson{
				{Number: 1, Subject: "Математика", Teacher: "Иванов И.И.", Room: "301", TimeStart: "8:30", TimeEnd: "10:00"},
			}},
		},
	}
	text := Render(doc)

	if got := strings.Count(text, "📌"); got != 7 {
		t.Errorf("day sections = %d, want 7", got)
	}
	if !strings.Contains(text, "Математика") || !strings.Contains(text, "Иванов И.И.") || !strings.Contains(text, "301") {
		t.Errorf("lesson fields missing:\n%s", text)
	}
	if got := strings.Count(text, "Пар нет"); got != 6 {
		t.Errorf("empty day markers = %d, want 6", got)
	}
}

func TestRenderTeacherOmitsEmptyDays(t *testing.T) {
	doc := &models.ScheduleDocument{
		Kind:  models.ViewTeacher,
		Title: "Иванов И.И.",
	}
	text := Render(doc)

	// Для преподавателя пустой документ — только заголовок и подпись.
	if strings.Contains(text, "📌") {
		t.Errorf("unexpected day sections:\n%s", text)
	}
	if !strings.Contains(text, "Иванов И.И.") {
		t.Errorf("missing title:\n%s", text)
	}
	if !strings.Contains(text, "🔄") {
		t.Errorf("missing footer:\n%s", text)
	}
}

func TestRenderTeacherJoinsGroups(t *testing.T) {
	doc := &models.ScheduleDocument{
		Kind:  models.ViewTeacher,
		Title: "Иванов И.И.",
		Days: []models.Day{
			{WeekdayIdx: 1, Weekday: "Вторник", Lessons: []models.Lesson{
				{Number: 2, Subject: "Математика", Groups: []string{"АА-11", " ", "АА-12"}, Room: "301", TimeStart: "10:10", TimeEnd: "11:40"},
			}},
		},
	}
	text := Render(doc)

	if got := strings.Count(text, "📌"); got != 1 {
		t.Errorf("day sections = %d, want 1", got)
	}
	// Пустые названия групп не попадают в перечисление.
	if !strings.Contains(text, "АА-11, АА-12") {
		t.Errorf("groups not joined:\n%s", text)
	}
	if !strings.Contains(text, "2 пара") || !strings.Contains(text, "10:10-11:40") {
		t.Errorf("lesson header missing:\n%s", text)
	}
}

func TestRenderFooterPrefersSourceTimestamp(t *testing.T) {
	doc := &models.ScheduleDocument{
		Kind:       models.ViewGroup,
		Title:      "Расписание группы АА-11",
		LastUpdate: "Обновлено: 01.09.2025 07:30",
	}
	text := Render(doc)
	if !strings.Contains(text, "Обновлено: 01.09.2025 07:30") {
		t.Errorf("source timestamp missing:\n%s", text)
	}
}

func TestRenderTruncation(t *testing.T) {
	longSubject := strings.Repeat("Очень длинное название предмета ", 4)
	var lessons []models.Lesson
	for i := 1; i <= 40; i++ {
		lessons = append(lessons, models.Lesson{
			Number: i, Subject: longSubject, TimeStart: "8:30", TimeEnd: "10:00",
		})
	}
	doc := &models.ScheduleDocument{
		Kind:  models.ViewGroup,
		Title: "Расписание группы АА-11",
		Days:  []models.Day{{WeekdayIdx: 0, Weekday: "Понедельник", Lessons: lessons}},
	}
	text := Render(doc)

	if !strings.HasSuffix(text, truncatedMarker) {
		t.Errorf("missing truncation marker, tail: %q", text[len(text)-60:])
	}
	if n := len([]rune(text)); n > maxLen {
		t.Errorf("rendered length = %d runes, cap is %d", n, maxLen)
	}
}
