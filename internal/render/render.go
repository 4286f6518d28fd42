// Package render форматирует нормализованное расписание в текст сообщения
// для Telegram (HTML-разметка).
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/espadawo/College-Timetable-Bot/internal/models"
)

// Telegram не принимает сообщения длиннее ~4096 символов, поэтому текст
// обрезается заранее, с явной пометкой. Сообщение никогда не разбивается
// на несколько.
const (
	maxLen          = 4000
	truncateLen     = 3900
	truncatedMarker = "\n\n... (сообщение обрезано)"
)

const (
	headerDivider = 40
	dayDivider    = 35
)

// Render возвращает готовый текст расписания.
//
// Расписание группы всегда разворачивается в полную неделю: дни без пар
// выводятся с пометкой «Пар нет», названия для них берутся из канонического
// списка. Расписание преподавателя, наоборот, показывает только дни, в
// которых пары есть.
func Render(doc *models.ScheduleDocument) string {
	var b strings.Builder

	if doc.Kind == models.ViewTeacher {
		fmt.Fprintf(&b, "👨‍🏫 <b>%s</b>\n", doc.Title)
	} else {
		fmt.Fprintf(&b, "📅 <b>%s</b>\n", doc.Title)
	}
	b.WriteString(strings.Repeat("―", headerDivider) + "\n\n")

	if doc.Kind == models.ViewTeacher {
		renderTeacherDays(&b, doc.Days)
	} else {
		renderGroupWeek(&b, doc.Days)
	}

	if doc.LastUpdate != "" {
		fmt.Fprintf(&b, "\n🔄 <i>%s</i>", doc.LastUpdate)
	} else {
		fmt.Fprintf(&b, "\n🔄 <i>Обновлено: %s</i>", time.Now().Format("02.01.2006 15:04"))
	}

	return truncate(b.String())
}

func renderGroupWeek(b *strings.Builder, days []models.Day) {
	for i := 0; i < len(models.Weekdays); i++ {
		day := models.Day{WeekdayIdx: i, Weekday: models.Weekdays[i]}
		for _, d := range days {
			if d.WeekdayIdx == i {
				day = d
				break
			}
		}

		fmt.Fprintf(b, "📌 <b>%s</b>\n", strings.ToUpper(day.Weekday))
		b.WriteString(strings.Repeat("―", dayDivider) + "\n")

		if len(day.Lessons) == 0 {
			b.WriteString("│ <i>Пар нет</i>\n")
			b.WriteString(strings.Repeat("―", dayDivider) + "\n\n")
			continue
		}
		for _, l := range day.Lessons {
			writeLesson(b, l, models.ViewGroup)
		}
		b.WriteString("\n")
	}
}

func renderTeacherDays(b *strings.Builder, days []models.Day) {
	for _, day := range days {
		if len(day.Lessons) == 0 {
			continue
		}
		fmt.Fprintf(b, "📌 <b>%s</b>\n", strings.ToUpper(day.Weekday))
		b.WriteString(strings.Repeat("―", dayDivider) + "\n")
		for _, l := range day.Lessons {
			writeLesson(b, l, models.ViewTeacher)
		}
		b.WriteString("\n")
	}
}

func writeLesson(b *strings.Builder, l models.Lesson, kind models.ViewKind) {
	fmt.Fprintf(b, "<b>│ %d пара</b> │ %s-%s\n", l.Number, l.TimeStart, l.TimeEnd)
	fmt.Fprintf(b, "<b>│ 📚</b> %s\n", l.Subject)

	if kind == models.ViewTeacher {
		var groups []string
		for _, g := range l.Groups {
			if strings.TrimSpace(g) != "" {
				groups = append(groups, g)
			}
		}
		if len(groups) > 0 {
			fmt.Fprintf(b, "<b>│ 👥</b> %s\n", strings.Join(groups, ", "))
		}
	} else if l.Teacher != "" {
		fmt.Fprintf(b, "<b>│ 👨‍🏫</b> %s\n", l.Teacher)
	}

	if l.Room != "" {
		fmt.Fprintf(b, "<b>│ 🏢</b> %s\n", l.Room)
	}
	b.WriteString(strings.Repeat("―", dayDivider) + "\n")
}

// truncate ограничивает длину текста в символах, а не в байтах: кириллица
// в UTF-8 занимает по два байта на символ.
func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:truncateLen]) + truncatedMarker
}
