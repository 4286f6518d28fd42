package parser

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/espadawo/College-Timetable-Bot/internal/models"
)

// Ячейка пары содержит до трёх ролевых ссылок: z1, z2, z3. Их смысл зависит
// от того, чьё это расписание:
//
//	группа:        z1 — предмет, z2 — аудитория, z3 — преподаватель;
//	преподаватель: z1 — группы (может быть несколько), z2 — аудитория, z3 — предмет.
//
// На страницах сайта разметка часто неполная, поэтому при отсутствии ссылки
// с предметом содержимое восстанавливается из простого текста ячейки.

// extractLesson разбирает ячейку td.ur. Возвращает false, если ячейка пустая
// или предмет определить не удалось — такая строка пары не порождает.
func extractLesson(cell *html.Node, kind models.ViewKind) (models.Lesson, bool) {
	var lesson models.Lesson

	if strings.TrimSpace(flatText(cell)) == "" {
		return lesson, false
	}

	if kind == models.ViewTeacher {
		for _, link := range findAll(cell, "a", "z1") {
			if g := strings.TrimSpace(flatText(link)); g != "" {
				lesson.Groups = append(lesson.Groups, g)
			}
		}
		if room := findFirst(cell, "a", "z2"); room != nil {
			lesson.Room = strings.TrimSpace(flatText(room))
		}
		if subj := findFirst(cell, "a", "z3"); subj != nil {
			lesson.Subject = strings.TrimSpace(flatText(subj))
		}
		if lesson.Subject == "" {
			// Запасной путь: последняя строка текста — предмет,
			// строки перед ней — группы.
			lines := textLines(cell)
			if len(lines) > 0 {
				lesson.Subject = lines[len(lines)-1]
				if len(lesson.Groups) == 0 && len(lines) > 1 {
					lesson.Groups = lines[:len(lines)-1]
				}
			}
		}
	} else {
		if subj := findFirst(cell, "a", "z1"); subj != nil {
			lesson.Subject = strings.TrimSpace(flatText(subj))
		}
		if room := findFirst(cell, "a", "z2"); room != nil {
			lesson.Room = strings.TrimSpace(flatText(room))
		}
		if teacher := findFirst(cell, "a", "z3"); teacher != nil {
			lesson.Teacher = strings.TrimSpace(flatText(teacher))
		}
		if lesson.Subject == "" {
			// Запасной путь: первая строка — предмет, последняя — преподаватель.
			lines := textLines(cell)
			if len(lines) > 0 {
				lesson.Subject = lines[0]
				if len(lines) > 1 {
					lesson.Teacher = lines[len(lines)-1]
				}
			}
		}
	}

	if lesson.Subject == "" {
		return models.Lesson{}, false
	}
	return lesson, true
}
