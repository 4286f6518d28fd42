// Package parser превращает html-страницу внешнего сайта расписания в
// нормализованный недельный документ. Границы дней в таблице заданы неявно:
// ячейка с названием дня растягивается на несколько строк через rowspan,
// остальные строки дня идут следом без собственной метки.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/espadawo/College-Timetable-Bot/internal/bells"
	"github.com/espadawo/College-Timetable-Bot/internal/models"
)

// StructureError — в документе нет ожидаемой таблицы расписания.
// Разбор такой страницы не даёт частичного результата.
type StructureError struct {
	Reason string
}

func (e *StructureError) Error() string { return e.Reason }

// ErrNoScheduleTable возвращается, когда в документе отсутствует table.inf.
var ErrNoScheduleTable = &StructureError{Reason: "Не найдена таблица расписания"}

var digitsRe = regexp.MustCompile(`\d+`)

// Parse разбирает страницу расписания группы или преподавателя.
// name — логическое имя субъекта, используется в заголовке, если h1 на
// странице отсутствует.
func Parse(htmlText string, kind models.ViewKind, name string) (*models.ScheduleDocument, error) {
	root, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return nil, err
	}

	doc := &models.ScheduleDocument{
		Kind:  kind,
		Name:  name,
		Title: defaultTitle(kind, name),
	}
	if h1 := findFirst(root, "h1", ""); h1 != nil {
		if title := strings.TrimSpace(flatText(h1)); title != "" {
			doc.Title = title
		}
	}

	table := findFirst(root, "table", "inf")
	if table == nil {
		return nil, ErrNoScheduleTable
	}

	if ref := findFirst(root, "div", "ref"); ref != nil {
		doc.LastUpdate = strings.TrimSpace(flatText(ref))
	}

	// Проход по строкам с курсором текущего дня. Ячейка td.hd с rowspan
	// открывает новый день; строки без неё продолжают текущий. Всё, что
	// встретилось до первой метки дня (шапка таблицы), пропускается.
	currentDay := -1
	for _, row := range findAll(table, "tr", "") {
		if dayCell := dayLabelCell(row); dayCell != nil {
			currentDay++
			doc.Days = append(doc.Days, models.Day{
				WeekdayIdx: currentDay,
				Weekday:    resolveWeekday(textLines(dayCell), currentDay),
			})
			appendRowLesson(row, &doc.Days[len(doc.Days)-1], kind)
		} else if currentDay >= 0 {
			appendRowLesson(row, &doc.Days[len(doc.Days)-1], kind)
		}
	}

	// Дни без единой пары в документ не попадают.
	var days []models.Day
	for _, d := range doc.Days {
		if len(d.Lessons) > 0 {
			days = append(days, d)
		}
	}
	doc.Days = days

	return doc, nil
}

// dayLabelCell возвращает ячейку-заголовок дня: td.hd, растянутую по строкам
// через rowspan. У ячейки с номером пары тот же класс, но без rowspan.
func dayLabelCell(row *html.Node) *html.Node {
	for _, cell := range findAll(row, "td", "hd") {
		if hasAttr(cell, "rowspan") {
			return cell
		}
	}
	return nil
}

// appendRowLesson извлекает пару из строки таблицы и добавляет её в день.
// Строки без ячейки номера, без ячейки содержимого или с пустым содержимым
// молча пропускаются.
func appendRowLesson(row *html.Node, day *models.Day, kind models.ViewKind) {
	var numCell *html.Node
	for _, cell := range findAll(row, "td", "hd") {
		if !hasAttr(cell, "rowspan") {
			numCell = cell
			break
		}
	}
	if numCell == nil {
		return
	}

	number := 0
	if m := digitsRe.FindString(flatText(numCell)); m != "" {
		number, _ = strconv.Atoi(m)
	}

	cell := findFirst(row, "td", "ur")
	if cell == nil {
		return
	}

	lesson, ok := extractLesson(cell, kind)
	if !ok {
		return
	}

	lesson.Number = number
	shortDay := day.WeekdayIdx == 0
	lesson.TimeStart, lesson.TimeEnd = bells.Lookup(number, shortDay)
	day.Lessons = append(day.Lessons, lesson)
}

func defaultTitle(kind models.ViewKind, name string) string {
	if kind == models.ViewTeacher {
		return "Преподаватель: " + name
	}
	return "Группа: " + name
}
