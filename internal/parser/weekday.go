package parser

import (
	"fmt"
	"strings"

	"github.com/espadawo/College-Timetable-Bot/internal/models"
)

// Сокращения дней недели в том виде, в котором их печатает сайт расписания.
// Порядок фиксирован: первое совпадение по префиксу выигрывает.
var weekdayShort = [7]string{"пн", "вт", "ср", "чт", "пт", "сб", "вс"}

// resolveWeekday определяет полное название дня недели по текстовым строкам
// ячейки-заголовка дня. Вторая строка ячейки обычно содержит сокращение
// («Пн», «Вт», ...); если его нет или оно не распознано, берём название по
// позиции дня в таблице, а за пределами недели синтезируем «День N».
func resolveWeekday(lines []string, position int) string {
	if len(lines) >= 2 {
		short := strings.ToLower(lines[1])
		for i, abbr := range weekdayShort {
			if strings.HasPrefix(short, abbr) {
				return models.Weekdays[i]
			}
		}
	}
	if position >= 0 && position < len(models.Weekdays) {
		return models.Weekdays[position]
	}
	return fmt.Sprintf("День %d", position+1)
}
