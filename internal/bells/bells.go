package bells

import (
	"fmt"
	"strings"
)

// Понедельник в колледже сокращённый: пары короче и их семь.
var monday = [][2]string{
	{"8:30", "9:00"},
	{"9:10", "10:30"},
	{"10:40", "12:00"},
	{"12:20", "13:40"},
	{"13:50", "15:10"},
	{"16:00", "17:20"},
	{"17:30", "18:50"},
}

// Со вторника по субботу действует обычная сетка из шести пар.
var regular = [][2]string{
	{"8:30", "10:00"},
	{"10:10", "11:40"},
	{"12:10", "13:40"},
	{"13:50", "15:20"},
	{"15:30", "17:00"},
	{"17:10", "18:40"},
}

const (
	UnknownTime = "??:??"
)

// Lookup возвращает время начала и конца пары по её номеру (нумерация с 1).
// Для номера вне сетки возвращается заглушка "??:??", а не ошибка:
// расписание с «лишней» парой всё равно должно отображаться.
func Lookup(number int, shortDay bool) (start, end string) {
	table := regular
	if shortDay {
		table = monday
	}
	if number < 1 || number > len(table) {
		return UnknownTime, UnknownTime
	}
	return table[number-1][0], table[number-1][1]
}

// Timetable формирует текст сообщения с расписанием звонков.
func Timetable() string {
	var b strings.Builder
	b.WriteString("🔔 <b>РАСПИСАНИЕ ЗВОНКОВ</b>\n" + strings.Repeat("―", 40) + "\n\n")

	b.WriteString("📅 <b>ПОНЕДЕЛЬНИК (короткий день)</b>\n")
	for i, t := range monday {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, t[0], t[1])
	}
	b.WriteString("• 15:20 — 15:50 — <i>Кураторский час</i>\n")
	b.WriteString(strings.Repeat("―", 30) + "\n\n")

	b.WriteString("📅 <b>ВТОРНИК - СУББОТА</b>\n")
	for i, t := range regular {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, t[0], t[1])
	}
	b.WriteString(strings.Repeat("―", 30) + "\n\n")

	return b.String()
}
