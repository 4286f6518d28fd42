package models

// Weekdays — канонические названия дней недели, индекс совпадает с Day.WeekdayIdx.
var Weekdays = [7]string{
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
	"Воскресенье",
}
