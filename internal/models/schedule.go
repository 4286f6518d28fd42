package models

// ViewKind определяет, чьё расписание описывает документ: группы или преподавателя.
// От вида зависит разбор ролевых ссылок в ячейке и формат вывода.
type ViewKind string

const (
	ViewGroup   ViewKind = "group"
	ViewTeacher ViewKind = "teacher"
)

// Lesson — одна пара в расписании.
// Для группы заполняется Teacher, для преподавателя — Groups; Subject обязателен.
type Lesson struct {
	Number    int
	Subject   string
	Teacher   string
	Groups    []string
	Room      string
	TimeStart string
	TimeEnd   string
}

// Day — учебный день с парами в порядке следования строк таблицы.
type Day struct {
	WeekdayIdx int // 0 = понедельник ... 6 = воскресенье
	Weekday    string
	Lessons    []Lesson
}

// ScheduleDocument — нормализованное недельное расписание одной группы
// или одного преподавателя. Days содержит только дни, в которых после
// разбора осталась хотя бы одна пара, по возрастанию WeekdayIdx.
type ScheduleDocument struct {
	Kind       ViewKind
	Name       string
	Title      string
	Days       []Day
	LastUpdate string // текст из div.ref на странице, может быть пустым
}
