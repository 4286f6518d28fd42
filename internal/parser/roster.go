package parser

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/espadawo/College-Timetable-Bot/internal/models"
)

// Фамилии-заглушки, которыми сайт помечает вакантные ставки.
// В списке преподавателей им делать нечего.
var vacancyNames = map[string]bool{
	"ваканс":   true,
	"вакансия": true,
}

// ParseRoster разбирает страницу-оглавление (cg.htm для групп, cp.htm для
// преподавателей): таблица table.inf, в каждой строке ссылка a.z0 с именем
// и адресом страницы расписания. Первая строка таблицы — шапка.
func ParseRoster(htmlText string, kind models.ViewKind) ([]models.RosterEntry, error) {
	root, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return nil, err
	}

	table := findFirst(root, "table", "inf")
	if table == nil {
		return nil, ErrNoScheduleTable
	}

	var entries []models.RosterEntry
	rows := findAll(table, "tr", "")
	if len(rows) > 0 {
		rows = rows[1:]
	}
	for _, row := range rows {
		link := findFirst(row, "a", "z0")
		if link == nil {
			continue
		}
		name := strings.TrimSpace(flatText(link))
		if name == "" {
			continue
		}
		if kind == models.ViewTeacher && vacancyNames[strings.ToLower(name)] {
			continue
		}
		href, _ := attrValue(link, "href")
		entries = append(entries, models.RosterEntry{
			Name: name,
			File: rosterFile(href),
		})
	}
	return entries, nil
}

// rosterFile приводит href ссылки к имени файла страницы расписания.
// Абсолютные адреса остаются как есть.
func rosterFile(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	if i := strings.LastIndex(href, "/"); i >= 0 {
		return href[i+1:]
	}
	return href
}
