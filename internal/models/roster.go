package models

// RosterEntry — элемент списка групп или преподавателей со страницы-оглавления.
// File — относительное имя html-страницы с расписанием этого субъекта.
type RosterEntry struct {
	Name string
	File string
}
