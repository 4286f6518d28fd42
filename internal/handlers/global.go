package handlers

import (
	"github.com/espadawo/College-Timetable-Bot/internal/models"
	"github.com/espadawo/College-Timetable-Bot/internal/schedule"
)

// Короткие имена видов расписания для обработчиков.
const (
	groupView   = models.ViewGroup
	teacherView = models.ViewTeacher
)

const (
	// Состояния диалога поиска по спискам
	StateWaitingForGroupQuery   = "waiting_for_group_query"
	StateWaitingForTeacherQuery = "waiting_for_teacher_query"

	// Состояния для администраторов
	StateWaitingForAnnouncement      = "waiting_for_announcement"
	StateWaitingForAnnouncementPhoto = "waiting_for_announcement_photo"
	StateAnnouncementConfirm         = "announcement_confirmation"
	StateWaitingForNewAdmin          = "waiting_for_new_admin"
)

// userStates хранит текущее состояние диалога для каждого чата.
// Обновления обрабатываются последовательно, поэтому карта без мьютекса.
var userStates = make(map[int64]string)

// pendingAnnouncements хранит черновики объявлений до подтверждения рассылки.
var pendingAnnouncements = make(map[int64]announcementDraft)

// service и mainAdminID задаются один раз при старте из main.
var (
	service     *schedule.Service
	mainAdminID int64
)

// Init связывает обработчики с сервисом расписаний и главным администратором.
func Init(s *schedule.Service, adminID int64) {
	service = s
	mainAdminID = adminID
}
