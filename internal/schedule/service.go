// Package schedule связывает загрузку, разбор, форматирование и кэширование
// расписаний в один сервис для обработчиков бота.
package schedule

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/espadawo/College-Timetable-Bot/internal/cache"
	"github.com/espadawo/College-Timetable-Bot/internal/models"
	"github.com/espadawo/College-Timetable-Bot/internal/parser"
	"github.com/espadawo/College-Timetable-Bot/internal/render"
)

// Fetcher — внешний загрузчик страниц сайта расписания.
type Fetcher interface {
	SchedulePage(ctx context.Context, file string) (string, error)
	GroupList(ctx context.Context) ([]models.RosterEntry, error)
	TeacherList(ctx context.Context) ([]models.RosterEntry, error)
}

// Service выдаёт готовый текст расписания по (вид, имя).
// Попадание в кэш возвращает текст сразу, без обращения к сайту и разбора.
// Одновременные промахи по одному ключу схлопываются в один проход
// конвейера через singleflight.
type Service struct {
	fetcher Fetcher
	renders *cache.RenderCache
	roster  *cache.RosterCache
	flight  singleflight.Group
}

func NewService(fetcher Fetcher, renders *cache.RenderCache, roster *cache.RosterCache) *Service {
	return &Service{
		fetcher: fetcher,
		renders: renders,
		roster:  roster,
	}
}

// Text возвращает текст расписания группы или преподавателя.
func (s *Service) Text(ctx context.Context, kind models.ViewKind, name string) (string, error) {
	if text, ok := s.renders.Get(kind, name); ok {
		return text, nil
	}

	key := string(kind) + ":" + name
	v, err, _ := s.flight.Do(key, func() (interface{}, error) {
		// Пока мы ждали очереди, ключ мог появиться в кэше.
		if text, ok := s.renders.Get(kind, name); ok {
			return text, nil
		}

		entry, ok := s.findEntry(ctx, kind, name)
		if !ok {
			return nil, notFoundErr(kind, name)
		}

		htmlText, err := s.fetcher.SchedulePage(ctx, entry.File)
		if err != nil {
			return nil, err
		}

		doc, err := parser.Parse(htmlText, kind, name)
		if err != nil {
			return nil, err
		}

		text := render.Render(doc)
		s.renders.Put(kind, name, text)
		log.Printf("Загружено расписание (%s, %s)", kind, name)
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Refresh сбрасывает кэшированный текст и строит его заново.
// Это единственный сценарий повторной загрузки: автоматических ретраев нет.
func (s *Service) Refresh(ctx context.Context, kind models.ViewKind, name string) (string, error) {
	s.renders.Invalidate(kind, name)
	return s.Text(ctx, kind, name)
}

// Roster возвращает список групп или преподавателей, подгружая его с сайта
// при первом обращении.
func (s *Service) Roster(ctx context.Context, kind models.ViewKind) (string, []models.RosterEntry, error) {
	updatedAt, entries := s.roster.Get(kind)
	if len(entries) > 0 {
		return updatedAt, entries, nil
	}
	if err := s.RefreshRoster(ctx, kind); err != nil {
		return "", nil, err
	}
	updatedAt, entries = s.roster.Get(kind)
	return updatedAt, entries, nil
}

// RefreshRoster перечитывает список с сайта и заменяет снимок целиком.
func (s *Service) RefreshRoster(ctx context.Context, kind models.ViewKind) error {
	var (
		entries []models.RosterEntry
		err     error
	)
	if kind == models.ViewTeacher {
		entries, err = s.fetcher.TeacherList(ctx)
	} else {
		entries, err = s.fetcher.GroupList(ctx)
	}
	if err != nil {
		return err
	}
	s.roster.Replace(kind, entries)
	log.Printf("Загружен список %s: %d записей", kind, len(entries))
	return nil
}

func (s *Service) findEntry(ctx context.Context, kind models.ViewKind, name string) (models.RosterEntry, bool) {
	_, entries := s.roster.Get(kind)
	if len(entries) == 0 {
		if err := s.RefreshRoster(ctx, kind); err != nil {
			return models.RosterEntry{}, false
		}
		_, entries = s.roster.Get(kind)
	}
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return models.RosterEntry{}, false
}

func notFoundErr(kind models.ViewKind, name string) error {
	if kind == models.ViewTeacher {
		return fmt.Errorf("Преподаватель %s не найден", name)
	}
	return fmt.Errorf("Группа %s не найдена", name)
}
