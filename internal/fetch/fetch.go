// Package fetch загружает страницы внешнего сайта расписания.
// Сайт отдаёт html в windows-1251, поэтому тело ответа перекодируется
// в UTF-8 здесь же: разбор дальше по конвейеру работает только с UTF-8.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/text/encoding/charmap"

	"github.com/espadawo/College-Timetable-Bot/internal/models"
	"github.com/espadawo/College-Timetable-Bot/internal/parser"
)

const (
	groupListFile   = "cg.htm"
	teacherListFile = "cp.htm"

	requestTimeout = 15 * time.Second
)

// Client — HTTP-клиент сайта расписания.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// SchedulePage загружает страницу расписания по имени файла со страницы-оглавления
// и возвращает её текст в UTF-8.
func (c *Client) SchedulePage(ctx context.Context, file string) (string, error) {
	return c.page(ctx, file)
}

// GroupList загружает и разбирает список всех групп.
func (c *Client) GroupList(ctx context.Context) ([]models.RosterEntry, error) {
	htmlText, err := c.page(ctx, groupListFile)
	if err != nil {
		return nil, err
	}
	return parser.ParseRoster(htmlText, models.ViewGroup)
}

// TeacherList загружает и разбирает список всех преподавателей.
func (c *Client) TeacherList(ctx context.Context) ([]models.RosterEntry, error) {
	htmlText, err := c.page(ctx, teacherListFile)
	if err != nil {
		return nil, err
	}
	return parser.ParseRoster(htmlText, models.ViewTeacher)
}

func (c *Client) page(ctx context.Context, file string) (string, error) {
	url := c.baseURL + "/" + file

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	// Без браузерных заголовков сайт иногда отвечает пустой страницей.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("Ошибка при загрузке страницы: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Ошибка при загрузке страницы: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(charmap.Windows1251.NewDecoder().Reader(resp.Body))
	if err != nil {
		return "", fmt.Errorf("Ошибка при чтении страницы: %w", err)
	}
	return string(body), nil
}
