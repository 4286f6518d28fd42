package parser

import "testing"

func TestResolveWeekdayAbbreviation(t *testing.T) {
	tests := []struct {
		lines    []string
		position int
		want     string
	}{
		// Сокращение побеждает независимо от позиции и регистра.
		{[]string{"1.09", "Пн"}, 5, "Понедельник"},
		{[]string{"1.09", "пн"}, 3, "Понедельник"},
		{[]string{"3.09", "СР"}, 0, "Среда"},
		{[]string{"7.09", "Вс"}, 0, "Воскресенье"},
		// Сокращение с хвостом тоже распознаётся (совпадение по префиксу).
		{[]string{"6.09", "Сб (чётная)"}, 0, "Суббота"},
	}
	for _, tt := range tests {
		if got := resolveWeekday(tt.lines, tt.position); got != tt.want {
			t.Errorf("resolveWeekday(%v, %d) = %s, want %s", tt.lines, tt.position, got, tt.want)
		}
	}
}

func TestResolveWeekdayPositionalFallback(t *testing.T) {
	tests := []struct {
		lines    []string
		position int
		want     string
	}{
		// Нераспознанное сокращение — берём название по позиции.
		{[]string{"1.09", "??"}, 2, "Среда"},
		// Одна строка — сокращения нет вовсе.
		{[]string{"1.09"}, 0, "Понедельник"},
		{nil, 4, "Пятница"},
		// За пределами недели синтезируется подпись.
		{nil, 7, "День 8"},
		{[]string{"x", "y"}, 9, "День 10"},
	}
	for _, tt := range tests {
		if got := resolveWeekday(tt.lines, tt.position); got != tt.want {
			t.Errorf("resolveWeekday(%v, %d) = %s, want %s", tt.lines, tt.position, got, tt.want)
		}
	}
}
