package sightings

import (
	"fmt"
	"time"
)

// DateLayout es el formato de fecha en la API y en los stores (ISO-8601, sin hora).
const DateLayout = "2006-01-02"

// Date es una fecha de calendario sin hora ni zona.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

// DateOf toma la fecha de t en su propia zona.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Time devuelve la medianoche UTC de d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// Between es inclusivo en ambos extremos.
func (d Date) Between(start, end Date) bool {
	return !d.Before(start) && !d.After(end)
}
