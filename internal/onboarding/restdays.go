package onboarding

import (
	"slices"
	"strings"
	"time"
)

const (
	MaxRestDays   = 4
	restDayLayout = "2006-01-02"
)

// RestDayPicker is a bounded selection of calendar dates.
type RestDayPicker struct {
	days []string
}

// NewRestDayPicker selects the given dates, ignoring repeats.
func NewRestDayPicker(dates ...string) (*RestDayPicker, error) {
	p := &RestDayPicker{}
	for _, date := range dates {
		day, err := normalizeDate(date)
		if err != nil {
			return nil, err
		}
		if p.Has(day) {
			continue
		}
		if err := p.Toggle(day); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ParseRestDays reads the comma-joined form stored on the profile.
func ParseRestDays(stored string) (*RestDayPicker, error) {
	var dates []string
	for _, part := range strings.Split(stored, ",") {
		if part = strings.TrimSpace(part); part != "" {
			dates = append(dates, part)
		}
	}
	return NewRestDayPicker(dates...)
}

func (p *RestDayPicker) Has(date string) bool {
	day, err := normalizeDate(date)
	return err == nil && slices.Contains(p.days, day)
}

// Toggle removes a selected date or adds an unselected one. Adding beyond
// MaxRestDays fails and leaves the selection unchanged.
func (p *RestDayPicker) Toggle(date string) error {
	day, err := normalizeDate(date)
	if err != nil {
		return err
	}
	if i := slices.Index(p.days, day); i >= 0 {
		p.days = slices.Delete(p.days, i, i+1)
		return nil
	}
	if len(p.days) >= MaxRestDays {
		return ErrTooManyRestDays
	}
	p.days = append(p.days, day)
	return nil
}

func (p *RestDayPicker) Days() []string {
	days := slices.Clone(p.days)
	slices.Sort(days)
	return days
}

func (p *RestDayPicker) String() string {
	return strings.Join(p.Days(), ",")
}

// normalizeDate accepts a bare date or an RFC 3339 timestamp and keeps the
// calendar day.
func normalizeDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(restDayLayout, value); err == nil {
		return t.Format(restDayLayout), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Format(restDayLayout), nil
	}
	return "", ErrInvalidDate
}
