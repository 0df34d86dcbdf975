package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Track represents one row of the music catalog.
// Optional columns are pointers; nil means NULL in the store.
type Track struct {
	ID      int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Track   string  `json:"track" gorm:"column:track;size:255;not null"`
	Album   *string `json:"album" gorm:"column:album;size:255"`
	Artist  *string `json:"artist" gorm:"column:artist;size:255"`
	Year    *int    `json:"year" gorm:"column:year;type:year"`
	Genre   *string `json:"genre" gorm:"column:genre;size:100"`
	Comment *string `json:"comment" gorm:"column:comment;type:text"`
}

// Clone returns a deep copy so previews never alias the stored record.
func (t *Track) Clone() *Track {
	c := *t
	c.Album = cloneString(t.Album)
	c.Artist = cloneString(t.Artist)
	c.Genre = cloneString(t.Genre)
	c.Comment = cloneString(t.Comment)
	if t.Year != nil {
		y := *t.Year
		c.Year = &y
	}
	return &c
}

// Cells returns the seven display values in column order.
// Absent values are empty strings; an unsaved track has an empty id cell.
func (t *Track) Cells() []string {
	id := ""
	if t.ID > 0 {
		id = strconv.FormatInt(t.ID, 10)
	}
	year := ""
	if t.Year != nil {
		year = strconv.Itoa(*t.Year)
	}
	return []string{id, t.Track, deref(t.Album), deref(t.Artist), year, deref(t.Genre), deref(t.Comment)}
}

// OptionalString turns blank input into nil.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ParseYear accepts exactly four ASCII digits.
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 || !isDigits(s) {
		return 0, fmt.Errorf("year %q is not a 4-digit number", s)
	}
	return strconv.Atoi(s)
}

// ParseID accepts a positive integer token: digits only, no sign, greater than zero.
func ParseID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if !isDigits(s) {
		return 0, fmt.Errorf("id %q is not a positive integer", s)
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id %q is not a positive integer", s)
	}
	return id, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
