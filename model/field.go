package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Field is the closed set of editable columns. Dynamic updates may only
// target one of these; the column name never comes from user input.
type Field int

const (
	FieldTrack Field = iota + 1
	FieldAlbum
	FieldArtist
	FieldYear
	FieldGenre
	FieldComment
)

// EditableFields lists the fields in menu order.
var EditableFields = []Field{FieldTrack, FieldAlbum, FieldArtist, FieldYear, FieldGenre, FieldComment}

var fieldColumns = map[Field]string{
	FieldTrack:   "track",
	FieldAlbum:   "album",
	FieldArtist:  "artist",
	FieldYear:    "year",
	FieldGenre:   "genre",
	FieldComment: "comment",
}

// Column returns the store column name, or "" for an invalid Field.
func (f Field) Column() string {
	return fieldColumns[f]
}

func (f Field) Valid() bool {
	_, ok := fieldColumns[f]
	return ok
}

func (f Field) String() string {
	if c := f.Column(); c != "" {
		return c
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseFieldChoice resolves a 1-based menu ordinal.
func ParseFieldChoice(s string) (Field, error) {
	s = strings.TrimSpace(s)
	if !isDigits(s) {
		return 0, fmt.Errorf("field choice %q is not a number", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > len(EditableFields) {
		return 0, fmt.Errorf("field choice %q is out of range 1-%d", s, len(EditableFields))
	}
	return EditableFields[n-1], nil
}

// Value returns the field's current value as a statement parameter:
// nil for NULL, otherwise a string or an int.
func (f Field) Value(t *Track) interface{} {
	switch f {
	case FieldTrack:
		return t.Track
	case FieldAlbum:
		return ptrValue(t.Album)
	case FieldArtist:
		return ptrValue(t.Artist)
	case FieldYear:
		if t.Year == nil {
			return nil
		}
		return *t.Year
	case FieldGenre:
		return ptrValue(t.Genre)
	case FieldComment:
		return ptrValue(t.Comment)
	}
	return nil
}

// Set applies raw user input to the field. Blank input clears the field.
// Year input must be four digits and track may not be cleared.
func (f Field) Set(t *Track, raw string) error {
	raw = strings.TrimSpace(raw)
	switch f {
	case FieldTrack:
		if raw == "" {
			return ErrTrackRequired
		}
		t.Track = raw
	case FieldAlbum:
		t.Album = OptionalString(raw)
	case FieldArtist:
		t.Artist = OptionalString(raw)
	case FieldYear:
		if raw == "" {
			t.Year = nil
			return nil
		}
		y, err := ParseYear(raw)
		if err != nil {
			return err
		}
		t.Year = &y
	case FieldGenre:
		t.Genre = OptionalString(raw)
	case FieldComment:
		t.Comment = OptionalString(raw)
	default:
		return fmt.Errorf("unknown field %d", int(f))
	}
	return nil
}

func ptrValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
