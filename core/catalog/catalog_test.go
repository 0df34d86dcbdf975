package catalog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"testing"

	"crate/model"
	"crate/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepository keeps tracks in a map and records every call.
type memoryRepository struct {
	tracks map[int64]*model.Track
	nextID int64
	calls  []string
	fail   error // returned by every mutating call when set
}

func newMemoryRepository(tracks ...*model.Track) *memoryRepository {
	r := &memoryRepository{tracks: map[int64]*model.Track{}}
	for _, t := range tracks {
		r.nextID++
		c := t.Clone()
		c.ID = r.nextID
		r.tracks[c.ID] = c
	}
	r.calls = nil
	return r
}

func (r *memoryRepository) CreateTrack(ctx context.Context, track *model.Track) (int64, error) {
	r.calls = append(r.calls, "CreateTrack")
	if r.fail != nil {
		return 0, r.fail
	}
	r.nextID++
	c := track.Clone()
	c.ID = r.nextID
	r.tracks[c.ID] = c
	return c.ID, nil
}

func (r *memoryRepository) sorted() []*model.Track {
	out := make([]*model.Track, 0, len(r.tracks))
	for _, t := range r.tracks {
		out = append(out, t.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *memoryRepository) GetAllTracks(ctx context.Context) ([]*model.Track, error) {
	r.calls = append(r.calls, "GetAllTracks")
	return r.sorted(), nil
}

func (r *memoryRepository) GetTrackByID(ctx context.Context, id int64) (*model.Track, error) {
	r.calls = append(r.calls, "GetTrackByID")
	if t, ok := r.tracks[id]; ok {
		return t.Clone(), nil
	}
	return nil, nil
}

func (r *memoryRepository) SearchTracks(ctx context.Context, keyword string) ([]*model.Track, error) {
	r.calls = append(r.calls, "SearchTracks")
	out := []*model.Track{}
	for _, t := range r.sorted() {
		for _, v := range []*string{&t.Track, t.Album, t.Artist, t.Genre} {
			if v != nil && strings.Contains(*v, keyword) {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

func (r *memoryRepository) UpdateTrackField(ctx context.Context, id int64, field model.Field, value interface{}) error {
	r.calls = append(r.calls, "UpdateTrackField")
	if r.fail != nil {
		return r.fail
	}
	t := r.tracks[id]
	switch v := value.(type) {
	case nil:
		_ = field.Set(t, "")
	case int:
		y := v
		t.Year = &y
	case string:
		if err := field.Set(t, v); err != nil {
			return err
		}
	}
	return nil
}

func (r *memoryRepository) DeleteTrack(ctx context.Context, id int64) error {
	r.calls = append(r.calls, "DeleteTrack")
	if r.fail != nil {
		return r.fail
	}
	if _, ok := r.tracks[id]; !ok {
		return model.NewError(model.KindStatement, "delete", model.ErrTrackNotFound)
	}
	delete(r.tracks, id)
	return nil
}

func (r *memoryRepository) wrote() bool {
	for _, c := range r.calls {
		switch c {
		case "CreateTrack", "UpdateTrackField", "DeleteTrack":
			return true
		}
	}
	return false
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newCatalog(repo *memoryRepository, input string) (*Catalog, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(repo, ui.NewConsole(strings.NewReader(input), out)), out
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func TestAdd(t *testing.T) {
	repo := newMemoryRepository()
	c, out := newCatalog(repo, lines("Song A", "", "Someone", "1999", "Pop", "", "y"))

	require.NoError(t, c.Add(context.Background()))
	assert.Contains(t, out.String(), "Review entry:")
	assert.Contains(t, out.String(), "Track added successfully! (id 1)")

	stored := repo.tracks[1]
	require.NotNil(t, stored)
	assert.Equal(t, "Song A", stored.Track)
	assert.Nil(t, stored.Album)
	assert.Equal(t, "Someone", *stored.Artist)
	assert.Equal(t, 1999, *stored.Year)
	assert.Nil(t, stored.Comment)
}

func TestAddNonNumericYearIsDropped(t *testing.T) {
	repo := newMemoryRepository()
	c, out := newCatalog(repo, lines("Song", "", "", "abcd", "", "", "yes"))

	require.NoError(t, c.Add(context.Background()))
	assert.Contains(t, out.String(), "Year must be a 4-digit number")
	require.Contains(t, repo.tracks, int64(1))
	assert.Nil(t, repo.tracks[1].Year)
}

func TestAddRequiresTitle(t *testing.T) {
	repo := newMemoryRepository()
	c, out := newCatalog(repo, lines(""))

	err := c.Add(context.Background())
	assert.Equal(t, model.KindInput, model.KindOf(err))
	assert.Contains(t, out.String(), "Track title is required.")
	assert.False(t, repo.wrote())
}

func TestAddDeclined(t *testing.T) {
	repo := newMemoryRepository()
	c, out := newCatalog(repo, lines("Song", "", "", "", "", "", "n"))

	assert.ErrorIs(t, c.Add(context.Background()), ErrCancelled)
	assert.Contains(t, out.String(), "Add cancelled.")
	assert.False(t, repo.wrote())
	assert.Empty(t, repo.tracks)
}

func TestAddStoreFailure(t *testing.T) {
	repo := newMemoryRepository()
	repo.fail = model.NewError(model.KindStatement, "insert", errors.New("disk full"))
	c, out := newCatalog(repo, lines("Song", "", "", "", "", "", "y"))

	err := c.Add(context.Background())
	assert.Equal(t, model.KindStatement, model.KindOf(err))
	assert.Contains(t, out.String(), "Insert error:")
	assert.Contains(t, out.String(), "disk full")
}

func threeTracks() *memoryRepository {
	return newMemoryRepository(
		&model.Track{Track: "One", Album: strPtr("First"), Year: intPtr(2001)},
		&model.Track{Track: "Two", Artist: strPtr("Band")},
		&model.Track{Track: "Three", Genre: strPtr("Jazz")},
	)
}

func TestEditMissingID(t *testing.T) {
	repo := threeTracks()
	c, out := newCatalog(repo, lines("9999"))

	err := c.Edit(context.Background())
	assert.ErrorIs(t, err, model.ErrTrackNotFound)
	assert.Equal(t, model.KindInput, model.KindOf(err))
	assert.Contains(t, out.String(), "No record with that ID.")
	assert.Equal(t, []string{"GetAllTracks", "GetTrackByID"}, repo.calls)
	assert.False(t, repo.wrote())
}

func TestEditInvalidID(t *testing.T) {
	for _, input := range []string{"abc", "0", "-2", ""} {
		repo := threeTracks()
		c, out := newCatalog(repo, lines(input))

		err := c.Edit(context.Background())
		assert.Equal(t, model.KindInput, model.KindOf(err), input)
		assert.Contains(t, out.String(), "Invalid ID.")
		assert.Equal(t, []string{"GetAllTracks"}, repo.calls, input)
	}
}

func TestEditInvalidFieldChoice(t *testing.T) {
	for _, input := range []string{"0", "7", "album"} {
		repo := threeTracks()
		c, out := newCatalog(repo, lines("1", input))

		err := c.Edit(context.Background())
		assert.Equal(t, model.KindInput, model.KindOf(err))
		assert.Contains(t, out.String(), "Invalid choice.")
		assert.False(t, repo.wrote())
	}
}

func TestEditPreviewAndApply(t *testing.T) {
	repo := threeTracks()
	c, out := newCatalog(repo, lines("1", "2", "Greatest Hits", "Y"))

	require.NoError(t, c.Edit(context.Background()))

	text := out.String()
	before := strings.Index(text, "Before:")
	after := strings.Index(text, "After:")
	require.True(t, before >= 0 && after > before)
	assert.Contains(t, text[before:after], "First")
	assert.Contains(t, text[after:], "Greatest Hits")
	assert.Contains(t, text, "Track updated successfully!")

	stored := repo.tracks[1]
	assert.Equal(t, "Greatest Hits", *stored.Album)
	assert.Equal(t, "One", stored.Track)
	assert.Equal(t, 2001, *stored.Year)
}

func TestEditEmptyValueSetsNull(t *testing.T) {
	repo := threeTracks()
	c, _ := newCatalog(repo, lines("1", "4", "", "y"))

	require.NoError(t, c.Edit(context.Background()))
	assert.Nil(t, repo.tracks[1].Year)
	assert.Equal(t, "First", *repo.tracks[1].Album)
}

func TestEditYearValidated(t *testing.T) {
	repo := threeTracks()
	c, out := newCatalog(repo, lines("1", "4", "nineteen", "y"))

	err := c.Edit(context.Background())
	assert.Equal(t, model.KindInput, model.KindOf(err))
	assert.Contains(t, out.String(), "Year must be a 4-digit number")
	assert.False(t, repo.wrote())
	assert.Equal(t, 2001, *repo.tracks[1].Year)
}

func TestEditTitleCannotBeCleared(t *testing.T) {
	repo := threeTracks()
	c, out := newCatalog(repo, lines("2", "1", "", "y"))

	err := c.Edit(context.Background())
	assert.ErrorIs(t, err, model.ErrTrackRequired)
	assert.Contains(t, out.String(), "Track title is required.")
	assert.False(t, repo.wrote())
}

func TestEditDeclined(t *testing.T) {
	repo := threeTracks()
	c, out := newCatalog(repo, lines("1", "2", "New Album", ""))

	assert.ErrorIs(t, c.Edit(context.Background()), ErrCancelled)
	assert.Contains(t, out.String(), "Edit cancelled.")
	assert.False(t, repo.wrote())
	assert.Equal(t, "First", *repo.tracks[1].Album)
}

func TestEditStoreFailure(t *testing.T) {
	repo := threeTracks()
	repo.fail = model.NewError(model.KindStatement, "update", errors.New("lock wait timeout"))
	c, out := newCatalog(repo, lines("3", "5", "Blues", "y"))

	err := c.Edit(context.Background())
	assert.Equal(t, model.KindStatement, model.KindOf(err))
	assert.Contains(t, out.String(), "Update error:")
}

func TestDelete(t *testing.T) {
	repo := threeTracks()
	c, out := newCatalog(repo, lines("2", "yes"))

	require.NoError(t, c.Delete(context.Background()))
	assert.Contains(t, out.String(), "You are about to delete:")
	assert.Contains(t, out.String(), "Track deleted.")
	assert.NotContains(t, repo.tracks, int64(2))
	assert.Len(t, repo.tracks, 2)
}

func TestDeleteDeclinedAndMissing(t *testing.T) {
	repo := threeTracks()
	c, out := newCatalog(repo, lines("2", "no"))
	assert.ErrorIs(t, c.Delete(context.Background()), ErrCancelled)
	assert.Contains(t, out.String(), "Delete cancelled.")
	assert.Len(t, repo.tracks, 3)

	c, out = newCatalog(repo, lines("42"))
	assert.ErrorIs(t, c.Delete(context.Background()), model.ErrTrackNotFound)
	assert.Contains(t, out.String(), "No record with that ID.")
	assert.False(t, repo.wrote())
}

func TestViewAndSearch(t *testing.T) {
	repo := threeTracks()
	c, out := newCatalog(repo, lines(""))
	require.NoError(t, c.View(context.Background()))
	for _, title := range []string{"One", "Two", "Three"} {
		assert.Contains(t, out.String(), title)
	}
	assert.Contains(t, out.String(), "Press Enter to return to menu...")

	c, out = newCatalog(repo, lines("Band", ""))
	require.NoError(t, c.Search(context.Background()))
	assert.Contains(t, out.String(), "Two")
	assert.NotContains(t, out.String(), "Three")

	c, out = newCatalog(repo, lines("nothing here", ""))
	require.NoError(t, c.Search(context.Background()))
	assert.Contains(t, out.String(), ui.NoRecords)
}

func TestViewEmpty(t *testing.T) {
	c, out := newCatalog(newMemoryRepository(), lines(""))
	require.NoError(t, c.View(context.Background()))
	assert.Contains(t, out.String(), ui.NoRecords)
	assert.NotContains(t, out.String(), "+--")
}

func TestWorkflowEndOfInput(t *testing.T) {
	repo := threeTracks()
	c, _ := newCatalog(repo, "1\n")
	assert.ErrorIs(t, c.Edit(context.Background()), io.EOF)
	assert.False(t, repo.wrote())
}
