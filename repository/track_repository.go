package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"crate/logger"
	"crate/model"
)

// TrackRepository defines the interface for track data operations.
type TrackRepository interface {
	CreateTrack(ctx context.Context, track *model.Track) (int64, error)
	GetAllTracks(ctx context.Context) ([]*model.Track, error)
	GetTrackByID(ctx context.Context, id int64) (*model.Track, error)
	SearchTracks(ctx context.Context, keyword string) ([]*model.Track, error)
	UpdateTrackField(ctx context.Context, id int64, field model.Field, value interface{}) error
	DeleteTrack(ctx context.Context, id int64) error
}

const selectColumns = `id, track, album, artist, year, genre, comment`

// sqlTrackRepository implements TrackRepository on database/sql. The same
// statements run on MySQL and SQLite.
type sqlTrackRepository struct {
	db    *sql.DB
	table string

	insertQuery string
	selectAll   string
	selectByID  string
	searchQuery string
	deleteQuery string
	updateQuery map[model.Field]string
}

// NewTrackRepository creates a repository bound to conn and table. The
// table name must already be validated (config.Validate).
func NewTrackRepository(conn *sql.DB, table string) TrackRepository {
	r := &sqlTrackRepository{
		db:    conn,
		table: table,
		insertQuery: fmt.Sprintf(`INSERT INTO %s (track, album, artist, year, genre, comment)
			VALUES (?, ?, ?, ?, ?, ?)`, table),
		selectAll:  fmt.Sprintf(`SELECT %s FROM %s ORDER BY id`, selectColumns, table),
		selectByID: fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, selectColumns, table),
		searchQuery: fmt.Sprintf(`SELECT %s FROM %s
			WHERE track LIKE ? ESCAPE '!' OR album LIKE ? ESCAPE '!'
			   OR artist LIKE ? ESCAPE '!' OR genre LIKE ? ESCAPE '!'
			ORDER BY id`, selectColumns, table),
		deleteQuery: fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table),
		updateQuery: make(map[model.Field]string, len(model.EditableFields)),
	}
	// One fixed statement per editable field; nothing else can be updated.
	for _, f := range model.EditableFields {
		r.updateQuery[f] = fmt.Sprintf(`UPDATE %s SET %s = ? WHERE id = ?`, table, f.Column())
	}
	return r
}

// CreateTrack adds a new track and returns the generated id.
func (r *sqlTrackRepository) CreateTrack(ctx context.Context, track *model.Track) (int64, error) {
	if strings.TrimSpace(track.Track) == "" {
		return 0, model.NewError(model.KindInput, "insert", model.ErrTrackRequired)
	}

	res, err := r.db.ExecContext(ctx, r.insertQuery,
		track.Track,
		model.FieldAlbum.Value(track),
		model.FieldArtist.Value(track),
		model.FieldYear.Value(track),
		model.FieldGenre.Value(track),
		model.FieldComment.Value(track),
	)
	if err != nil {
		logger.Error("Insert failed", logger.ErrorField(err))
		return 0, model.NewError(model.KindStatement, "insert",
			fmt.Errorf("failed to execute CreateTrack: %w", err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, model.NewError(model.KindStatement, "insert",
			fmt.Errorf("failed to get last insert ID for CreateTrack: %w", err))
	}
	logger.Info("Track created", logger.Int64("id", id), logger.String("track", track.Track))
	return id, nil
}

// GetAllTracks retrieves all tracks ordered by ascending id.
func (r *sqlTrackRepository) GetAllTracks(ctx context.Context) ([]*model.Track, error) {
	return r.query(ctx, "select all", r.selectAll)
}

// GetTrackByID retrieves a track by its ID. Returns nil, nil when absent.
func (r *sqlTrackRepository) GetTrackByID(ctx context.Context, id int64) (*model.Track, error) {
	track, err := scanTrack(r.db.QueryRowContext(ctx, r.selectByID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Track not found
		}
		return nil, model.NewError(model.KindStatement, "select by id",
			fmt.Errorf("failed to scan track by ID %d: %w", id, err))
	}
	return track, nil
}

// SearchTracks returns tracks whose title, album, artist or genre contain
// keyword. Matching follows the store's collation.
func (r *sqlTrackRepository) SearchTracks(ctx context.Context, keyword string) ([]*model.Track, error) {
	like := "%" + escapeLike(keyword) + "%"
	return r.query(ctx, "search", r.searchQuery, like, like, like, like)
}

// UpdateTrackField sets one whitelisted column. A nil value stores NULL.
func (r *sqlTrackRepository) UpdateTrackField(ctx context.Context, id int64, field model.Field, value interface{}) error {
	query, ok := r.updateQuery[field]
	if !ok {
		return model.NewError(model.KindInput, "update", fmt.Errorf("field %v is not editable", field))
	}
	if field == model.FieldTrack && (value == nil || strings.TrimSpace(fmt.Sprint(value)) == "") {
		return model.NewError(model.KindInput, "update", model.ErrTrackRequired)
	}

	if _, err := r.db.ExecContext(ctx, query, value, id); err != nil {
		logger.Error("Update failed", logger.Int64("id", id), logger.String("column", field.Column()), logger.ErrorField(err))
		return model.NewError(model.KindStatement, "update",
			fmt.Errorf("failed to update %s for track ID %d: %w", field.Column(), id, err))
	}
	logger.Info("Track updated", logger.Int64("id", id), logger.String("column", field.Column()))
	return nil
}

// DeleteTrack permanently removes a track.
func (r *sqlTrackRepository) DeleteTrack(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.deleteQuery, id)
	if err != nil {
		logger.Error("Delete failed", logger.Int64("id", id), logger.ErrorField(err))
		return model.NewError(model.KindStatement, "delete",
			fmt.Errorf("failed to delete track ID %d: %w", id, err))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.NewError(model.KindStatement, "delete", model.ErrTrackNotFound)
	}
	logger.Info("Track deleted", logger.Int64("id", id))
	return nil
}

func (r *sqlTrackRepository) query(ctx context.Context, op, query string, args ...interface{}) ([]*model.Track, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, model.NewError(model.KindStatement, op, fmt.Errorf("failed to query tracks: %w", err))
	}
	defer rows.Close()

	tracks := make([]*model.Track, 0)
	for rows.Next() {
		track, err := scanTrack(rows)
		if err != nil {
			return nil, model.NewError(model.KindStatement, op, fmt.Errorf("failed to scan track: %w", err))
		}
		tracks = append(tracks, track)
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewError(model.KindStatement, op, fmt.Errorf("error during rows iteration: %w", err))
	}
	return tracks, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTrack(s scanner) (*model.Track, error) {
	var (
		track                         model.Track
		album, artist, genre, comment sql.NullString
		year                          sql.NullInt64
	)
	if err := s.Scan(&track.ID, &track.Track, &album, &artist, &year, &genre, &comment); err != nil {
		return nil, err
	}
	track.Album = nullString(album)
	track.Artist = nullString(artist)
	track.Genre = nullString(genre)
	track.Comment = nullString(comment)
	if year.Valid {
		y := int(year.Int64)
		track.Year = &y
	}
	return &track, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// escapeLike makes keyword match literally inside LIKE ... ESCAPE '!'.
func escapeLike(keyword string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(keyword)
}
