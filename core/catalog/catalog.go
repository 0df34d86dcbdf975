// Package catalog holds the interactive workflows of the track catalog:
// add, view, search, edit and delete, and the menu that dispatches them.
//
// Every workflow follows the same shape: prompt, preview, confirm, one
// statement through the repository, report. Validation failures and
// statement failures end the workflow with a diagnostic; only the end of
// terminal input is propagated to the menu.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"crate/logger"
	"crate/model"
	"crate/repository"
	"crate/ui"
)

// ErrCancelled is returned when the user declines a confirmation.
var ErrCancelled = errors.New("cancelled by user")

// Catalog binds the workflows to a repository and a console.
type Catalog struct {
	repo    repository.TrackRepository
	console *ui.Console
}

func New(repo repository.TrackRepository, console *ui.Console) *Catalog {
	return &Catalog{repo: repo, console: console}
}

func inputError(op string, err error) error {
	return model.NewError(model.KindInput, op, err)
}

// listAll renders every track so the user can pick an id.
func (c *Catalog) listAll(ctx context.Context) error {
	tracks, err := c.repo.GetAllTracks(ctx)
	if err != nil {
		c.console.Error(fmt.Sprintf("Could not load tracks: %v", err))
		return err
	}
	c.console.Tracks(tracks)
	return nil
}

// pickRecord prompts for an id and loads that record.
func (c *Catalog) pickRecord(ctx context.Context, op, label string) (*model.Track, error) {
	raw, err := c.console.Prompt(label)
	if err != nil {
		return nil, err
	}

	id, err := model.ParseID(raw)
	if err != nil {
		c.console.Error("Invalid ID.")
		return nil, inputError(op, err)
	}

	track, err := c.repo.GetTrackByID(ctx, id)
	if err != nil {
		c.console.Error(fmt.Sprintf("Lookup error: %v", err))
		return nil, err
	}
	if track == nil {
		c.console.Error("No record with that ID.")
		return nil, inputError(op, fmt.Errorf("id %d: %w", id, model.ErrTrackNotFound))
	}
	return track, nil
}

func (c *Catalog) cancelled(op, msg string) error {
	c.console.Error(msg)
	logger.Debug("Workflow cancelled", logger.String("workflow", op))
	return ErrCancelled
}
