package catalog

import (
	"context"
	"fmt"

	"crate/model"
)

// Add prompts for every field, previews the new row and inserts it on
// confirmation. Blank optional fields become NULL. A year that is not four
// digits is dropped with a warning instead of rejecting the entry.
func (c *Catalog) Add(ctx context.Context) error {
	c.console.Banner()
	c.console.Title("Add a new track")

	title, err := c.console.Prompt("Track: ")
	if err != nil {
		return err
	}
	if title == "" {
		c.console.Error("Track title is required.")
		return inputError("add", model.ErrTrackRequired)
	}
	track := &model.Track{Track: title}

	optional := []struct {
		label string
		field model.Field
	}{
		{"Album (optional): ", model.FieldAlbum},
		{"Artist (optional): ", model.FieldArtist},
		{"Year (YYYY, optional): ", model.FieldYear},
		{"Genre (optional): ", model.FieldGenre},
		{"Comment (optional): ", model.FieldComment},
	}
	for _, o := range optional {
		raw, err := c.console.Prompt(o.label)
		if err != nil {
			return err
		}
		if err := o.field.Set(track, raw); err != nil {
			// only year can fail here
			c.console.Warn("Year must be a 4-digit number (e.g., 1997). Leaving it empty.")
			track.Year = nil
		}
	}

	c.console.Dim("\nReview entry:")
	c.console.Tracks([]*model.Track{track})
	if !c.console.Confirm("Save this entry? [y/N]: ") {
		return c.cancelled("add", "Add cancelled.")
	}

	id, err := c.repo.CreateTrack(ctx, track)
	if err != nil {
		c.console.Error(fmt.Sprintf("Insert error: %v", err))
		return err
	}
	c.console.Success(fmt.Sprintf("Track added successfully! (id %d)", id))
	return nil
}
