package catalog

import (
	"context"
	"fmt"

	"crate/model"
)

// Delete removes one record permanently after showing it.
func (c *Catalog) Delete(ctx context.Context) error {
	c.console.Banner()
	c.console.Title("Delete a track")
	if err := c.listAll(ctx); err != nil {
		return err
	}

	track, err := c.pickRecord(ctx, "delete", "Enter ID to delete: ")
	if err != nil {
		return err
	}

	c.console.Dim("\nYou are about to delete:")
	c.console.Tracks([]*model.Track{track})
	if !c.console.Confirm("This cannot be undone. Proceed? [y/N]: ") {
		return c.cancelled("delete", "Delete cancelled.")
	}

	if err := c.repo.DeleteTrack(ctx, track.ID); err != nil {
		c.console.Error(fmt.Sprintf("Delete error: %v", err))
		return err
	}
	c.console.Success("Track deleted.")
	return nil
}
