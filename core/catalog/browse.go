package catalog

import (
	"context"
	"fmt"
)

// View lists every track.
func (c *Catalog) View(ctx context.Context) error {
	c.console.Banner()
	c.console.Title("All tracks")
	if err := c.listAll(ctx); err != nil {
		return err
	}
	c.console.Pause()
	return nil
}

// Search lists tracks whose title, album, artist or genre contain a keyword.
func (c *Catalog) Search(ctx context.Context) error {
	c.console.Banner()
	c.console.Title("Search tracks")
	c.console.Dim("Type a keyword to search in track/album/artist/genre.")

	keyword, err := c.console.Prompt("Keyword: ")
	if err != nil {
		return err
	}

	tracks, err := c.repo.SearchTracks(ctx, keyword)
	if err != nil {
		c.console.Error(fmt.Sprintf("Search error: %v", err))
		return err
	}
	c.console.Tracks(tracks)
	c.console.Pause()
	return nil
}
