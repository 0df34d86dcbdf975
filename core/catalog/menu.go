package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"

	"crate/logger"
	"crate/model"
)

type menuEntry struct {
	key   string
	label string
	run   func(*Catalog, context.Context) error
}

// exit has no run function.
var menu = []menuEntry{
	{"1", "Add track", (*Catalog).Add},
	{"2", "View tracks", (*Catalog).View},
	{"3", "Search tracks", (*Catalog).Search},
	{"4", "Edit track", (*Catalog).Edit},
	{"5", "Delete track", (*Catalog).Delete},
	{"6", "Exit", nil},
}

// Run loops over the menu until the user exits or input ends. Workflow
// failures are reported by the workflow itself and never stop the loop;
// only a fatal error is returned.
func (c *Catalog) Run(ctx context.Context) error {
	for {
		c.console.Banner()
		c.console.Title("Choose an option by number:")
		for _, e := range menu {
			c.console.Println(fmt.Sprintf("%s. %s", e.key, e.label))
		}

		choice, err := c.console.Prompt("Your choice: ")
		if err != nil {
			return c.goodbye(err)
		}

		entry, ok := lookup(choice)
		if !ok {
			c.console.Error(fmt.Sprintf("Invalid choice. Please select 1-%d.", len(menu)))
			continue
		}
		if entry.run == nil {
			return c.goodbye(nil)
		}

		err = entry.run(c, ctx)
		switch {
		case err == nil, errors.Is(err, ErrCancelled):
		case errors.Is(err, io.EOF):
			return c.goodbye(err)
		case model.IsFatal(err):
			return err
		default:
			logger.Debug("Workflow ended with error",
				logger.String("workflow", entry.label),
				logger.String("kind", model.KindOf(err).String()),
				logger.ErrorField(err))
		}
	}
}

func lookup(choice string) (menuEntry, bool) {
	for _, e := range menu {
		if e.key == choice {
			return e, true
		}
	}
	return menuEntry{}, false
}

// goodbye ends the session. End of input counts as exit.
func (c *Catalog) goodbye(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	c.console.Success("Goodbye!")
	return nil
}
