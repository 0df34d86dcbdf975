package catalog

import (
	"context"
	"errors"
	"fmt"

	"crate/model"
)

// Edit changes a single field of one record. An empty new value clears the
// field; there is no way back out once a field is chosen except declining
// the confirmation.
func (c *Catalog) Edit(ctx context.Context) error {
	c.console.Banner()
	c.console.Title("Edit a track")
	if err := c.listAll(ctx); err != nil {
		return err
	}

	before, err := c.pickRecord(ctx, "edit", "Enter ID to edit: ")
	if err != nil {
		return err
	}

	c.console.Dim("\nChoose a field to edit:")
	for i, f := range model.EditableFields {
		c.console.Println(fmt.Sprintf("%d. %s", i+1, f.Column()))
	}
	choice, err := c.console.Prompt("Field number: ")
	if err != nil {
		return err
	}
	field, err := model.ParseFieldChoice(choice)
	if err != nil {
		c.console.Error("Invalid choice.")
		return inputError("edit", err)
	}

	raw, err := c.console.Prompt(fmt.Sprintf("New value for %s (leave empty to set NULL): ", field.Column()))
	if err != nil {
		return err
	}

	after := before.Clone()
	if err := field.Set(after, raw); err != nil {
		if errors.Is(err, model.ErrTrackRequired) {
			c.console.Error("Track title is required.")
		} else {
			c.console.Error("Year must be a 4-digit number (e.g., 1997).")
		}
		return inputError("edit", err)
	}

	c.console.Dim("\nBefore:")
	c.console.Tracks([]*model.Track{before})
	c.console.Dim("After:")
	c.console.Tracks([]*model.Track{after})

	if !c.console.Confirm("Apply this change? [y/N]: ") {
		return c.cancelled("edit", "Edit cancelled.")
	}

	if err := c.repo.UpdateTrackField(ctx, before.ID, field, field.Value(after)); err != nil {
		c.console.Error(fmt.Sprintf("Update error: %v", err))
		return err
	}
	c.console.Success("Track updated successfully!")
	return nil
}
