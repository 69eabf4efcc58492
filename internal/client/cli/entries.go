package cli

import (
	"context"
	"fmt"

	"github.com/gameguild/gg-client/internal/client/entries"
	"github.com/gameguild/gg-client/internal/models"
	pkgapi "github.com/gameguild/gg-client/pkg/api"
)

func (c *Cli) runEntries(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: gg entries <list|add|done|delete> [args]")
	}

	switch args[0] {
	case "list":
		return c.runEntriesList(ctx)
	case "add":
		return c.runEntriesAdd(ctx, args[1:])
	case "done":
		return c.runEntriesDone(ctx, args[1:])
	case "delete":
		return c.runEntriesDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown entries subcommand: %s", args[0])
	}
}

func (c *Cli) runEntriesList(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	c.io.Println("=== Backlog ===")
	c.io.Println()

	found, err := c.entries.List(ctx, entries.ListOptions{})
	if err != nil {
		return err
	}

	if len(found) == 0 {
		c.io.Println("Your backlog is empty.")
		c.io.Println()
		c.io.Println("Use 'gg games search' and 'gg entries add <game-id>' to fill it.")
		return nil
	}

	c.io.Printf("Found %d entry(ies):\n", len(found))
	c.io.Println()
	for i, entry := range found {
		c.io.Printf("%d. %s [%s]\n", i+1, c.entryTitle(ctx, &found[i]), entry.Status)
		c.io.Printf("   ID: %s\n", entry.ID)
		if entry.DateStarted != "" {
			c.io.Printf("   Started:  %s\n", entry.DateStarted)
		}
		if entry.DateFinished != "" {
			c.io.Printf("   Finished: %s\n", entry.DateFinished)
		}
		if entry.Notes != "" {
			c.io.Printf("   Notes: %s\n", entry.Notes)
		}
		c.io.Println()
	}

	return nil
}

// entryTitle возвращает имя игры, дозагружая его при необходимости;
// при сбое дозагрузки показываем голый id вместо ошибки
func (c *Cli) entryTitle(ctx context.Context, entry *models.Entry) string {
	if !entry.GameID.Resolved() {
		if err := c.entries.ResolveGame(ctx, entry); err != nil {
			return entry.GameID.ID()
		}
	}
	if game := entry.GameID.Game(); game != nil {
		return game.Name
	}
	return entry.GameID.ID()
}

func (c *Cli) runEntriesAdd(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: gg entries add <game-id>")
	}

	entry, err := c.entries.Create(ctx, pkgapi.CreateEntryRequest{
		GameID: args[0],
		Status: models.EntryStatusBacklog,
	})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Added to backlog: %s (entry id: %s)\n", c.entryTitle(ctx, entry), entry.ID)
	return nil
}

func (c *Cli) runEntriesDone(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: gg entries done <entry-id>")
	}

	status := models.EntryStatusCompleted
	entry, err := c.entries.Update(ctx, args[0], pkgapi.UpdateEntryRequest{Status: &status})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Marked completed: %s\n", c.entryTitle(ctx, entry))
	return nil
}

func (c *Cli) runEntriesDelete(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: gg entries delete <entry-id>")
	}

	ok, err := c.io.Confirm(fmt.Sprintf("Delete entry %s?", args[0]))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println("Aborted.")
		return nil
	}

	if err := c.entries.Delete(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Entry deleted.")
	return nil
}
