package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/gameguild/gg-client/internal/client/games"
	pkgapi "github.com/gameguild/gg-client/pkg/api"
)

func (c *Cli) runGames(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: gg games <search|add> [args]")
	}

	switch args[0] {
	case "search":
		return c.runGamesSearch(ctx, args[1:])
	case "add":
		return c.runGamesAdd(ctx)
	default:
		return fmt.Errorf("unknown games subcommand: %s", args[0])
	}
}

func (c *Cli) runGamesSearch(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: gg games search <query>")
	}

	query := strings.Join(args, " ")
	found, err := c.games.Search(ctx, games.SearchOptions{Search: query, Limit: 20})
	if err != nil {
		return err
	}

	if len(found) == 0 {
		c.io.Printf("No games found for %q.\n", query)
		return nil
	}

	c.io.Printf("Found %d game(s):\n", len(found))
	c.io.Println()
	for i, game := range found {
		c.io.Printf("%d. %s\n", i+1, game.Name)
		c.io.Printf("   ID:       %s\n", game.ID)
		if game.Platform != "" {
			c.io.Printf("   Platform: %s\n", game.Platform)
		}
		if len(game.Achievements) > 0 {
			c.io.Printf("   Achievements: %d\n", len(game.Achievements))
		}
		c.io.Println()
	}
	c.io.Println("Use 'gg entries add <id>' to add a game to your backlog.")

	return nil
}

func (c *Cli) runGamesAdd(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	c.io.Println("=== Add Game ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name == "" {
		return fmt.Errorf("game name is required")
	}

	platform, err := c.io.ReadInput("Platform (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read platform: %w", err)
	}

	game, err := c.games.Create(ctx, pkgapi.CreateGameRequest{
		Name:     name,
		Platform: platform,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Game added: %s (id: %s)\n", game.Name, game.ID)
	return nil
}
