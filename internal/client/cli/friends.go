package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runFriends(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: gg friends <list|requests|add|accept|decline> [args]")
	}

	switch args[0] {
	case "list":
		return c.runFriendsList(ctx)
	case "requests":
		return c.runFriendsRequests(ctx)
	case "add":
		return c.runFriendsAdd(ctx, args[1:])
	case "accept":
		return c.runFriendsAccept(ctx, args[1:])
	case "decline":
		return c.runFriendsDecline(ctx, args[1:])
	default:
		return fmt.Errorf("unknown friends subcommand: %s", args[0])
	}
}

func (c *Cli) runFriendsList(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	c.io.Println("=== Friends ===")
	c.io.Println()

	found, err := c.friends.List(ctx)
	if err != nil {
		return err
	}

	if len(found) == 0 {
		c.io.Println("No friends yet.")
		c.io.Println()
		c.io.Println("Use 'gg friends add <user-id>' to send a friend request.")
		return nil
	}

	for i, friend := range found {
		c.io.Printf("%d. %s (id: %s)\n", i+1, friend.DisplayName(), friend.ID)
	}

	return nil
}

func (c *Cli) runFriendsRequests(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	c.io.Println("=== Friend Requests ===")
	c.io.Println()

	found, err := c.friends.Requests(ctx)
	if err != nil {
		return err
	}

	if len(found) == 0 {
		c.io.Println("No pending friend requests.")
		return nil
	}

	for i, req := range found {
		c.io.Printf("%d. %s (user id: %s)\n", i+1, req.From.DisplayName(), req.From.ID)
	}
	c.io.Println()
	c.io.Println("Use 'gg friends accept <user-id>' or 'gg friends decline <user-id>'.")

	return nil
}

func (c *Cli) runFriendsAdd(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: gg friends add <user-id>")
	}

	if err := c.friends.SendRequest(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Friend request sent.")
	return nil
}

func (c *Cli) runFriendsAccept(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: gg friends accept <user-id>")
	}

	if err := c.friends.AcceptRequest(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Friend request accepted.")
	return nil
}

func (c *Cli) runFriendsDecline(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: gg friends decline <user-id>")
	}

	if err := c.friends.DeclineRequest(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Friend request declined.")
	return nil
}
