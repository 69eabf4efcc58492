package cli

import (
	"context"
	"fmt"

	pkgapi "github.com/gameguild/gg-client/pkg/api"
)

func (c *Cli) runWhoami(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	user, err := c.manager.RefreshUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	c.io.Println("=== Profile ===")
	c.io.Println()
	c.io.Printf("ID:       %s\n", user.ID)
	c.io.Printf("Username: %s\n", user.Username)
	c.io.Printf("Email:    %s\n", user.Email)
	if user.Bio != "" {
		c.io.Printf("Bio:      %s\n", user.Bio)
	}
	if user.AvatarURL != "" {
		c.io.Printf("Avatar:   %s\n", user.AvatarURL)
	}
	c.io.Printf("Friends:  %d\n", len(user.Friends))

	return nil
}

// runProfileUpdate обновляет профиль интерактивно; пустой ввод
// оставляет поле без изменений
func (c *Cli) runProfileUpdate(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	c.io.Println("=== Update Profile ===")
	c.io.Println("Leave a field empty to keep its current value.")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	bio, err := c.io.ReadInput("Bio: ")
	if err != nil {
		return fmt.Errorf("failed to read bio: %w", err)
	}
	avatarURL, err := c.io.ReadInput("Avatar URL: ")
	if err != nil {
		return fmt.Errorf("failed to read avatar url: %w", err)
	}

	req := pkgapi.UpdateProfileRequest{}
	if username != "" {
		req.Username = &username
	}
	if bio != "" {
		req.Bio = &bio
	}
	if avatarURL != "" {
		req.AvatarURL = &avatarURL
	}
	if req.Username == nil && req.Bio == nil && req.AvatarURL == nil {
		c.io.Println("Nothing to update.")
		return nil
	}

	user, err := c.manager.UpdateProfile(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Profile updated for %s\n", user.DisplayName())
	return nil
}

func (c *Cli) runAccount(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] != "delete" {
		return fmt.Errorf("usage: gg account delete")
	}
	return c.runAccountDelete(ctx)
}

func (c *Cli) runAccountDelete(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	c.io.Println("=== Delete Account ===")
	c.io.Println()
	c.io.Println("⚠️  This permanently deletes your account and backlog.")

	ok, err := c.io.Confirm("Delete account?")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println("Aborted.")
		return nil
	}

	if err := c.manager.DeleteAccount(ctx); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Account deleted. Local session cleared.")
	return nil
}
