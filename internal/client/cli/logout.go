package cli

import "context"

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")
	c.io.Println()

	// Локальная сессия чистится всегда; ошибку сервера сообщаем, но
	// состояние уже разлогинено
	if err := c.manager.Logout(ctx); err != nil {
		c.io.Printf("Warning: server logout failed: %v\n", err)
		c.io.Println("Local session has been cleared anyway.")
		return nil
	}

	c.io.Println("✓ Logged out. Local session cleared.")
	return nil
}
