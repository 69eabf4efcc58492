package cli

import (
	"context"
	"fmt"
)

// Run диспетчеризует команду. Ошибку печатает и завершает процесс
// вызывающий (cmd/gg).
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "whoami":
		return c.runWhoami(ctx)
	case "profile":
		// Допускаем и "profile", и "profile update"
		if len(args) > 0 && args[0] != "update" {
			return fmt.Errorf("usage: gg profile [update]")
		}
		return c.runProfileUpdate(ctx)
	case "account":
		return c.runAccount(ctx, args)
	case "games":
		return c.runGames(ctx, args)
	case "entries":
		return c.runEntries(ctx, args)
	case "friends":
		return c.runFriends(ctx, args)
	case "leaderboard":
		return c.runLeaderboard(ctx, args)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// requireAuth проверяет аутентификацию до сетевого вызова,
// чтобы дать понятную ошибку вместо 401 от сервера
func (c *Cli) requireAuth() error {
	if !c.manager.Snapshot().Authenticated() {
		return fmt.Errorf("not authenticated. Please run 'gg login' first")
	}
	return nil
}
