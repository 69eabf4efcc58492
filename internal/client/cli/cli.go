// Package cli реализует команды терминального клиента. Каждая команда -
// тонкая обертка над менеджером состояния и ресурсными сервисами;
// весь ввод-вывод идет через iocli.IO, чтобы команды были тестируемы.
package cli

import (
	"github.com/gameguild/gg-client/internal/client/entries"
	"github.com/gameguild/gg-client/internal/client/friends"
	"github.com/gameguild/gg-client/internal/client/games"
	"github.com/gameguild/gg-client/internal/client/iocli"
	"github.com/gameguild/gg-client/internal/client/leaderboard"
	"github.com/gameguild/gg-client/internal/client/state"
)

type Cli struct {
	manager     *state.Manager
	games       *games.Service
	entries     *entries.Service
	friends     *friends.Service
	leaderboard *leaderboard.Service
	io          iocli.IO
}

func New(
	manager *state.Manager,
	gamesService *games.Service,
	entriesService *entries.Service,
	friendsService *friends.Service,
	leaderboardService *leaderboard.Service,
	io iocli.IO,
) *Cli {
	return &Cli{
		manager:     manager,
		games:       gamesService,
		entries:     entriesService,
		friends:     friendsService,
		leaderboard: leaderboardService,
		io:          io,
	}
}

func PrintUsage() {
	stdio := iocli.NewStdio()
	stdio.Println("GameGuild Client")
	stdio.Println()
	stdio.Println("Usage:")
	stdio.Println("  gg [OPTIONS] COMMAND [ARGS]")
	stdio.Println()
	stdio.Println("Options:")
	stdio.Println("  --version        Show version information")
	stdio.Println("  --server URL     Server URL (default: http://localhost:3000)")
	stdio.Println("  --db PATH        Path to local database")
	stdio.Println("  --config PATH    Path to config file")
	stdio.Println()
	stdio.Println("Configuration precedence (highest to lowest):")
	stdio.Println("  1. Command-line flags")
	stdio.Println("  2. GG_* environment variables (GG_SERVER_URL, GG_DB_PATH, ...)")
	stdio.Println("  3. Config file (--config or ~/.config/gg/config.yaml)")
	stdio.Println("  4. Built-in defaults")
	stdio.Println()
	stdio.Println("Commands:")
	stdio.Println("  register                      Register new user")
	stdio.Println("  login                         Login to server")
	stdio.Println("  logout                        Logout from server")
	stdio.Println("  status                        Show authentication and server status")
	stdio.Println("  whoami                        Show current user profile")
	stdio.Println("  profile                       Update profile fields")
	stdio.Println("  account delete                Delete account permanently")
	stdio.Println("  games search <query>          Search game catalog")
	stdio.Println("  games add                     Add game to catalog")
	stdio.Println("  entries list                  List backlog entries")
	stdio.Println("  entries add <game-id>         Add game to backlog")
	stdio.Println("  entries done <entry-id>       Mark entry completed")
	stdio.Println("  entries delete <entry-id>     Delete backlog entry")
	stdio.Println("  friends list                  List friends")
	stdio.Println("  friends requests              List incoming friend requests")
	stdio.Println("  friends add <user-id>         Send friend request")
	stdio.Println("  friends accept <user-id>      Accept friend request")
	stdio.Println("  friends decline <user-id>     Decline friend request")
	stdio.Println("  leaderboard friends|global    Show leaderboard")
	stdio.Println()
	stdio.Println("Examples:")
	stdio.Println("  gg login")
	stdio.Println("  gg games search \"hollow knight\"")
	stdio.Println("  gg entries add 6650a1b2c3d4e5f6a7b8c9d0")
	stdio.Println("  gg leaderboard friends")
	stdio.Println("  gg --server https://api.example.com status")
}
