package cli

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gameguild/gg-client/internal/client/state"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	st := c.manager.Snapshot()

	switch st.Health {
	case state.HealthOK:
		c.io.Println("Server: reachable")
	case state.HealthError:
		c.io.Println("⚠️  Server: unreachable")
	case state.HealthDev:
		c.io.Println("Server: skipped (dev auth bypass)")
	default:
		c.io.Println("Server: unknown")
	}
	c.io.Println()

	if !st.Authenticated() {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'gg login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	if st.User != nil {
		c.io.Printf("User: %s\n", st.User.DisplayName())
	}

	if expiresAt, ok := tokenExpiry(st.Token); ok {
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		remaining := time.Until(expiresAt)
		if remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("⚠️  Token has expired. Please login again.")
		}
	}

	if st.Err != nil {
		c.io.Println()
		c.io.Printf("Warning: last operation failed: %v\n", st.Err)
	}

	return nil
}

// tokenExpiry достает exp из JWT без проверки подписи: клиент не знает
// серверного секрета, а срок годности нужен только для отображения
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
