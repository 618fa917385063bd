package fiber

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// SessionCookieName is the fixed, reserved cookie carrying the session
// token.
//
// No Secure/SameSite attributes are set; the original design never
// specified them.
const SessionCookieName = "mission-games-bh"

// attachSessionCookie sets the session cookie on the response. The browser
// expiry tracks the token TTL; the token carries its own expiry as well.
func (a *Adapter) attachSessionCookie(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(a.cookieTTL),
		HTTPOnly: true,
	})
}

// clearSessionCookie overwrites the session cookie with an empty,
// immediately-expiring value. Used on sign-out and account deletion.
func clearSessionCookie(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
	})
}

// readSessionCookie extracts the raw token from the request. An empty
// string means no cookie was sent; that is a normal outcome, not an error.
func readSessionCookie(c fiber.Ctx) string {
	return c.Cookies(SessionCookieName)
}
