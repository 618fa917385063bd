package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Mayinja6/mission-games-bh-server/core"
)

const localsUserIDKey = "userID"

// requireAuth rejects requests lacking a valid session token. On success
// the resolved user id is stored in the request locals for downstream
// handlers and the admin gate; nothing is written to the response.
func (a *Adapter) requireAuth(c fiber.Ctx) error {
	token := readSessionCookie(c)
	if token == "" {
		return core.ErrNoToken
	}

	userID, err := a.codec.Verify(token)
	if err != nil {
		return core.ErrInvalidToken
	}

	c.Locals(localsUserIDKey, userID)
	return c.Next()
}

// requireAdmin additionally requires the resolved user to carry the admin
// flag. Composed after requireAuth. The flag is read fresh from the store
// on every request so admin changes take effect immediately.
func (a *Adapter) requireAdmin(c fiber.Ctx) error {
	user, err := a.users.GetUserByID(UserID(c))
	if err != nil {
		return err
	}
	if !user.IsAdmin {
		return core.ErrNotAdmin
	}
	return c.Next()
}

// UserID returns the authenticated subject id attached by requireAuth.
func UserID(c fiber.Ctx) string {
	id, _ := c.Locals(localsUserIDKey).(string)
	return id
}
