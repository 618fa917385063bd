package fiber

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/Mayinja6/mission-games-bh-server/core"
)

// signUp handles POST /api/users
func (a *Adapter) signUp(c fiber.Ctx) error {
	var input core.SignUpInput
	if err := c.Bind().Body(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, token, err := a.auth.SignUp(input)
	if err != nil {
		return err
	}

	a.attachSessionCookie(c, token)
	return c.Status(fiber.StatusCreated).JSON(user)
}

// signIn handles POST /api/users/login
func (a *Adapter) signIn(c fiber.Ctx) error {
	var input core.SignInInput
	if err := c.Bind().Body(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, token, err := a.auth.SignIn(input)
	if err != nil {
		return err
	}

	a.attachSessionCookie(c, token)
	return c.JSON(user)
}

// signOut handles POST /api/users/logout. The token itself stays valid
// until expiry (stateless design); only the cookie is dropped.
func (a *Adapter) signOut(c fiber.Ctx) error {
	clearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "logout successful"})
}

// profile handles GET /api/users/profile
func (a *Adapter) profile(c fiber.Ctx) error {
	user, err := a.auth.Profile(UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// updateProfile handles PATCH /api/users/profile
func (a *Adapter) updateProfile(c fiber.Ctx) error {
	var input core.UpdateProfileInput
	if err := c.Bind().Body(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, err := a.auth.UpdateProfile(UserID(c), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user})
}

// deleteAccount handles DELETE /api/users/profile
func (a *Adapter) deleteAccount(c fiber.Ctx) error {
	if err := a.auth.DeleteAccount(UserID(c)); err != nil {
		return err
	}

	clearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "User deletion successful!"})
}

// listUsers handles GET /api/users
func (a *Adapter) listUsers(c fiber.Ctx) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", core.DefaultPageSize)

	result, err := a.auth.ListUsers(page, limit)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func queryInt(c fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
