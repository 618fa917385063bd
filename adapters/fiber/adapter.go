package fiber

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Mayinja6/mission-games-bh-server/core"
)

// Adapter binds the account service to a Fiber application: routes, the
// session cookie transport and the two access gates.
type Adapter struct {
	auth      *core.AuthService
	users     core.UserStorage
	codec     core.SessionCodec
	cookieTTL time.Duration
}

func New(auth *core.AuthService, users core.UserStorage, codec core.SessionCodec, cookieTTL time.Duration) *Adapter {
	return &Adapter{
		auth:      auth,
		users:     users,
		codec:     codec,
		cookieTTL: cookieTTL,
	}
}

// RegisterRoutes mounts the account endpoints under /api/users and installs
// the unmatched-route fallback. Handlers run in declaration order, so gates
// are listed before the handler they guard.
func (a *Adapter) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/users")

	// Public routes
	api.Post("/", a.signUp)
	api.Post("/login", a.signIn)

	// Admin-gated listing
	api.Get("/", a.requireAuth, a.requireAdmin, a.listUsers)

	// Authenticated routes
	api.Post("/logout", a.requireAuth, a.signOut)

	profile := api.Group("/profile", a.requireAuth)
	profile.Get("/", a.profile)
	profile.Patch("/", a.updateProfile)
	profile.Delete("/", a.deleteAccount)

	app.Use(notFound)
}

// notFound terminates unmatched routes through the terminal error handler.
func notFound(c fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound, "Route not found - "+c.OriginalURL())
}
