package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/sappico-be/tc-zutendaal-backend/internals/features/users/auth/controller"
	"github.com/sappico-be/tc-zutendaal-backend/internals/middlewares"
)

// AuthRoutes mounts login on the public group and me/logout on the
// authenticated group.
func AuthRoutes(public fiber.Router, user fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	public.Post("/auth/login", middlewares.LoginRateLimiter(), ctl.Login)

	user.Get("/auth/me", ctl.Me)
	user.Post("/auth/logout", ctl.Logout)
}
