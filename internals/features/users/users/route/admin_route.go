package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/sappico-be/tc-zutendaal-backend/internals/features/users/users/controller"
)

// UserAdminRoutes mounts user management under the admin group.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	users := admin.Group("/users")
	users.Get("/", ctl.List)
	users.Post("/", ctl.Create)
	users.Get("/:id", ctl.Detail)
	users.Put("/:id", ctl.Update)
	users.Delete("/:id", ctl.Delete)
}
