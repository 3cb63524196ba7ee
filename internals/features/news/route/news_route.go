package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/sappico-be/tc-zutendaal-backend/internals/features/news/controller"
)

func NewsPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewNewsController(db)

	news := public.Group("/news")
	news.Get("/", ctl.PublicList)
	news.Get("/:slug", ctl.PublicDetail)
}

func NewsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewNewsController(db)

	news := admin.Group("/news")
	news.Get("/", ctl.AdminList)
	news.Post("/", ctl.Create)
	news.Put("/:id", ctl.Update)
	news.Delete("/:id", ctl.Delete)
}
