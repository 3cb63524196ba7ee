package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sappico-be/tc-zutendaal-backend/internals/configs"
	eventroute "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/route"
	lessonroute "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/route"
	newsroute "github.com/sappico-be/tc-zutendaal-backend/internals/features/news/route"
	trainerhoursroute "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/route"
	authroute "github.com/sappico-be/tc-zutendaal-backend/internals/features/users/auth/route"
	userroute "github.com/sappico-be/tc-zutendaal-backend/internals/features/users/users/route"
	"github.com/sappico-be/tc-zutendaal-backend/internals/mailer"
	"github.com/sappico-be/tc-zutendaal-backend/internals/middlewares/auth"
)

// SetupRoutes mounts the three API surfaces:
//
//	/api/public  no auth, visitor-facing
//	/api/u       any signed-in user (members, trainers)
//	/api/a       admins only
func SetupRoutes(app *fiber.App, db *gorm.DB, m mailer.Service) {
	log.Println("[INFO] setting up routes")

	public := app.Group("/api/public")

	user := app.Group("/api/u", auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))

	admin := app.Group("/api/a",
		auth.AuthJWT(auth.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		auth.RequireAdmin(),
	)

	authroute.AuthRoutes(public, user, db)
	userroute.UserAdminRoutes(admin, db)

	newsroute.NewsPublicRoutes(public, db)
	newsroute.NewsAdminRoutes(admin, db)

	eventroute.EventPublicRoutes(public, db, m)
	eventroute.EventUserRoutes(user, db)
	eventroute.EventAdminRoutes(admin, db)

	lessonroute.LessonUserRoutes(user, db, m)
	lessonroute.LessonAdminRoutes(admin, db, m)

	trainerhoursroute.TrainerHoursUserRoutes(user, db)
	trainerhoursroute.TrainerHoursAdminRoutes(admin, db)
}
