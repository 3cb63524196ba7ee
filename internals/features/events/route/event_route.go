package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventcontroller "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/events/controller"
	paymentcontroller "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/payments/controller"
	regcontroller "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/registrations/controller"
	"github.com/sappico-be/tc-zutendaal-backend/internals/mailer"
)

func EventPublicRoutes(public fiber.Router, db *gorm.DB, m mailer.Service) {
	eventCtl := eventcontroller.NewEventController(db)
	regCtl := regcontroller.NewEventRegistrationController(db)
	payCtl := paymentcontroller.NewPaymentController(db, m)

	events := public.Group("/events")
	events.Get("/", eventCtl.PublicList)
	events.Get("/:slug", eventCtl.PublicDetail)
	events.Post("/:id/register", regCtl.Register)

	payments := public.Group("/payments")
	payments.Post("/notification", payCtl.HandleNotification)
	payments.Get("/:orderId/status", payCtl.Status)
}

func EventUserRoutes(user fiber.Router, db *gorm.DB) {
	regCtl := regcontroller.NewEventRegistrationController(db)

	user.Delete("/event-registrations/:registrationId", regCtl.Cancel)
}

func EventAdminRoutes(admin fiber.Router, db *gorm.DB) {
	eventCtl := eventcontroller.NewEventController(db)
	regCtl := regcontroller.NewEventRegistrationController(db)

	events := admin.Group("/events")
	events.Get("/", eventCtl.AdminList)
	events.Post("/", eventCtl.Create)
	events.Put("/:id", eventCtl.Update)
	events.Delete("/:id", eventCtl.Delete)
	events.Get("/:id/registrations", regCtl.AdminList)
	events.Delete("/registrations/:registrationId", regCtl.Cancel)
}
