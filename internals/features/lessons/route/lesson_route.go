package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendancecontroller "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/attendance/controller"
	groupcontroller "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/groups/controller"
	notificationcontroller "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/notifications/controller"
	packagecontroller "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/packages/controller"
	registrationcontroller "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/registrations/controller"
	schedulecontroller "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/schedules/controller"
	"github.com/sappico-be/tc-zutendaal-backend/internals/mailer"
	"github.com/sappico-be/tc-zutendaal-backend/internals/middlewares/auth"
)

// LessonUserRoutes mounts what members and trainers reach themselves.
func LessonUserRoutes(user fiber.Router, db *gorm.DB, m mailer.Service) {
	pkgCtl := packagecontroller.NewLessonPackageController(db)
	regCtl := registrationcontroller.NewLessonRegistrationController(db, m)
	schedCtl := schedulecontroller.NewLessonScheduleController(db)
	attCtl := attendancecontroller.NewLessonAttendanceController(db)

	lessons := user.Group("/lessons")
	lessons.Get("/packages", pkgCtl.List)
	lessons.Get("/packages/:id", pkgCtl.Detail)
	lessons.Post("/registrations", regCtl.Create)
	lessons.Get("/schedules", schedCtl.List)
	lessons.Get("/packages/:packageId/users/:userId/attendance", attCtl.UserStats)

	trainer := lessons.Group("", auth.RequireTrainerOrAdmin())
	trainer.Post("/availability", schedCtl.SetAvailability)
	trainer.Get("/availability", schedCtl.GetAvailability)
	trainer.Post("/schedules/:id/attendance", attCtl.Mark)
	trainer.Get("/schedules/:id/attendance", attCtl.ListForSchedule)
}

// LessonAdminRoutes mounts package, group, schedule and notification
// management.
func LessonAdminRoutes(admin fiber.Router, db *gorm.DB, m mailer.Service) {
	pkgCtl := packagecontroller.NewLessonPackageController(db)
	locCtl := packagecontroller.NewLessonLocationController(db)
	groupCtl := groupcontroller.NewLessonGroupController(db)
	regCtl := registrationcontroller.NewLessonRegistrationController(db, m)
	schedCtl := schedulecontroller.NewLessonScheduleController(db)
	attCtl := attendancecontroller.NewLessonAttendanceController(db)
	notifCtl := notificationcontroller.NewLessonNotificationController(db, m)

	lessons := admin.Group("/lessons")

	packages := lessons.Group("/packages")
	packages.Get("/", pkgCtl.List)
	packages.Post("/", pkgCtl.Create)
	packages.Get("/:id", pkgCtl.Detail)
	packages.Put("/:id", pkgCtl.Update)
	packages.Delete("/:id", pkgCtl.Delete)
	packages.Get("/:id/registrations", regCtl.List)
	packages.Post("/:id/payment-reminders", regCtl.SendPaymentReminders)
	packages.Get("/:id/attendance-stats", attCtl.PackageStats)
	packages.Get("/:id/reminder-settings", notifCtl.GetSetting)
	packages.Put("/:id/reminder-settings", notifCtl.UpsertSetting)

	locations := lessons.Group("/locations")
	locations.Get("/", locCtl.List)
	locations.Post("/", locCtl.Create)
	locations.Put("/:id", locCtl.Update)
	locations.Delete("/:id", locCtl.Delete)

	groups := lessons.Group("/groups")
	groups.Get("/", groupCtl.List)
	groups.Post("/", groupCtl.Create)
	groups.Get("/:id", groupCtl.Detail)
	groups.Put("/:id", groupCtl.Update)
	groups.Delete("/:id", groupCtl.Delete)
	groups.Post("/:id/assign", groupCtl.Assign)
	groups.Delete("/:id/registrations/:registrationId", groupCtl.Unassign)
	groups.Post("/:id/generate-schedules", schedCtl.Generate)
	groups.Get("/:id/attendance-stats", attCtl.GroupStats)

	schedules := lessons.Group("/schedules")
	schedules.Get("/", schedCtl.List)
	schedules.Put("/:id", schedCtl.Update)
	schedules.Post("/:id/cancel", schedCtl.Cancel)
	schedules.Post("/:id/notify", notifCtl.NotifyGroup)
	schedules.Get("/:id/notifications", notifCtl.History)

	registrations := lessons.Group("/registrations")
	registrations.Post("/:id/mark-paid", regCtl.MarkPaid)
	registrations.Post("/:id/payment-reminder", regCtl.SendPaymentReminder)

	lessons.Get("/availability", schedCtl.GetAvailability)
}
