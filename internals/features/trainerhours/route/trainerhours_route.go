package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contractcontroller "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/contracts/controller"
	hourcontroller "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/registrations/controller"
	summarycontroller "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/summaries/controller"
	"github.com/sappico-be/tc-zutendaal-backend/internals/middlewares/auth"
)

// TrainerHoursUserRoutes mounts the trainer self-service surface: register
// and manage own hours, pull lessons in from the schedule, follow the
// monthly summary.
func TrainerHoursUserRoutes(user fiber.Router, db *gorm.DB) {
	hourCtl := hourcontroller.NewTrainerHourController(db)
	sumCtl := summarycontroller.NewTrainerHourSummaryController(db)

	hours := user.Group("/trainer-hours", auth.RequireTrainerOrAdmin())
	hours.Get("/", hourCtl.List)
	hours.Post("/", hourCtl.Store)
	hours.Put("/:id", hourCtl.Update)
	hours.Delete("/:id", hourCtl.Destroy)
	hours.Post("/import-from-schedule", hourCtl.ImportFromSchedule)

	hours.Get("/summary", sumCtl.GetMonthly)
	hours.Post("/summary/submit", sumCtl.SubmitMonthly)
}

// TrainerHoursAdminRoutes mounts review, contracts and payroll.
func TrainerHoursAdminRoutes(admin fiber.Router, db *gorm.DB) {
	hourCtl := hourcontroller.NewTrainerHourController(db)
	contractCtl := contractcontroller.NewTrainerContractController(db)
	sumCtl := summarycontroller.NewTrainerHourSummaryController(db)

	hours := admin.Group("/trainer-hours")
	hours.Get("/", hourCtl.List)
	hours.Post("/", hourCtl.Store)
	hours.Put("/:id", hourCtl.Update)
	hours.Delete("/:id", hourCtl.Destroy)
	hours.Post("/:id/approve", hourCtl.Approve)
	hours.Post("/:id/reject", hourCtl.Reject)
	hours.Post("/bulk-approve", hourCtl.BulkApprove)
	hours.Post("/import-from-schedule", hourCtl.ImportFromSchedule)

	contracts := admin.Group("/trainer-contracts")
	contracts.Get("/", contractCtl.List)
	contracts.Post("/", contractCtl.Store)
	contracts.Post("/:id/deactivate", contractCtl.Deactivate)

	payroll := admin.Group("/payroll")
	payroll.Get("/overview", sumCtl.PayrollOverview)
	payroll.Get("/summary", sumCtl.GetMonthly)
	payroll.Post("/summaries/:id/approve", sumCtl.Approve)
	payroll.Post("/summaries/:id/mark-paid", sumCtl.MarkAsPaid)
}
