package database

import (
	"log"

	"github.com/sappico-be/tc-zutendaal-backend/internals/configs"
	eventmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/events/model"
	paymentmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/payments/model"
	eventregmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/registrations/model"
	attendancemodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/attendance/model"
	groupmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/groups/model"
	notificationmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/notifications/model"
	packagemodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/packages/model"
	lessonregmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/registrations/model"
	schedulemodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/schedules/model"
	newsmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/news/model"
	contractmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/contracts/model"
	hourmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/registrations/model"
	summarymodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/summaries/model"
	usermodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/users/users/model"
)

// Migrate keeps the schema in step with the models. Skipped when
// DB_AUTO_MIGRATE=false, for environments that run migrations out of band.
func Migrate() {
	if configs.GetEnv("DB_AUTO_MIGRATE", "true") == "false" {
		log.Println("[DB] auto-migrate disabled")
		return
	}

	err := DB.AutoMigrate(
		&usermodel.UserModel{},
		&newsmodel.NewsModel{},
		&eventmodel.EventModel{},
		&eventregmodel.EventRegistrationModel{},
		&paymentmodel.PaymentModel{},
		&packagemodel.LessonPackageModel{},
		&packagemodel.LessonLocationModel{},
		&groupmodel.LessonGroupModel{},
		&lessonregmodel.LessonRegistrationModel{},
		&schedulemodel.LessonScheduleModel{},
		&schedulemodel.TrainerAvailabilityModel{},
		&attendancemodel.LessonAttendanceModel{},
		&notificationmodel.LessonNotificationModel{},
		&notificationmodel.ReminderSettingModel{},
		&contractmodel.TrainerContractModel{},
		&hourmodel.TrainerHourRegistrationModel{},
		&summarymodel.TrainerHourSummaryModel{},
	)
	if err != nil {
		log.Fatalf("[DB] auto-migrate failed: %v", err)
	}
	log.Println("[DB] schema up to date")
}
