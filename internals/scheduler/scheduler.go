package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	eventmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/events/model"
	schedulemodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/schedules/model"
	reminderservice "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/notifications/service"
	"github.com/sappico-be/tc-zutendaal-backend/internals/mailer"
)

// Start wires the background jobs: the lesson reminder sweep every five
// minutes and nightly housekeeping. Returns the running cron so the caller
// can stop it on shutdown.
func Start(db *gorm.DB, m mailer.Service) *cron.Cron {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	reminders := &reminderservice.ReminderService{DB: db, Mailer: m}
	if _, err := c.AddFunc("*/5 * * * *", func() {
		reminders.Run(time.Now())
	}); err != nil {
		log.Fatalf("[SCHEDULER] add reminder job failed: %v", err)
	}

	if _, err := c.AddFunc("30 2 * * *", func() {
		RunHousekeeping(db, time.Now())
	}); err != nil {
		log.Fatalf("[SCHEDULER] add housekeeping job failed: %v", err)
	}

	c.Start()
	log.Printf("[SCHEDULER] started: reminders every 5m, housekeeping at 02:30")
	return c
}

// RunHousekeeping closes out stale rows: published events whose end date
// has passed become completed, and lesson schedules more than a day old
// that never got attendance are marked completed as well.
func RunHousekeeping(db *gorm.DB, now time.Time) {
	res := db.Model(&eventmodel.EventModel{}).
		Where("event_status = ?", eventmodel.EventStatusPublished).
		Where("event_end_date < ?", now.Format("2006-01-02")).
		Update("event_status", eventmodel.EventStatusCompleted)
	if res.Error != nil {
		log.Printf("[HOUSEKEEPING] event sweep failed: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("[HOUSEKEEPING] completed %d past events", res.RowsAffected)
	}

	cutoff := now.AddDate(0, 0, -1)
	res = db.Model(&schedulemodel.LessonScheduleModel{}).
		Where("lesson_schedule_status = ?", schedulemodel.LessonScheduleStatusScheduled).
		Where("lesson_schedule_date < ?", cutoff.Format("2006-01-02")).
		Update("lesson_schedule_status", schedulemodel.LessonScheduleStatusCompleted)
	if res.Error != nil {
		log.Printf("[HOUSEKEEPING] schedule sweep failed: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("[HOUSEKEEPING] completed %d stale lessons", res.RowsAffected)
	}
}
