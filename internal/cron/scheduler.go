package cron

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vta-edu/schedule-back/internal/db"
	"github.com/vta-edu/schedule-back/internal/schedule"
)

func StartJobs() {
	c := cron.New()

	// Roll session statuses once a day: past sessions complete,
	// today's go ongoing. Manual off/makeup markers are untouched.
	c.AddFunc("@daily", func() {
		log.Println("Running status roll job...")

		sessions, err := db.ListSessions(context.Background())
		if err != nil {
			log.Println("❌ Failed to load sessions:", err)
			return
		}

		now := time.Now()
		updated := 0
		for _, s := range sessions {
			next := schedule.DetermineStatus(s.Date, s.Status, now)
			if next == s.Status {
				continue
			}
			if err := db.UpdateSession(context.Background(), s.ID, map[string]interface{}{"status": next}); err != nil {
				log.Printf("❌ Failed to update session %s: %v\n", s.ID, err)
				continue
			}
			updated++
		}

		log.Printf("✅ Rolled %d session statuses\n", updated)
	})

	c.Start()
}
