package services

import (
	"database/sql"
	"log"
	"time"

	"hillcrest-academy/app/database"
	"hillcrest-academy/pkg/timeutil"
)

// StartScheduler starts the background task scheduler.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 10:00 PM (22:00)
			if now.Hour() == 22 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [22:00]...")

				// Flip detentions still scheduled for a past day to missed.
				swept, err := database.MarkOverdueDetentionsMissed(db, timeutil.StartOfDay(now))
				if err != nil {
					log.Printf("Error sweeping overdue detentions: %v", err)
				} else if swept > 0 {
					log.Printf("Marked %d overdue detentions as missed", swept)
				}
			}
		}
	}()
}
