package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/zakiachsan/ELC-sub000/app/database"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 9:30 PM (21:30), after the last evening class ends
			if now.Hour() == 21 && now.Minute() == 30 {
				log.Println("Triggering scheduled tasks [21:30]...")

				updated, err := database.MarkPastSessionsCompleted(db, now)
				if err != nil {
					log.Printf("Error completing past sessions: %v", err)
					continue
				}
				if updated > 0 {
					log.Printf("Marked %d past sessions as completed", updated)
				}
			}
		}
	}()
}
