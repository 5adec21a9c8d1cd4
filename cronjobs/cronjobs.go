// Package cronjobs schedules the periodic refresh of the dashboard's
// remote data snapshot.
package cronjobs

import (
	"log"

	"github.com/robfig/cron/v3"

	"panpath-guardian/gateway"
)

// InitCronJobs starts the background schedule. With no external datastore
// configured each refresh tick logs and leaves the demo data in place.
func InitCronJobs(gw *gateway.Gateway) *cron.Cron {
	log.Println("Starting cron jobs -------------------------------------------------------")
	c := cron.New()

	// Snapshot refresh: every 10 minutes.
	_, err := c.AddFunc("*/10 * * * *", func() {
		log.Println("CronJob: dashboard snapshot refresh running")
		if err := gw.RefreshSnapshot(); err != nil {
			log.Printf("Snapshot refresh failed: %v", err)
		}
	})
	if err != nil {
		log.Println("Error scheduling snapshot refresh:", err)
	}

	c.Start()
	return c
}
