package cron

import (
	"log"
	"time"

	"github.com/delvaty/construccion-easy/internal/application"
)

func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		log.Println("Starting background cleanup task (retention: 30 days)")

		// Run immediately on startup
		if err := auditService.CleanupOldLogs(30); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		// Then run every 24 hours
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			log.Println("Running scheduled audit log cleanup...")
			if err := auditService.CleanupOldLogs(30); err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			} else {
				log.Println("Audit log cleanup completed successfully")
			}
		}
	}()
}

// StartOverdueSweep flags pending payments past their due date once an hour.
func StartOverdueSweep(paymentService *application.PaymentService) {
	go func() {
		if _, err := paymentService.SweepOverdue(); err != nil {
			log.Printf("Failed to sweep overdue payments: %v", err)
		}

		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			n, err := paymentService.SweepOverdue()
			if err != nil {
				log.Printf("Failed to sweep overdue payments: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("Marked %d payments overdue", n)
			}
		}
	}()
}
