package services

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	cron "github.com/robfig/cron/v3"
)

// logRetention is how long import error logs are kept before the nightly
// sweep removes them.
const logRetention = 30 * 24 * time.Hour

// StartLogCleanupScheduler purges aged import error logs every night.
func StartLogCleanupScheduler(logDir string) {
	c := cron.New()

	// Run daily at 3 AM
	c.AddFunc("0 3 * * *", func() {
		removed, err := CleanupErrorLogs(logDir, logRetention)
		if err != nil {
			log.Printf("Error log cleanup failed: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("Removed %d old import error logs", removed)
		}
	})

	c.Start()
	log.Println("Error log cleanup scheduler started")
}

// CleanupErrorLogs deletes import error logs older than maxAge and reports
// how many were removed.
func CleanupErrorLogs(logDir string, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "import_errors_") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(logDir, entry.Name())); err != nil {
				log.Printf("Failed to remove old error log %s: %v", entry.Name(), err)
				continue
			}
			removed++
		}
	}
	return removed, nil
}
