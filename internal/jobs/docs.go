// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the request path cannot do itself.
//
// # Available Jobs
//
// 1. CartJanitorJob - Runs every minute to dispose cart synchronizers whose
// buyers have gone idle, so abandoned sessions do not pin debounce timers.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager over the synchronizer registry
//	jobManager := jobs.NewJobManager(registry, 30*time.Minute, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An eviction sweep cannot fail; the janitor only logs when it actually
// evicted something. Failed job starts stop any already running jobs.
package jobs
