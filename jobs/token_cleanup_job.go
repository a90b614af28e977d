// File: /jobs/token_cleanup_job.go
package jobs

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"sailshare-api/models"
)

// TokenCleanupJob handles periodic removal of expired email verification tokens
type TokenCleanupJob struct {
	db     *gorm.DB
	ticker *time.Ticker
	done   chan bool
}

// NewTokenCleanupJob creates a new token cleanup job
func NewTokenCleanupJob(db *gorm.DB, interval time.Duration) *TokenCleanupJob {
	return &TokenCleanupJob{
		db:     db,
		ticker: time.NewTicker(interval),
		done:   make(chan bool),
	}
}

// Start begins the cleanup job
func (j *TokenCleanupJob) Start() {
	fmt.Println("Token cleanup job started")

	go func() {
		// Run immediately on start
		j.cleanup()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				fmt.Println("Token cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *TokenCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

// cleanup clears verification tokens that have passed their expiry
func (j *TokenCleanupJob) cleanup() {
	result := j.db.Model(&models.User{}).
		Where("verification_token IS NOT NULL AND verification_token_expires < ?", time.Now()).
		Updates(map[string]interface{}{
			"verification_token":         nil,
			"verification_token_expires": nil,
		})
	if result.Error != nil {
		fmt.Printf("Error during token cleanup: %v\n", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		fmt.Printf("Token cleanup cleared %d expired tokens\n", result.RowsAffected)
	}
}
