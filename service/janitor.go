package service

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"

	"dress-diary/metrics"
)

// StartJanitor schedules the pruning of idle composition sessions and expired
// tokens. The returned scheduler is already running; Stop it on shutdown.
func StartJanitor(schedule string, compositions *CompositionService, auth *AuthService) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		sessions := compositions.PruneIdle()
		tokens := auth.PruneExpired()
		if sessions > 0 {
			metrics.RecordPrunedSessions(sessions)
			log.Infof("🧹 Janitor abandoned %d idle composition sessions", sessions)
		}
		if tokens > 0 {
			log.Debugf("🧹 Janitor removed %d expired tokens", tokens)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid janitor schedule %q: %w", schedule, err)
	}

	c.Start()
	log.Infof("✓ Janitor scheduled: %s", schedule)
	return c, nil
}
