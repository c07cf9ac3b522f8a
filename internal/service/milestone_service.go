// Package service ties people sources, the milestone matcher and metrics
// together for a single run.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/milestones/internal/calendar"
	"github.com/mmynk/milestones/internal/metrics"
	"github.com/mmynk/milestones/internal/milestone"
	"github.com/mmynk/milestones/internal/models"
)

// MilestoneService finds tomorrow's milestones for the people of a source.
type MilestoneService struct {
	source  PeopleSource
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewMilestoneService creates a new MilestoneService. metrics may be nil.
func NewMilestoneService(source PeopleSource, m *metrics.Metrics, logger *slog.Logger) *MilestoneService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MilestoneService{
		source:  source,
		metrics: m,
		logger:  logger,
	}
}

// Tomorrow loads people and returns the milestones falling on today+1.
func (s *MilestoneService) Tomorrow(ctx context.Context, today time.Time) ([]models.Notification, error) {
	start := time.Now()

	people, err := s.source.People(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load people: %w", err)
	}
	s.logger.Debug("People loaded", "count", len(people))

	today = calendar.Truncate(today)
	notifications := milestone.FindTomorrow(people, today)

	s.logger.Info("Milestones checked",
		"today", today.Format(calendar.ISOLayout),
		"people", len(people),
		"found", len(notifications),
	)
	for _, n := range notifications {
		s.logger.Debug("Milestone tomorrow",
			"name", n.Person.Name,
			"label", n.Milestone.Label,
			"date", n.Milestone.Date.Format(calendar.ISOLayout),
		)
	}

	if s.metrics != nil {
		s.metrics.ObserveRun(len(people), len(people)*len(milestone.Rules), len(notifications), start)
	}

	return notifications, nil
}
