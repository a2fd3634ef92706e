package service

import (
	"context"
	"fmt"
	"time"

	"github.com/qlf-seminar/backend/internal/model"
	"github.com/qlf-seminar/backend/internal/repository"
)

const latestRegistrationsLimit = 9

// DashboardService builds the admin overview.
type DashboardService interface {
	Get(ctx context.Context) (*model.Dashboard, error)
}

type dashboardService struct {
	registrations repository.RegistrationRepository
	messages      repository.MessageRepository
	contestants   repository.ContestantRepository
	panelists     repository.PanelistRepository
	eventDate     time.Time
	now           func() time.Time
}

// NewDashboardService creates a DashboardService counting days down to eventDate.
func NewDashboardService(
	registrations repository.RegistrationRepository,
	messages repository.MessageRepository,
	contestants repository.ContestantRepository,
	panelists repository.PanelistRepository,
	eventDate time.Time,
) DashboardService {
	return &dashboardService{
		registrations: registrations,
		messages:      messages,
		contestants:   contestants,
		panelists:     panelists,
		eventDate:     eventDate,
		now:           time.Now,
	}
}

func (s *dashboardService) Get(ctx context.Context) (*model.Dashboard, error) {
	d := &model.Dashboard{EventDate: s.eventDate.Format("2006-01-02")}

	var err error
	if d.TotalRegistrations, err = s.registrations.Count(ctx); err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}
	if d.TotalMessages, d.UnreadMessages, err = s.messages.Count(ctx); err != nil {
		return nil, fmt.Errorf("count messages: %w", err)
	}
	if d.TotalContestants, err = s.contestants.Count(ctx); err != nil {
		return nil, fmt.Errorf("count contestants: %w", err)
	}
	if d.TotalPanelists, err = s.panelists.Count(ctx); err != nil {
		return nil, fmt.Errorf("count panelists: %w", err)
	}
	if d.LatestRegistrations, err = s.registrations.List(ctx, latestRegistrationsLimit); err != nil {
		return nil, fmt.Errorf("latest registrations: %w", err)
	}
	if d.LatestRegistrations == nil {
		d.LatestRegistrations = []*model.Registration{}
	}
	d.DaysToEvent = daysBetween(s.now(), s.eventDate)
	return d, nil
}

// daysBetween counts calendar days (UTC) from now to event; negative once the event has passed.
func daysBetween(now, event time.Time) int {
	today := now.UTC().Truncate(24 * time.Hour)
	day := time.Date(event.Year(), event.Month(), event.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(today).Hours() / 24)
}
