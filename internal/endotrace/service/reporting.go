package service

import (
	"context"
	"time"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/store"
)

// DashboardStats aggregates the fleet for the overview page.
type DashboardStats struct {
	Total          int
	StatusCounts   map[domain.EndoscopeState]int
	LocationCounts map[domain.Location]int
}

// ReportingService computes dashboard aggregates over the inventory and the
// report history.
type ReportingService struct {
	Store store.Store
}

// Dashboard returns fleet totals broken down by state and by location.
func (s *ReportingService) Dashboard(ctx context.Context) (DashboardStats, error) {
	byEtat, err := s.Store.Endoscopes().CountByEtat(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	byLoc, err := s.Store.Endoscopes().CountByLocalisation(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	total := 0
	for _, n := range byEtat {
		total += n
	}
	return DashboardStats{
		Total:          total,
		StatusCounts:   byEtat,
		LocationCounts: byLoc,
	}, nil
}

// MalfunctionPercentage returns the broken share of the fleet along with the
// raw counts. An empty fleet reports 0 across the board rather than dividing
// by zero.
func (s *ReportingService) MalfunctionPercentage(ctx context.Context) (float64, int, int, error) {
	byEtat, err := s.Store.Endoscopes().CountByEtat(ctx)
	if err != nil {
		return 0, 0, 0, err
	}

	broken := byEtat[domain.StateBroken]
	total := 0
	for _, n := range byEtat {
		total += n
	}
	if total == 0 {
		return 0, 0, 0, nil
	}
	return float64(broken) / float64(total) * 100, broken, total, nil
}

// RecentBreakdowns lists "en panne" reports from the last N days, most recent
// first. The cutoff is a date boundary, not a rolling timestamp, so a report
// dated exactly N days ago still counts.
func (s *ReportingService) RecentBreakdowns(ctx context.Context, days int) ([]domain.SterilizationReport, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	return s.Store.Reports().RecentBreakdowns(ctx, cutoff)
}
