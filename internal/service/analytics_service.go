package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/garajhub/admin-panel/internal/model"
	"github.com/garajhub/admin-panel/internal/repository"
	"github.com/rs/zerolog"
)

const (
	newTodayWindow = 100
	activityRate   = 75
	activityItems  = 10
)

var (
	headlineTrends = model.Trends{Users: "+12.5%", Startups: "+8.3%", Active: "+5.2%"}

	distributionLabels = []string{"Faol", "Kutilayotgan", "Yakunlangan", "Rad etilgan"}
	distributionColors = []string{"#000000", "#666666", "#999999", "#CCCCCC"}

	activityTypes   = []string{"user", "startup", "message", "system"}
	activityActions = []string{"yaratildi", "tasdiqlandi", "yangilandi", "o'chirildi", "xabar yuborildi"}
)

// AnalyticsService builds the dashboard counters and chart series.
// Growth and activity series are synthetic and depend only on the clock.
type AnalyticsService struct {
	store    repository.Store
	fallback repository.Store
	now      func() time.Time
	log      zerolog.Logger
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(store, fallback repository.Store, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		store:    store,
		fallback: fallback,
		now:      time.Now,
		log:      log.With().Str("component", "analytics_service").Logger(),
	}
}

// Statistics returns the headline counters. degraded is true when the demo
// data set answered after a live read failed.
func (s *AnalyticsService) Statistics(ctx context.Context) (*model.StatisticsView, bool) {
	view, err := s.statistics(ctx, s.store)
	if err != nil {
		s.log.Error().Err(err).Msg("Statistics read failed, serving demo data")
		view, _ = s.statistics(ctx, s.fallback)
		return view, true
	}
	return view, false
}

func (s *AnalyticsService) statistics(ctx context.Context, store repository.Store) (*model.StatisticsView, error) {
	view := &model.StatisticsView{ActivityRate: activityRate, Trends: headlineTrends}

	stats, err := store.Statistics(ctx)
	if err != nil {
		return view, fmt.Errorf("statistics: %w", err)
	}
	view.Statistics = *stats

	users, err := store.RecentUsers(ctx, newTodayWindow)
	if err != nil {
		return view, fmt.Errorf("recent users: %w", err)
	}
	today := s.now().Format(dateLayout)
	for _, u := range users {
		if u.JoinedAt.In(s.now().Location()).Format(dateLayout) == today {
			view.NewToday++
		}
	}
	return view, nil
}

// UserGrowth returns 7 daily points for period "week" and 30 otherwise,
// oldest first.
func (s *AnalyticsService) UserGrowth(period string) model.Chart {
	now := s.now()
	days := 30
	if period == "week" {
		days = 7
	}

	labels := make([]string, 0, days)
	newUsers := make([]int, 0, days)
	totals := make([]int, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("02.01")
		if period == "week" {
			labels = append(labels, date)
			newUsers = append(newUsers, max(0, (10-i)+(i%3)))
			totals = append(totals, 100+i*5)
			continue
		}
		if i%5 == 0 {
			labels = append(labels, date)
		} else {
			labels = append(labels, "")
		}
		newUsers = append(newUsers, max(0, (15-i/2)+(i%7)))
		totals = append(totals, 100+i*3)
	}

	return model.Chart{
		Labels: labels,
		Datasets: []model.ChartDataset{
			{
				Label:           "Yangi foydalanuvchilar",
				Data:            newUsers,
				BorderColor:     "#000000",
				BackgroundColor: "rgba(0, 0, 0, 0.1)",
				Tension:         0.4,
			},
			{
				Label:           "Jami foydalanuvchilar",
				Data:            totals,
				BorderColor:     "#666666",
				BackgroundColor: "transparent",
				Tension:         0.4,
				Hidden:          true,
			},
		},
	}
}

// StartupDistribution returns the status pie and the total startup count.
func (s *AnalyticsService) StartupDistribution(ctx context.Context) (model.Chart, int, bool) {
	degraded := false
	stats, err := s.store.Statistics(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Distribution read failed, serving demo data")
		degraded = true
		if stats, err = s.fallback.Statistics(ctx); err != nil {
			stats = &model.Statistics{}
		}
	}

	chart := model.Chart{
		Labels: distributionLabels,
		Datasets: []model.ChartDataset{{
			Data: []int{
				stats.ActiveStartups,
				stats.PendingStartups,
				stats.CompletedStartups,
				stats.RejectedStartups,
			},
			BackgroundColor: distributionColors,
			BorderColor:     "#ffffff",
			BorderWidth:     2,
		}},
	}
	return chart, stats.TotalStartups, degraded
}

// Activity returns the synthetic recent-activity feed, newest first.
func (s *AnalyticsService) Activity() []model.ActivityItem {
	items := make([]model.ActivityItem, 0, activityItems)
	for i := 0; i < activityItems; i++ {
		kind := activityTypes[i%len(activityTypes)]
		action := activityActions[i%len(activityActions)]

		timeAgo := "Hozirgina"
		if i > 0 {
			timeAgo = fmt.Sprintf("%d daqiqa oldin", i*2)
		}

		items = append(items, model.ActivityItem{
			ID:          i + 1,
			Type:        kind,
			Action:      action,
			Description: strings.ToUpper(kind[:1]) + kind[1:] + " " + action,
			TimeAgo:     timeAgo,
			Icon:        activityIcon(kind),
		})
	}
	return items
}

func activityIcon(kind string) string {
	switch kind {
	case "user":
		return "user"
	case "startup":
		return "rocket"
	default:
		return "envelope"
	}
}
