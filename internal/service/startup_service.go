package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/garajhub/admin-panel/internal/model"
	"github.com/garajhub/admin-panel/internal/repository"
	"github.com/rs/zerolog"
)

const (
	// perStatusLimit bounds each status fetch of the combined "all" listing.
	perStatusLimit   = 1000
	descriptionLimit = 100

	approveTemplate = "🎉 Tabriklaymiz! Sizning '%s' startupingiz tasdiqlandi!"
	rejectTemplate  = "❌ Sizning '%s' startupingiz rad etildi."
)

// StartupService lists startups and applies the approve/reject transitions.
type StartupService struct {
	store    repository.Store
	fallback repository.Store
	notifier *NotificationService
	events   EventPublisher
	now      func() time.Time
	log      zerolog.Logger
}

// NewStartupService creates a new StartupService.
func NewStartupService(
	store, fallback repository.Store,
	notifier *NotificationService,
	events EventPublisher,
	log zerolog.Logger,
) *StartupService {
	if events == nil {
		events = noopPublisher{}
	}
	return &StartupService{
		store:    store,
		fallback: fallback,
		notifier: notifier,
		events:   events,
		now:      time.Now,
		log:      log.With().Str("component", "startup_service").Logger(),
	}
}

// DemoMode reports whether the panel runs on the demo data set.
func (s *StartupService) DemoMode() bool {
	return s.store.Mode() == repository.ModeDemo
}

// List returns one page of startups. A concrete status pages in the store;
// anything else concatenates every status in StartupStatusOrder and pages locally.
func (s *StartupService) List(ctx context.Context, q model.ListQuery) *model.Page[model.StartupListItem] {
	q.Normalize()

	page, err := s.list(ctx, s.store, q)
	if err != nil {
		s.log.Error().Err(err).Str("status", q.Status).Msg("Startups read failed, serving demo data")
		page, _ = s.list(ctx, s.fallback, q)
		page.Degraded = true
	}
	return page
}

func (s *StartupService) list(ctx context.Context, store repository.Store, q model.ListQuery) (*model.Page[model.StartupListItem], error) {
	result := &model.Page[model.StartupListItem]{
		Items:   []model.StartupListItem{},
		Page:    q.Page,
		PerPage: q.PerPage,
	}

	var startups []model.Startup
	if status, ok := model.ParseStartupStatus(q.Status); ok {
		list, total, err := store.StartupsByStatus(ctx, status, q.Page, q.PerPage)
		if err != nil {
			return result, fmt.Errorf("list %s startups: %w", status, err)
		}
		startups = list
		result.Total = total
	} else {
		var all []model.Startup
		for _, status := range model.StartupStatusOrder {
			list, _, err := store.StartupsByStatus(ctx, status, 1, perStatusLimit)
			if err != nil {
				return result, fmt.Errorf("list %s startups: %w", status, err)
			}
			all = append(all, list...)
		}
		start, end := q.Bounds(len(all))
		startups = all[start:end]
		result.Total = len(all)
	}

	for i := range startups {
		owner := s.owner(ctx, store, startups[i].OwnerID)
		result.Items = append(result.Items, formatStartup(&startups[i], owner))
	}
	return result, nil
}

// Detail returns the full view of one startup. degraded is true when the
// answer came from the demo data set after a live read failed.
func (s *StartupService) Detail(ctx context.Context, id string) (detail *model.StartupDetail, degraded bool, err error) {
	detail, err = s.detail(ctx, s.store, id)
	if err == nil || errors.Is(err, repository.ErrNotFound) {
		return detail, false, err
	}

	s.log.Error().Err(err).Str("startup_id", id).Msg("Startup read failed, serving demo data")
	detail, err = s.detail(ctx, s.fallback, id)
	return detail, true, err
}

func (s *StartupService) detail(ctx context.Context, store repository.Store, id string) (*model.StartupDetail, error) {
	st, err := store.GetStartup(ctx, id)
	if err != nil {
		return nil, err
	}

	d := &model.StartupDetail{
		ID:          st.ID,
		Name:        st.Name,
		Description: st.Description,
		Status:      st.Status,
		StatusText:  st.Status.DecoratedText(),
		CreatedAt:   formatTime(st.CreatedAt, dateTimeLayout),
		StartedAt:   formatOptionalTime(st.StartedAt),
		EndedAt:     formatOptionalTime(st.EndedAt),
		Results:     st.Results,
		GroupLink:   st.GroupLink,
		Logo:        st.Logo,
	}
	if owner := s.owner(ctx, store, st.OwnerID); owner != nil {
		d.Owner = &model.OwnerProfile{
			ID:        userPublicID(owner),
			FirstName: owner.FirstName,
			LastName:  owner.LastName,
			Phone:     owner.Phone,
			Username:  owner.Username,
			Bio:       owner.Bio,
		}
	}
	return d, nil
}

// Approve moves a startup to active and tells its owner.
func (s *StartupService) Approve(ctx context.Context, id, actor string) error {
	return s.transition(ctx, id, actor, model.StartupStatusActive, approveTemplate, "tasdiqlandi")
}

// Reject moves a startup to rejected and tells its owner.
func (s *StartupService) Reject(ctx context.Context, id, actor string) error {
	return s.transition(ctx, id, actor, model.StartupStatusRejected, rejectTemplate, "rad etildi")
}

func (s *StartupService) transition(ctx context.Context, id, actor string, status model.StartupStatus, template, action string) error {
	if err := s.store.UpdateStartupStatus(ctx, id, status); err != nil {
		return err
	}
	s.log.Info().Str("startup_id", id).Str("status", string(status)).Str("by", actor).Msg("Startup status changed")

	name := id
	if st, err := s.store.GetStartup(ctx, id); err == nil {
		name = st.Name
		// Demo owners are not real chats.
		if !s.DemoMode() && st.OwnerID != 0 {
			s.notifier.NotifyOwner(ctx, st.OwnerID, fmt.Sprintf(template, st.Name))
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.log.Error().Err(err).Str("startup_id", id).Msg("Startup reload for notification failed")
	}

	s.events.Publish(model.AdminEvent{
		Type:        "startup",
		Action:      action,
		Description: fmt.Sprintf("%s %s", name, action),
		TargetID:    id,
		Actor:       actor,
		At:          s.now(),
	})
	return nil
}

// owner resolves the weak owner reference. Lookup failures read as a missing owner.
func (s *StartupService) owner(ctx context.Context, store repository.Store, ownerID int64) *model.User {
	if ownerID == 0 {
		return nil
	}
	u, err := store.GetUserByTelegramID(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Warn().Err(err).Int64("owner_id", ownerID).Msg("Owner lookup failed")
		}
		return nil
	}
	return u
}

func formatStartup(st *model.Startup, owner *model.User) model.StartupListItem {
	ownerID := strconv.FormatInt(st.OwnerID, 10)
	return model.StartupListItem{
		ID:          st.ID,
		Name:        st.Name,
		OwnerName:   ownerName(owner, ownerID),
		OwnerID:     ownerID,
		Status:      st.Status,
		StatusText:  st.Status.Text(),
		CreatedAt:   formatTime(st.CreatedAt, dateLayout),
		Description: shortDescription(st.Description),
		MemberCount: st.MemberCount,
	}
}

func ownerName(owner *model.User, ownerID string) string {
	if owner != nil {
		if name := strings.TrimSpace(owner.FirstName + " " + owner.LastName); name != "" {
			return name
		}
	}
	return "User " + ownerID
}

// shortDescription always appends "..." to a non-empty description.
func shortDescription(desc string) string {
	if desc == "" {
		return ""
	}
	runes := []rune(desc)
	if len(runes) > descriptionLimit {
		runes = runes[:descriptionLimit]
	}
	return string(runes) + "..."
}

func userPublicID(u *model.User) string {
	if u.TelegramID != nil {
		return strconv.FormatInt(*u.TelegramID, 10)
	}
	return strconv.FormatInt(u.ID, 10)
}

func formatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Format(dateTimeLayout)
	return &v
}
