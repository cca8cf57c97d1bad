package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MohamedREDA-24/AI-interview-agent/internal/model"
)

const (
	defaultHorizonDays = 7
	workdayStartHour   = 9
	workdayEndHour     = 17
)

// SlotService seeds the slot pool and answers availability queries.
type SlotService struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

func NewSlotService(store Store, logger *zap.Logger) *SlotService {
	return &SlotService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// EnsureDefaultSlots seeds the store with business-hours slots for the next
// 7 calendar days, one per hour from 09:00 to 17:00, weekdays only. It is a
// no-op whenever any slot row already exists — total count, not count within
// the horizon, so consumed or past-dated pools are never re-seeded.
// Any storage error aborts the whole seed.
func (s *SlotService) EnsureDefaultSlots(ctx context.Context) error {
	var generated int

	err := s.store.InTx(ctx, func(slots SlotStore, _ SessionStore) error {
		count, err := slots.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := s.now()
		base := time.Date(now.Year(), now.Month(), now.Day(), workdayStartHour, 0, 0, 0, now.Location())

		for day := 0; day < defaultHorizonDays; day++ {
			date := base.AddDate(0, 0, day)
			if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}

			for hour := workdayStartHour; hour < workdayEndHour; hour++ {
				start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
				slot := &model.Slot{
					ID:          uuid.NewString(),
					StartTime:   start,
					EndTime:     start.Add(time.Hour),
					IsAvailable: true,
				}
				if err := slots.Create(ctx, slot); err != nil {
					return err
				}
				generated++
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("generate default slots: %w", err)
	}

	if generated > 0 {
		s.logger.Info("Generated default time slots",
			zap.Int("count", generated),
			zap.Int("days", defaultHorizonDays),
		)
	}

	return nil
}

// ListAvailableSlots returns available slots starting strictly after now and
// strictly before now + daysAhead days, ordered by start time.
func (s *SlotService) ListAvailableSlots(ctx context.Context, daysAhead int) ([]*model.Slot, error) {
	now := s.now()
	to := now.Add(time.Duration(daysAhead) * 24 * time.Hour)

	slots, err := s.store.Slots().ListAvailable(ctx, now, to)
	if err != nil {
		return nil, fmt.Errorf("list available slots: %w", err)
	}

	return slots, nil
}
