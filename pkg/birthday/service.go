package birthday

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/yeargrid/yeargrid/internal/event_bus"
)

var ErrNotFound = errors.New("birthday not found")

// seedBirthdays is the starter collection installed by Seed on an empty store.
var seedBirthdays = []Birthday{
	{Name: "Me", Month: 2, Day: 22, Category: CategorySelf, Year: 2003},
	{Name: "Mom", Month: 5, Day: 12, Category: CategoryFamily},
	{Name: "Dad", Month: 9, Day: 3, Category: CategoryFamily},
	{Name: "Sister", Month: 11, Day: 28, Category: CategoryFamily},
	{Name: "Best Friend", Month: 3, Day: 15, Category: CategoryFriend},
	{Name: "Alex", Month: 7, Day: 22, Category: CategoryFriend},
}

// Service manages the birthday collection through the Repository port and
// announces writes on the event bus.
type Service struct {
	repo Repository
	bus  *event_bus.EventBus
}

func NewService(repo Repository, bus *event_bus.EventBus) *Service {
	return &Service{repo: repo, bus: bus}
}

func (s *Service) List(ctx context.Context) ([]Birthday, error) {
	return s.repo.Load(ctx)
}

// ListOrEmpty degrades a store failure to an empty collection. The wallpaper
// path must keep rendering with zero birthdays rather than fail.
func (s *Service) ListOrEmpty(ctx context.Context) []Birthday {
	birthdays, err := s.repo.Load(ctx)
	if err != nil {
		log.Errorf("Failed to load birthdays, rendering without them: %v", err)
		return []Birthday{}
	}
	return birthdays
}

func (s *Service) Add(ctx context.Context, b Birthday) ([]Birthday, error) {
	birthdays, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load birthdays: %w", err)
	}
	birthdays = append(birthdays, b)
	if err := s.repo.Save(ctx, birthdays); err != nil {
		return nil, fmt.Errorf("failed to save birthdays: %w", err)
	}
	s.announce()
	return birthdays, nil
}

func (s *Service) Remove(ctx context.Context, name string) ([]Birthday, error) {
	birthdays, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load birthdays: %w", err)
	}

	remaining := make([]Birthday, 0, len(birthdays))
	for _, b := range birthdays {
		if b.Name != name {
			remaining = append(remaining, b)
		}
	}
	if len(remaining) == len(birthdays) {
		return nil, ErrNotFound
	}

	if err := s.repo.Save(ctx, remaining); err != nil {
		return nil, fmt.Errorf("failed to save birthdays: %w", err)
	}
	s.announce()
	return remaining, nil
}

// Seed installs the starter collection when the store is empty. It reports
// whether seeding happened.
func (s *Service) Seed(ctx context.Context) ([]Birthday, bool, error) {
	birthdays, err := s.repo.Load(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load birthdays: %w", err)
	}
	if len(birthdays) > 0 {
		return birthdays, false, nil
	}

	if err := s.repo.Save(ctx, seedBirthdays); err != nil {
		return nil, false, fmt.Errorf("failed to seed birthdays: %w", err)
	}
	s.announce()
	return seedBirthdays, true, nil
}

func (s *Service) announce() {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(event_bus.NewEvent(event_bus.BirthdaysUpdated, nil)); err != nil {
		log.Errorf("Failed to publish birthday update: %v", err)
	}
}
