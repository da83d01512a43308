package controllers

import (
	"time"

	"github.com/nevilhulspas/caltrack/models"
	"github.com/nevilhulspas/caltrack/services"
)

// In-memory EntryStore so handler tests never touch Postgres.
type fakeStore struct {
	entries []*models.FoodLog

	insertErr error
	listErr   error
	deleteErr error
	recentErr error

	inserted []*models.FoodLog
	deleted  []string
	listUser string
	listFrom time.Time
}

func (f *fakeStore) Insert(entry *models.FoodLog) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, entry)
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeStore) ListSince(user string, since time.Time) ([]models.FoodLog, error) {
	f.listUser = user
	f.listFrom = since
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.FoodLog, 0)
	for _, e := range f.entries {
		if e.IsDeleted || e.CreatedAt.Before(since) {
			continue
		}
		if user != "" && e.UserName != user {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeStore) SoftDelete(id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	for _, e := range f.entries {
		if e.ID.String() == id {
			e.IsDeleted = true
		}
	}
	return nil
}

func (f *fakeStore) MostRecentFor(user string) (*models.FoodLog, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	var best *models.FoodLog
	for _, e := range f.entries {
		if e.IsDeleted || e.UserName != user {
			continue
		}
		if best == nil || e.CreatedAt.After(best.CreatedAt) {
			best = e
		}
	}
	return best, nil
}

type fakeInferencer struct {
	payload *services.NutritionPayload
	err     error
	calls   int
}

func (f *fakeInferencer) ParseFood(food string) (*services.NutritionPayload, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}
