package services

import (
	"context"
	"fmt"

	"github.com/arzan03/BistroAPI/internal/models"
	"github.com/arzan03/BistroAPI/internal/store"
	"github.com/arzan03/BistroAPI/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
)

// AdminStats is the dashboard summary for the admin frontend.
type AdminStats struct {
	Users     int64 `json:"users"`
	MenuItems int64 `json:"menuItems"`
	Payments  int64 `json:"payments"`
	Revenue   int64 `json:"revenue"` // minor currency units
}

type StatsService struct {
	store *store.Store
}

func NewStatsService(st *store.Store) *StatsService {
	return &StatsService{store: st}
}

// Collect gathers the collection counts and total revenue, fanning the
// independent reads out in parallel.
func (s *StatsService) Collect(ctx context.Context) (AdminStats, error) {
	tasks := []utils.ParallelTask{
		func() (interface{}, error) {
			return s.store.Users.CountDocuments(ctx, bson.M{})
		},
		func() (interface{}, error) {
			return s.store.Menu.CountDocuments(ctx, bson.M{})
		},
		func() (interface{}, error) {
			return s.store.Payments.CountDocuments(ctx, bson.M{})
		},
		func() (interface{}, error) {
			var payments []models.Payment
			if err := s.store.Payments.Find(ctx, bson.M{}, &payments); err != nil {
				return nil, err
			}
			revenue := int64(0)
			for _, p := range payments {
				revenue += p.Amount
			}
			return revenue, nil
		},
	}

	results, errs := utils.RunParallelTasks(tasks)
	for _, err := range errs {
		if err != nil {
			return AdminStats{}, fmt.Errorf("failed to collect stats: %w", err)
		}
	}

	return AdminStats{
		Users:     results[0].(int64),
		MenuItems: results[1].(int64),
		Payments:  results[2].(int64),
		Revenue:   results[3].(int64),
	}, nil
}
