package mockdb

import (
	"context"

	"github.com/mww/starter_optimizer/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) SaveWeeklyTotal(ctx context.Context, w *model.WeeklyTotal) error {
	args := db.Called(ctx, w)
	return args.Error(0)
}

func (db *DB) ListWeeklyTotals(ctx context.Context, league model.League) ([]model.WeeklyTotal, error) {
	args := db.Called(ctx, league)

	var res []model.WeeklyTotal
	if args.Get(0) != nil {
		res = args.Get(0).([]model.WeeklyTotal)
	}

	return res, args.Error(1)
}

func (db *DB) Close() {
	db.Called()
}
