package services

import (
	"context"
	"testing"
	"time"

	"fleetflow/internal/models"
	"fleetflow/internal/repositories/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedExpenses(t *testing.T, repo *fakeExpenseRepo) {
	t.Helper()
	ctx := context.Background()
	rows := []*models.Expense{
		{Vehicle: "Atlas", Driver: "Ravi", Distance: 300, Liters: 30, Cost: 2800, Date: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)},
		{Vehicle: "Atlas", Driver: "Ravi", Distance: 150, Liters: 20, Cost: 1900, Date: time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)},
		{Vehicle: "Vega", Driver: "Meera", Distance: 90, Liters: 0, Cost: 600, Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, e := range rows {
		require.NoError(t, repo.Create(ctx, e))
	}
}

func TestExpenseSummary(t *testing.T) {
	repo := newFakeExpenseRepo()
	seedExpenses(t, repo)
	svc := NewExpenseService(repo, nil)

	summary, err := svc.Summary(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 5300.0, summary.TotalCost)
	assert.Equal(t, 50.0, summary.TotalLiters)
	assert.Equal(t, 540.0, summary.TotalDistance)
	assert.Equal(t, 10.8, summary.Efficiency)
}

func TestExpenseSummaryFiltered(t *testing.T) {
	repo := newFakeExpenseRepo()
	seedExpenses(t, repo)
	svc := NewExpenseService(repo, nil)

	summary, err := svc.Summary(context.Background(), &interfaces.ExpenseFilter{Vehicle: "Atlas"})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 4700.0, summary.TotalCost)
	assert.Equal(t, 9.0, summary.Efficiency)
}

func TestExpenseSummaryNoLiters(t *testing.T) {
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo, nil)
	require.NoError(t, repo.Create(context.Background(), &models.Expense{Vehicle: "Vega", Distance: 50, Cost: 100}))

	summary, err := svc.Summary(context.Background(), nil)
	require.NoError(t, err)
	// Efficiency is undefined without liters.
	assert.Equal(t, 0.0, summary.Efficiency)
}

func TestExpenseByVehicle(t *testing.T) {
	repo := newFakeExpenseRepo()
	seedExpenses(t, repo)
	svc := NewExpenseService(repo, nil)

	groups, err := svc.ByVehicle(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// Groups preserve first-seen order.
	assert.Equal(t, "Atlas", groups[0].Vehicle)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, 4700.0, groups[0].TotalCost)
	assert.Equal(t, 9.0, groups[0].Efficiency)

	assert.Equal(t, "Vega", groups[1].Vehicle)
	assert.Equal(t, 1, groups[1].Count)
	assert.Equal(t, 0.0, groups[1].Efficiency)
}

func TestExpenseDateRangeFilter(t *testing.T) {
	repo := newFakeExpenseRepo()
	seedExpenses(t, repo)
	svc := NewExpenseService(repo, nil)

	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	expenses, err := svc.ListExpenses(context.Background(), &interfaces.ExpenseFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, 1900.0, expenses[0].Cost)
}

func TestFuelEfficiencyPredicate(t *testing.T) {
	withFuel := &models.Expense{Distance: 120, Liters: 10}
	eff, ok := withFuel.FuelEfficiency()
	assert.True(t, ok)
	assert.Equal(t, 12.0, eff)

	noFuel := &models.Expense{Distance: 120}
	_, ok = noFuel.FuelEfficiency()
	assert.False(t, ok)
}
