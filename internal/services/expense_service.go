package services

import (
	"context"
	"math"

	"fleetflow/internal/models"
	"fleetflow/internal/repositories/interfaces"
	"fleetflow/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExpenseService interface {
	// Basic CRUD operations
	RecordExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	GetExpense(ctx context.Context, id primitive.ObjectID) (*models.Expense, error)
	ListExpenses(ctx context.Context, filter *interfaces.ExpenseFilter) ([]*models.Expense, error)
	UpdateExpense(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id primitive.ObjectID) error

	// Reductions
	Summary(ctx context.Context, filter *interfaces.ExpenseFilter) (*ExpenseSummary, error)
	ByVehicle(ctx context.Context) ([]*VehicleExpenseSummary, error)
}

type ExpenseSummary struct {
	Count         int     `json:"count"`
	TotalCost     float64 `json:"total_cost"`
	TotalLiters   float64 `json:"total_liters"`
	TotalDistance float64 `json:"total_distance"`
	// Efficiency is total distance per total liter; zero when undefined.
	Efficiency float64 `json:"efficiency"`
}

type VehicleExpenseSummary struct {
	Vehicle       string  `json:"vehicle"`
	Count         int     `json:"count"`
	TotalCost     float64 `json:"total_cost"`
	TotalLiters   float64 `json:"total_liters"`
	TotalDistance float64 `json:"total_distance"`
	Efficiency    float64 `json:"efficiency"`
}

type expenseService struct {
	expenses interfaces.ExpenseRepository
	logger   *logger.Logger
}

func NewExpenseService(expenses interfaces.ExpenseRepository, log *logger.Logger) ExpenseService {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &expenseService{
		expenses: expenses,
		logger:   log,
	}
}

func (s *expenseService) RecordExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.WithField("expense_id", expense.ID.Hex()).WithField("cost", expense.Cost).Info("expense recorded")
	return expense, nil
}

func (s *expenseService) GetExpense(ctx context.Context, id primitive.ObjectID) (*models.Expense, error) {
	return s.expenses.GetByID(ctx, id)
}

func (s *expenseService) ListExpenses(ctx context.Context, filter *interfaces.ExpenseFilter) ([]*models.Expense, error) {
	return s.expenses.List(ctx, filter)
}

func (s *expenseService) UpdateExpense(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Expense, error) {
	if err := s.expenses.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.expenses.GetByID(ctx, id)
}

func (s *expenseService) DeleteExpense(ctx context.Context, id primitive.ObjectID) error {
	return s.expenses.Delete(ctx, id)
}

func (s *expenseService) Summary(ctx context.Context, filter *interfaces.ExpenseFilter) (*ExpenseSummary, error) {
	expenses, err := s.expenses.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := &ExpenseSummary{Count: len(expenses)}
	for _, e := range expenses {
		summary.TotalCost += e.Cost
		summary.TotalLiters += e.Liters
		summary.TotalDistance += e.Distance
	}
	if summary.TotalLiters > 0 {
		summary.Efficiency = round2(summary.TotalDistance / summary.TotalLiters)
	}

	return summary, nil
}

func (s *expenseService) ByVehicle(ctx context.Context) ([]*VehicleExpenseSummary, error) {
	expenses, err := s.expenses.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	byName := map[string]*VehicleExpenseSummary{}
	var order []string
	for _, e := range expenses {
		group, ok := byName[e.Vehicle]
		if !ok {
			group = &VehicleExpenseSummary{Vehicle: e.Vehicle}
			byName[e.Vehicle] = group
			order = append(order, e.Vehicle)
		}
		group.Count++
		group.TotalCost += e.Cost
		group.TotalLiters += e.Liters
		group.TotalDistance += e.Distance
	}

	summaries := make([]*VehicleExpenseSummary, 0, len(order))
	for _, name := range order {
		group := byName[name]
		if group.TotalLiters > 0 {
			group.Efficiency = round2(group.TotalDistance / group.TotalLiters)
		}
		summaries = append(summaries, group)
	}
	return summaries, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
