package services

import (
	"context"
	"testing"
	"time"

	"fleetflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardCounts(t *testing.T) {
	ctx := context.Background()
	vehicles := newFakeVehicleRepo()
	drivers := newFakeDriverRepo()
	trips := newFakeTripRepo()
	maintenance := newFakeMaintenanceRepo()
	expenses := newFakeExpenseRepo()

	for i, status := range []models.VehicleStatus{
		models.VehicleStatusAvailable,
		models.VehicleStatusAvailable,
		models.VehicleStatusOnTrip,
		models.VehicleStatusInShop,
	} {
		require.NoError(t, vehicles.Create(ctx, &models.Vehicle{
			Name: "V", Plate: string(rune('A'+i)) + "-PLATE", Type: models.VehicleTypeTruck,
			Capacity: 1000, Status: status,
		}))
	}

	for i, status := range []models.DriverStatus{
		models.DriverStatusOnDuty,
		models.DriverStatusOffDuty,
		models.DriverStatusSuspended,
	} {
		require.NoError(t, drivers.Create(ctx, &models.Driver{
			Name: "D", License: string(rune('A'+i)) + "-LIC", Category: models.LicenseCategoryLMV, Status: status,
		}))
	}

	for _, status := range []models.TripStatus{
		models.TripStatusDispatched,
		models.TripStatusCompleted,
		models.TripStatusCompleted,
	} {
		require.NoError(t, trips.Create(ctx, &models.Trip{Status: status}))
	}

	svc := NewAnalyticsService(vehicles, drivers, trips, maintenance, expenses, nil, nil)

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.Fleet.Total)
	assert.Equal(t, int64(1), stats.Fleet.Active)
	assert.Equal(t, int64(2), stats.Fleet.Available)
	assert.Equal(t, int64(1), stats.Fleet.InShop)
	assert.Equal(t, 25, stats.Fleet.Utilization)

	assert.Equal(t, int64(3), stats.Trips.Total)
	assert.Equal(t, int64(1), stats.Trips.Dispatched)
	assert.Equal(t, int64(2), stats.Trips.Completed)

	assert.Equal(t, int64(3), stats.Drivers.Total)
	assert.Equal(t, int64(1), stats.Drivers.OnDuty)
	assert.Equal(t, int64(1), stats.Drivers.Suspended)
}

func TestCostReport(t *testing.T) {
	ctx := context.Background()
	vehicles := newFakeVehicleRepo()
	drivers := newFakeDriverRepo()
	trips := newFakeTripRepo()
	maintenance := newFakeMaintenanceRepo()
	expenses := newFakeExpenseRepo()

	atlas := &models.Vehicle{Name: "Atlas", Plate: "MH-40-0001", Type: models.VehicleTypeTruck, Capacity: 5000, Status: models.VehicleStatusAvailable}
	require.NoError(t, vehicles.Create(ctx, atlas))

	require.NoError(t, expenses.Create(ctx, &models.Expense{Vehicle: "Atlas", Distance: 200, Liters: 25, Cost: 2500, Date: time.Now()}))
	require.NoError(t, expenses.Create(ctx, &models.Expense{Vehicle: "Atlas", Distance: 100, Liters: 0, Cost: 500, Date: time.Now()}))
	require.NoError(t, maintenance.Create(ctx, &models.MaintenanceLog{VehicleID: atlas.ID, Type: "Brakes", Cost: 3000, Tech: "Garage", Date: time.Now()}))

	svc := NewAnalyticsService(vehicles, drivers, trips, maintenance, expenses, nil, nil)

	report, err := svc.CostReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, report.Summary.TotalFuelCost)
	assert.Equal(t, 3000.0, report.Summary.TotalMaintenanceCost)
	assert.Equal(t, 6000.0, report.Summary.TotalOperationalCost)

	require.Len(t, report.FuelEfficiency, 1)
	assert.Equal(t, "Atlas", report.FuelEfficiency[0].Vehicle)
	assert.Equal(t, 12.0, report.FuelEfficiency[0].Efficiency)
}

func TestVehicleROI(t *testing.T) {
	ctx := context.Background()
	vehicles := newFakeVehicleRepo()
	drivers := newFakeDriverRepo()
	trips := newFakeTripRepo()
	maintenance := newFakeMaintenanceRepo()
	expenses := newFakeExpenseRepo()

	atlas := &models.Vehicle{Name: "Atlas", Plate: "MH-41-0001", Type: models.VehicleTypeTruck, Capacity: 5000, Status: models.VehicleStatusAvailable, AcquisitionCost: 100000}
	require.NoError(t, vehicles.Create(ctx, atlas))

	require.NoError(t, expenses.Create(ctx, &models.Expense{Vehicle: "Atlas", Cost: 6000, Date: time.Now()}))
	require.NoError(t, maintenance.Create(ctx, &models.MaintenanceLog{VehicleID: atlas.ID, Type: "Service", Cost: 4000, Tech: "Garage", Date: time.Now()}))

	svc := NewAnalyticsService(vehicles, drivers, trips, maintenance, expenses, nil, nil)

	results, err := svc.VehicleROI(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)

	roi := results[0]
	assert.Equal(t, 6000.0, roi.FuelCost)
	assert.Equal(t, 4000.0, roi.MaintenanceCost)
	assert.Equal(t, 10000.0, roi.TotalCost)
	// Assumed margin: revenue = 1.5x cost, so profit is half the cost.
	assert.Equal(t, 5.0, roi.ROI)
}
