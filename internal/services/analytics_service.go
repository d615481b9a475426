package services

import (
	"context"
	"math"
	"time"

	"fleetflow/internal/models"
	"fleetflow/internal/repositories/interfaces"
	"fleetflow/pkg/logger"
)

type AnalyticsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	CostReport(ctx context.Context) (*CostReport, error)
	VehicleROI(ctx context.Context) ([]*VehicleROI, error)
}

type DashboardStats struct {
	Fleet   FleetStats   `json:"fleet"`
	Trips   TripStats    `json:"trips"`
	Drivers DriverCounts `json:"drivers"`
}

type FleetStats struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Available int64 `json:"available"`
	InShop    int64 `json:"in_shop"`
	// Utilization is the share of the fleet currently on a trip, in percent.
	Utilization int `json:"utilization"`
}

type TripStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	Dispatched int64 `json:"dispatched"`
	Completed  int64 `json:"completed"`
}

type DriverCounts struct {
	Total     int64 `json:"total"`
	OnDuty    int64 `json:"on_duty"`
	Suspended int64 `json:"suspended"`
}

type CostReport struct {
	Summary        CostSummary             `json:"summary"`
	FuelEfficiency []VehicleFuelEfficiency `json:"fuel_efficiency"`
}

type CostSummary struct {
	TotalFuelCost        float64 `json:"total_fuel_cost"`
	TotalMaintenanceCost float64 `json:"total_maintenance_cost"`
	TotalOperationalCost float64 `json:"total_operational_cost"`
}

type VehicleFuelEfficiency struct {
	Vehicle    string  `json:"vehicle"`
	Efficiency float64 `json:"efficiency"`
}

type VehicleROI struct {
	Vehicle         string  `json:"vehicle"`
	FuelCost        float64 `json:"fuel_cost"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	TotalCost       float64 `json:"total_cost"`
	AcquisitionCost float64 `json:"acquisition_cost"`
	ROI             float64 `json:"roi"`
}

const dashboardCacheKey = "analytics_dashboard"

type analyticsService struct {
	vehicles    interfaces.VehicleRepository
	drivers     interfaces.DriverRepository
	trips       interfaces.TripRepository
	maintenance interfaces.MaintenanceRepository
	expenses    interfaces.ExpenseRepository
	cache       CacheService
	logger      *logger.Logger
}

func NewAnalyticsService(
	vehicles interfaces.VehicleRepository,
	drivers interfaces.DriverRepository,
	trips interfaces.TripRepository,
	maintenance interfaces.MaintenanceRepository,
	expenses interfaces.ExpenseRepository,
	cache CacheService,
	log *logger.Logger,
) AnalyticsService {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &analyticsService{
		vehicles:    vehicles,
		drivers:     drivers,
		trips:       trips,
		maintenance: maintenance,
		expenses:    expenses,
		cache:       cache,
		logger:      log,
	}
}

func (s *analyticsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	if s.cache != nil {
		var cached DashboardStats
		if err := s.cache.Get(ctx, dashboardCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := &DashboardStats{}

	var err error
	if stats.Fleet.Total, err = s.vehicles.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Fleet.Active, err = s.vehicles.CountByStatus(ctx, models.VehicleStatusOnTrip); err != nil {
		return nil, err
	}
	if stats.Fleet.Available, err = s.vehicles.CountByStatus(ctx, models.VehicleStatusAvailable); err != nil {
		return nil, err
	}
	if stats.Fleet.InShop, err = s.vehicles.CountByStatus(ctx, models.VehicleStatusInShop); err != nil {
		return nil, err
	}
	if stats.Fleet.Total > 0 {
		stats.Fleet.Utilization = int(math.Round(float64(stats.Fleet.Active) / float64(stats.Fleet.Total) * 100))
	}

	if stats.Trips.Total, err = s.trips.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Trips.Pending, err = s.trips.CountByStatus(ctx, models.TripStatusDraft); err != nil {
		return nil, err
	}
	if stats.Trips.Dispatched, err = s.trips.CountByStatus(ctx, models.TripStatusDispatched); err != nil {
		return nil, err
	}
	if stats.Trips.Completed, err = s.trips.CountByStatus(ctx, models.TripStatusCompleted); err != nil {
		return nil, err
	}

	if stats.Drivers.Total, err = s.drivers.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Drivers.OnDuty, err = s.drivers.CountByStatus(ctx, models.DriverStatusOnDuty); err != nil {
		return nil, err
	}
	if stats.Drivers.Suspended, err = s.drivers.CountByStatus(ctx, models.DriverStatusSuspended); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, dashboardCacheKey, stats, time.Minute)
	}

	return stats, nil
}

func (s *analyticsService) CostReport(ctx context.Context) (*CostReport, error) {
	expenses, err := s.expenses.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	logs, err := s.maintenance.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicles.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	report := &CostReport{}
	for _, e := range expenses {
		report.Summary.TotalFuelCost += e.Cost
	}
	for _, m := range logs {
		report.Summary.TotalMaintenanceCost += m.Cost
	}
	report.Summary.TotalOperationalCost = report.Summary.TotalFuelCost + report.Summary.TotalMaintenanceCost

	for _, v := range vehicles {
		var distance, liters float64
		for _, e := range expenses {
			if e.Vehicle != v.Name {
				continue
			}
			distance += e.Distance
			liters += e.Liters
		}
		if liters > 0 {
			report.FuelEfficiency = append(report.FuelEfficiency, VehicleFuelEfficiency{
				Vehicle:    v.Name,
				Efficiency: round2(distance / liters),
			})
		}
	}

	return report, nil
}

func (s *analyticsService) VehicleROI(ctx context.Context) ([]*VehicleROI, error) {
	vehicles, err := s.vehicles.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	logs, err := s.maintenance.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	results := make([]*VehicleROI, 0, len(vehicles))
	for _, v := range vehicles {
		roi := &VehicleROI{
			Vehicle:         v.Name,
			AcquisitionCost: v.AcquisitionCost,
		}
		for _, e := range expenses {
			if e.Vehicle == v.Name {
				roi.FuelCost += e.Cost
			}
		}
		for _, m := range logs {
			if m.VehicleID == v.ID {
				roi.MaintenanceCost += m.Cost
			}
		}
		roi.TotalCost = roi.FuelCost + roi.MaintenanceCost

		// Revenue is not tracked; approximate with the source's assumed 50%
		// margin over operating cost.
		revenue := roi.TotalCost * 1.5
		if v.AcquisitionCost > 0 {
			roi.ROI = round2((revenue - roi.TotalCost) / v.AcquisitionCost * 100)
		}

		results = append(results, roi)
	}
	return results, nil
}
