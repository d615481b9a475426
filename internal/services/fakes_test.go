package services

import (
	"context"
	"sync"
	"time"

	"fleetflow/internal/models"
	"fleetflow/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories backing the service tests. The vehicle fake guards
// UpdateStatusIf with the same mutex as every other write, so the
// compare-and-swap semantics hold under the race detector.

type fakeVehicleRepo struct {
	mu       sync.Mutex
	vehicles map[primitive.ObjectID]*models.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: map[primitive.ObjectID]*models.Vehicle{}}
}

func (r *fakeVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.vehicles {
		if v.Plate == vehicle.Plate {
			return models.ErrDuplicateKey
		}
	}
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = time.Now()
	r.vehicles[vehicle.ID] = vehicle
	return nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vehicles[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *v
	return &copied, nil
}

func (r *fakeVehicleRepo) List(ctx context.Context, filter *interfaces.VehicleFilter) ([]*models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Vehicle
	for _, v := range r.vehicles {
		if filter != nil {
			if filter.Status != "" && v.Status != filter.Status {
				continue
			}
			if filter.Type != "" && v.Type != filter.Type {
				continue
			}
		}
		copied := *v
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vehicles[id]
	if !ok {
		return models.ErrNotFound
	}
	for key, value := range updates {
		switch key {
		case "name":
			v.Name = value.(string)
		case "plate":
			v.Plate = value.(string)
		case "type":
			v.Type = models.VehicleType(asString(value))
		case "capacity":
			v.Capacity = value.(float64)
		case "odometer":
			v.Odometer = value.(float64)
		case "fuel":
			v.Fuel = models.FuelType(asString(value))
		case "acquisition_cost":
			v.AcquisitionCost = value.(float64)
		case "status":
			v.Status = models.VehicleStatus(asString(value))
		case "driver_id":
			v.DriverID = asObjectIDPtr(value)
		}
	}
	return nil
}

func (r *fakeVehicleRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vehicles[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.vehicles, id)
	return nil
}

func (r *fakeVehicleRepo) GetByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.vehicles {
		if v.Plate == plate {
			copied := *v
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeVehicleRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.VehicleStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vehicles[id]
	if !ok {
		return models.ErrNotFound
	}
	v.Status = status
	return nil
}

func (r *fakeVehicleRepo) UpdateStatusIf(ctx context.Context, id primitive.ObjectID, from, to models.VehicleStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vehicles[id]
	if !ok {
		return false, models.ErrNotFound
	}
	if v.Status != from {
		return false, nil
	}
	v.Status = to
	return true, nil
}

func (r *fakeVehicleRepo) GetAvailable(ctx context.Context) ([]*models.Vehicle, error) {
	return r.List(ctx, &interfaces.VehicleFilter{Status: models.VehicleStatusAvailable})
}

func (r *fakeVehicleRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.vehicles)), nil
}

func (r *fakeVehicleRepo) CountByStatus(ctx context.Context, status models.VehicleStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, v := range r.vehicles {
		if v.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeDriverRepo struct {
	mu      sync.Mutex
	drivers map[primitive.ObjectID]*models.Driver
}

func newFakeDriverRepo() *fakeDriverRepo {
	return &fakeDriverRepo{drivers: map[primitive.ObjectID]*models.Driver{}}
}

func (r *fakeDriverRepo) Create(ctx context.Context, driver *models.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.drivers {
		if d.License == driver.License {
			return models.ErrDuplicateKey
		}
	}
	driver.ID = primitive.NewObjectID()
	driver.CreatedAt = time.Now()
	r.drivers[driver.ID] = driver
	return nil
}

func (r *fakeDriverRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drivers[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDriverRepo) List(ctx context.Context, filter *interfaces.DriverFilter) ([]*models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Driver
	for _, d := range r.drivers {
		if filter != nil && filter.Status != "" && d.Status != filter.Status {
			continue
		}
		copied := *d
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeDriverRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drivers[id]
	if !ok {
		return models.ErrNotFound
	}
	for key, value := range updates {
		switch key {
		case "name":
			d.Name = value.(string)
		case "license":
			d.License = value.(string)
		case "expiry":
			d.Expiry = value.(time.Time)
		case "category":
			d.Category = models.LicenseCategory(asString(value))
		case "safety":
			d.Safety = value.(int)
		case "trips":
			d.Trips = value.(int)
		case "completed":
			d.Completed = value.(int)
		case "status":
			d.Status = models.DriverStatus(asString(value))
		case "vehicle_id":
			d.VehicleID = asObjectIDPtr(value)
		}
	}
	return nil
}

func (r *fakeDriverRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drivers[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.drivers, id)
	return nil
}

func (r *fakeDriverRepo) GetByLicense(ctx context.Context, license string) (*models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.drivers {
		if d.License == license {
			copied := *d
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeDriverRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.DriverStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drivers[id]
	if !ok {
		return models.ErrNotFound
	}
	d.Status = status
	return nil
}

func (r *fakeDriverRepo) GetAvailable(ctx context.Context) ([]*models.Driver, error) {
	return r.List(ctx, &interfaces.DriverFilter{Status: models.DriverStatusOffDuty})
}

func (r *fakeDriverRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.drivers)), nil
}

func (r *fakeDriverRepo) CountByStatus(ctx context.Context, status models.DriverStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, d := range r.drivers {
		if d.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeTripRepo struct {
	mu    sync.Mutex
	trips map[primitive.ObjectID]*models.Trip
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: map[primitive.ObjectID]*models.Trip{}}
}

func (r *fakeTripRepo) Create(ctx context.Context, trip *models.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	trip.ID = primitive.NewObjectID()
	trip.CreatedAt = time.Now()
	if trip.Distance == "" {
		trip.Distance = models.PlaceholderValue
	}
	if trip.Fuel == "" {
		trip.Fuel = models.PlaceholderValue
	}
	r.trips[trip.ID] = trip
	return nil
}

func (r *fakeTripRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trips[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTripRepo) List(ctx context.Context, filter *interfaces.TripFilter) ([]*models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Trip
	for _, t := range r.trips {
		if filter != nil {
			if filter.Status != "" && t.Status != filter.Status {
				continue
			}
			if filter.VehicleID != nil && t.VehicleID != *filter.VehicleID {
				continue
			}
			if filter.DriverID != nil && t.DriverID != *filter.DriverID {
				continue
			}
		}
		copied := *t
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeTripRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trips[id]
	if !ok {
		return models.ErrNotFound
	}
	for key, value := range updates {
		switch key {
		case "status":
			t.Status = models.TripStatus(asString(value))
		case "distance":
			t.Distance = value.(string)
		case "fuel":
			t.Fuel = value.(string)
		}
	}
	return nil
}

func (r *fakeTripRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.trips[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.trips, id)
	return nil
}

func (r *fakeTripRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.trips)), nil
}

func (r *fakeTripRepo) CountByStatus(ctx context.Context, status models.TripStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, t := range r.trips {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeMaintenanceRepo struct {
	mu   sync.Mutex
	logs map[primitive.ObjectID]*models.MaintenanceLog
}

func newFakeMaintenanceRepo() *fakeMaintenanceRepo {
	return &fakeMaintenanceRepo{logs: map[primitive.ObjectID]*models.MaintenanceLog{}}
}

func (r *fakeMaintenanceRepo) Create(ctx context.Context, log *models.MaintenanceLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.ID = primitive.NewObjectID()
	log.CreatedAt = time.Now()
	r.logs[log.ID] = log
	return nil
}

func (r *fakeMaintenanceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.MaintenanceLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.logs[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *fakeMaintenanceRepo) List(ctx context.Context, filter *interfaces.MaintenanceFilter) ([]*models.MaintenanceLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.MaintenanceLog
	for _, m := range r.logs {
		if filter != nil {
			if filter.Status != "" && m.Status != filter.Status {
				continue
			}
			if filter.VehicleID != nil && m.VehicleID != *filter.VehicleID {
				continue
			}
		}
		copied := *m
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeMaintenanceRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.logs[id]
	if !ok {
		return models.ErrNotFound
	}
	for key, value := range updates {
		switch key {
		case "type":
			m.Type = value.(string)
		case "date":
			m.Date = value.(time.Time)
		case "cost":
			m.Cost = value.(float64)
		case "tech":
			m.Tech = value.(string)
		case "notes":
			m.Notes = value.(string)
		case "status":
			m.Status = models.MaintenanceStatus(asString(value))
		}
	}
	return nil
}

func (r *fakeMaintenanceRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.logs[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.logs, id)
	return nil
}

type fakeExpenseRepo struct {
	mu       sync.Mutex
	order    []primitive.ObjectID
	expenses map[primitive.ObjectID]*models.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: map[primitive.ObjectID]*models.Expense{}}
}

func (r *fakeExpenseRepo) Create(ctx context.Context, expense *models.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	expense.ID = primitive.NewObjectID()
	expense.CreatedAt = time.Now()
	r.expenses[expense.ID] = expense
	r.order = append(r.order, expense.ID)
	return nil
}

func (r *fakeExpenseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.expenses[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeExpenseRepo) List(ctx context.Context, filter *interfaces.ExpenseFilter) ([]*models.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Expense
	for _, id := range r.order {
		e, ok := r.expenses[id]
		if !ok {
			continue
		}
		if filter != nil {
			if filter.Vehicle != "" && e.Vehicle != filter.Vehicle {
				continue
			}
			if filter.Driver != "" && e.Driver != filter.Driver {
				continue
			}
			if filter.StartDate != nil && e.Date.Before(*filter.StartDate) {
				continue
			}
			if filter.EndDate != nil && e.Date.After(*filter.EndDate) {
				continue
			}
		}
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeExpenseRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.expenses[id]
	if !ok {
		return models.ErrNotFound
	}
	for key, value := range updates {
		switch key {
		case "driver":
			e.Driver = value.(string)
		case "vehicle":
			e.Vehicle = value.(string)
		case "distance":
			e.Distance = value.(float64)
		case "liters":
			e.Liters = value.(float64)
		case "cost":
			e.Cost = value.(float64)
		case "date":
			e.Date = value.(time.Time)
		}
	}
	return nil
}

func (r *fakeExpenseRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.expenses[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.expenses, id)
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return models.ErrDuplicateKey
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.User
	for _, u := range r.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return models.ErrNotFound
	}
	for key, value := range updates {
		switch key {
		case "name":
			u.Name = value.(string)
		case "status":
			u.Status = models.UserStatus(asString(value))
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

// asString tolerates both raw strings and the typed status constants the
// services put into update maps.
func asString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case models.VehicleStatus:
		return string(v)
	case models.DriverStatus:
		return string(v)
	case models.TripStatus:
		return string(v)
	case models.MaintenanceStatus:
		return string(v)
	case models.UserStatus:
		return string(v)
	case models.VehicleType:
		return string(v)
	case models.FuelType:
		return string(v)
	case models.LicenseCategory:
		return string(v)
	default:
		return ""
	}
}

func asObjectIDPtr(value interface{}) *primitive.ObjectID {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case primitive.ObjectID:
		return &v
	case *primitive.ObjectID:
		return v
	}
	return nil
}
