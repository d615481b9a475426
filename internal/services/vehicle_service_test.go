package services

import (
	"context"
	"testing"

	"fleetflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterVehicleDefaults(t *testing.T) {
	vehicles := newFakeVehicleRepo()
	drivers := newFakeDriverRepo()
	svc := NewVehicleService(vehicles, drivers, nil)
	ctx := context.Background()

	created, err := svc.RegisterVehicle(ctx, &models.Vehicle{
		Name:     "Atlas",
		Plate:    "MH-01-1111",
		Type:     models.VehicleTypeTruck,
		Capacity: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.VehicleStatusAvailable, created.Status)
	assert.Equal(t, models.FuelTypeDiesel, created.Fuel)
}

func TestRegisterVehicleDuplicatePlate(t *testing.T) {
	vehicles := newFakeVehicleRepo()
	svc := NewVehicleService(vehicles, newFakeDriverRepo(), nil)
	ctx := context.Background()

	_, err := svc.RegisterVehicle(ctx, &models.Vehicle{Name: "A", Plate: "MH-01-2222", Type: models.VehicleTypeVan, Capacity: 800})
	require.NoError(t, err)

	_, err = svc.RegisterVehicle(ctx, &models.Vehicle{Name: "B", Plate: "MH-01-2222", Type: models.VehicleTypeVan, Capacity: 800})
	assert.ErrorIs(t, err, models.ErrDuplicateKey)
}

func TestDeleteVehicleOnTripRejected(t *testing.T) {
	vehicles := newFakeVehicleRepo()
	svc := NewVehicleService(vehicles, newFakeDriverRepo(), nil)
	ctx := context.Background()

	v := &models.Vehicle{Name: "Busy", Plate: "MH-01-3333", Type: models.VehicleTypeTruck, Capacity: 5000, Status: models.VehicleStatusOnTrip}
	require.NoError(t, vehicles.Create(ctx, v))

	err := svc.DeleteVehicle(ctx, v.ID)
	require.Error(t, err)
	assert.True(t, models.IsConflict(err))

	_, err = vehicles.GetByID(ctx, v.ID)
	assert.NoError(t, err)
}

func TestDeleteVehicleReleasesAssignedDriver(t *testing.T) {
	vehicles := newFakeVehicleRepo()
	drivers := newFakeDriverRepo()
	svc := NewVehicleService(vehicles, drivers, nil)
	ctx := context.Background()

	d := &models.Driver{Name: "Ravi", License: "DL-1", Category: models.LicenseCategoryHMV, Status: models.DriverStatusOffDuty}
	require.NoError(t, drivers.Create(ctx, d))

	v := &models.Vehicle{Name: "Idle", Plate: "MH-01-4444", Type: models.VehicleTypeTruck, Capacity: 5000, Status: models.VehicleStatusAvailable, DriverID: &d.ID}
	require.NoError(t, vehicles.Create(ctx, v))
	require.NoError(t, drivers.Update(ctx, d.ID, map[string]interface{}{"vehicle_id": v.ID}))

	require.NoError(t, svc.DeleteVehicle(ctx, v.ID))

	gotDriver, err := drivers.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Nil(t, gotDriver.VehicleID)
	assert.Equal(t, models.DriverStatusOffDuty, gotDriver.Status)
}

func TestUpdateVehicleStripsStatus(t *testing.T) {
	vehicles := newFakeVehicleRepo()
	svc := NewVehicleService(vehicles, newFakeDriverRepo(), nil)
	ctx := context.Background()

	v := &models.Vehicle{Name: "Atlas", Plate: "MH-01-5555", Type: models.VehicleTypeTruck, Capacity: 5000, Status: models.VehicleStatusAvailable}
	require.NoError(t, vehicles.Create(ctx, v))

	updated, err := svc.UpdateVehicle(ctx, v.ID, map[string]interface{}{
		"name":   "Atlas II",
		"status": models.VehicleStatusRetired,
	})
	require.NoError(t, err)
	assert.Equal(t, "Atlas II", updated.Name)
	assert.Equal(t, models.VehicleStatusAvailable, updated.Status)
}

func TestVehicleSetStatusRejectsUnknown(t *testing.T) {
	vehicles := newFakeVehicleRepo()
	svc := NewVehicleService(vehicles, newFakeDriverRepo(), nil)
	ctx := context.Background()

	v := &models.Vehicle{Name: "Atlas", Plate: "MH-01-6666", Type: models.VehicleTypeTruck, Capacity: 5000, Status: models.VehicleStatusAvailable}
	require.NoError(t, vehicles.Create(ctx, v))

	_, err := svc.SetStatus(ctx, v.ID, models.VehicleStatus("Parked"))
	require.Error(t, err)
	assert.True(t, models.IsConflict(err))

	updated, err := svc.SetStatus(ctx, v.ID, models.VehicleStatusRetired)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleStatusRetired, updated.Status)
}
