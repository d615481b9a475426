package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLicensePredicates(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	expired := &Driver{Expiry: now.Add(-time.Hour)}
	assert.True(t, expired.IsLicenseExpired(now))
	assert.False(t, expired.IsLicenseExpiringSoon(now))

	soon := &Driver{Expiry: now.Add(10 * 24 * time.Hour)}
	assert.False(t, soon.IsLicenseExpired(now))
	assert.True(t, soon.IsLicenseExpiringSoon(now))

	edge := &Driver{Expiry: now.Add(LicenseAlertWindow)}
	assert.True(t, edge.IsLicenseExpiringSoon(now))

	fine := &Driver{Expiry: now.Add(LicenseAlertWindow + time.Hour)}
	assert.False(t, fine.IsLicenseExpiringSoon(now))
	assert.False(t, fine.IsLicenseExpired(now))
}

func TestValidDriverEnums(t *testing.T) {
	assert.True(t, ValidDriverStatus(DriverStatusSuspended))
	assert.False(t, ValidDriverStatus(DriverStatus("Resting")))

	assert.True(t, ValidLicenseCategory(LicenseCategoryTRANS))
	assert.False(t, ValidLicenseCategory(LicenseCategory("XYZ")))
}
