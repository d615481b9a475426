package validators

import "time"

type MaintenanceCreateRequest struct {
	VehicleID string    `json:"vehicle_id" validate:"required,object_id"`
	Type      string    `json:"type" validate:"required,min=2,max=200"`
	Date      time.Time `json:"date" validate:"required"`
	Cost      float64   `json:"cost" validate:"omitempty,gte=0"`
	Tech      string    `json:"tech" validate:"required,min=2,max=100"`
	Notes     string    `json:"notes" validate:"omitempty,max=1000"`
}

type MaintenanceUpdateRequest struct {
	Type  *string    `json:"type" validate:"omitempty,min=2,max=200"`
	Date  *time.Time `json:"date"`
	Cost  *float64   `json:"cost" validate:"omitempty,gte=0"`
	Tech  *string    `json:"tech" validate:"omitempty,min=2,max=100"`
	Notes *string    `json:"notes" validate:"omitempty,max=1000"`
}

func (r *MaintenanceUpdateRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Type != nil {
		updates["type"] = *r.Type
	}
	if r.Date != nil {
		updates["date"] = *r.Date
	}
	if r.Cost != nil {
		updates["cost"] = *r.Cost
	}
	if r.Tech != nil {
		updates["tech"] = *r.Tech
	}
	if r.Notes != nil {
		updates["notes"] = *r.Notes
	}
	return updates
}

func ValidateMaintenanceCreate(req *MaintenanceCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateMaintenanceUpdate(req *MaintenanceUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}
