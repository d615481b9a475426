package validators

import "time"

type ExpenseCreateRequest struct {
	TripID   string    `json:"trip_id" validate:"omitempty,object_id"`
	Driver   string    `json:"driver" validate:"omitempty,max=100"`
	Vehicle  string    `json:"vehicle" validate:"omitempty,max=100"`
	Distance float64   `json:"distance" validate:"omitempty,gte=0"`
	Liters   float64   `json:"liters" validate:"omitempty,gte=0"`
	Cost     float64   `json:"cost" validate:"required,gte=0"`
	Date     time.Time `json:"date"`
}

type ExpenseUpdateRequest struct {
	Driver   *string    `json:"driver" validate:"omitempty,max=100"`
	Vehicle  *string    `json:"vehicle" validate:"omitempty,max=100"`
	Distance *float64   `json:"distance" validate:"omitempty,gte=0"`
	Liters   *float64   `json:"liters" validate:"omitempty,gte=0"`
	Cost     *float64   `json:"cost" validate:"omitempty,gte=0"`
	Date     *time.Time `json:"date"`
}

func (r *ExpenseUpdateRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Driver != nil {
		updates["driver"] = *r.Driver
	}
	if r.Vehicle != nil {
		updates["vehicle"] = *r.Vehicle
	}
	if r.Distance != nil {
		updates["distance"] = *r.Distance
	}
	if r.Liters != nil {
		updates["liters"] = *r.Liters
	}
	if r.Cost != nil {
		updates["cost"] = *r.Cost
	}
	if r.Date != nil {
		updates["date"] = *r.Date
	}
	return updates
}

func ValidateExpenseCreate(req *ExpenseCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateExpenseUpdate(req *ExpenseUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}
