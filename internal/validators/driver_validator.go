package validators

import "time"

type DriverCreateRequest struct {
	Name     string    `json:"name" validate:"required,min=2,max=100"`
	License  string    `json:"license" validate:"required,min=4,max=30"`
	Expiry   time.Time `json:"expiry" validate:"required"`
	Category string    `json:"category" validate:"required,oneof=LMV HMV HPMV TRANS"`
	Safety   int       `json:"safety" validate:"omitempty,gte=0,lte=100"`
}

type DriverUpdateRequest struct {
	Name     *string    `json:"name" validate:"omitempty,min=2,max=100"`
	License  *string    `json:"license" validate:"omitempty,min=4,max=30"`
	Expiry   *time.Time `json:"expiry"`
	Category *string    `json:"category" validate:"omitempty,oneof=LMV HMV HPMV TRANS"`
	Safety   *int       `json:"safety" validate:"omitempty,gte=0,lte=100"`
}

func (r *DriverUpdateRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.License != nil {
		updates["license"] = *r.License
	}
	if r.Expiry != nil {
		updates["expiry"] = *r.Expiry
	}
	if r.Category != nil {
		updates["category"] = *r.Category
	}
	if r.Safety != nil {
		updates["safety"] = *r.Safety
	}
	return updates
}

type DriverStatusRequest struct {
	Status string `json:"status" validate:"required,oneof='On Duty' 'Off Duty' Suspended"`
}

func ValidateDriverCreate(req *DriverCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateDriverUpdate(req *DriverUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateDriverStatus(req *DriverStatusRequest) ValidationErrors {
	return ValidateStruct(req)
}
