package validators

type VehicleCreateRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	Plate           string  `json:"plate" validate:"required,license_plate"`
	Type            string  `json:"type" validate:"required,oneof=Truck Van Bike"`
	Capacity        float64 `json:"capacity" validate:"required,gt=0"`
	Odometer        float64 `json:"odometer" validate:"omitempty,gte=0"`
	Fuel            string  `json:"fuel" validate:"omitempty,oneof=Diesel Petrol CNG Electric"`
	AcquisitionCost float64 `json:"acquisition_cost" validate:"omitempty,gte=0"`
}

type VehicleUpdateRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Plate           *string  `json:"plate" validate:"omitempty,license_plate"`
	Type            *string  `json:"type" validate:"omitempty,oneof=Truck Van Bike"`
	Capacity        *float64 `json:"capacity" validate:"omitempty,gt=0"`
	Odometer        *float64 `json:"odometer" validate:"omitempty,gte=0"`
	Fuel            *string  `json:"fuel" validate:"omitempty,oneof=Diesel Petrol CNG Electric"`
	AcquisitionCost *float64 `json:"acquisition_cost" validate:"omitempty,gte=0"`
}

// ToUpdates builds the partial $set map, keeping only fields that were sent.
func (r *VehicleUpdateRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Plate != nil {
		updates["plate"] = *r.Plate
	}
	if r.Type != nil {
		updates["type"] = *r.Type
	}
	if r.Capacity != nil {
		updates["capacity"] = *r.Capacity
	}
	if r.Odometer != nil {
		updates["odometer"] = *r.Odometer
	}
	if r.Fuel != nil {
		updates["fuel"] = *r.Fuel
	}
	if r.AcquisitionCost != nil {
		updates["acquisition_cost"] = *r.AcquisitionCost
	}
	return updates
}

type VehicleStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Available 'On Trip' 'In Shop' Retired"`
}

func ValidateVehicleCreate(req *VehicleCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateVehicleUpdate(req *VehicleUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateVehicleStatus(req *VehicleStatusRequest) ValidationErrors {
	return ValidateStruct(req)
}
