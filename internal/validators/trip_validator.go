package validators

type TripDispatchRequest struct {
	VehicleID    string  `json:"vehicle_id" validate:"required,object_id"`
	DriverID     string  `json:"driver_id" validate:"required,object_id"`
	Cargo        float64 `json:"cargo" validate:"required,gt=0"`
	Origin       string  `json:"origin" validate:"required,min=2,max=200"`
	Destination  string  `json:"destination" validate:"required,min=2,max=200"`
	FuelEstimate string  `json:"fuel" validate:"omitempty,max=50"`
}

type TripStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=Draft Dispatched Completed Cancelled"`
	Distance string `json:"distance" validate:"omitempty,max=50"`
	Fuel     string `json:"fuel" validate:"omitempty,max=50"`
}

func ValidateTripDispatch(req *TripDispatchRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateTripStatus(req *TripStatusRequest) ValidationErrors {
	return ValidateStruct(req)
}
