package validators

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Role     string `json:"role" validate:"omitempty,oneof=admin fleet_manager dispatcher safety_officer financial_analyst driver"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func ValidateRegister(req *RegisterRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateLogin(req *LoginRequest) ValidationErrors {
	return ValidateStruct(req)
}
