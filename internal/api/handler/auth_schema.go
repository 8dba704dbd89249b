package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Email       string `json:"email"    validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Name        string `json:"name"     validate:"required"`
	YearOfBirth int    `json:"yob"      validate:"required"`
	Gender      bool   `json:"gender"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
