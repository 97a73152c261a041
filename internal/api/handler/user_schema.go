package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name"  validate:"required,max=50"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required"`
	IsAdmin   bool   `json:"is_admin"`
}

// updateUserRequest is a partial update; absent fields are left untouched.
type updateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=50"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=50"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	Password  *string `json:"password"`
	IsAdmin   *bool   `json:"is_admin"`
}
