package user

type CreateUserReq struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateUserReq is a partial patch; absent fields leave the stored value
// unchanged.
type UpdateUserReq struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
