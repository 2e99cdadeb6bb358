package model

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserPatch carries a partial update; nil fields leave the stored value as is.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// PatchUser merges a partial update into an existing user.
func PatchUser(old User, p UserPatch) User {
	if p.Name != nil {
		old.Name = *p.Name
	}
	if p.Email != nil {
		old.Email = *p.Email
	}
	return old
}
