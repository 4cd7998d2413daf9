package handler

// --- Request types ---

type createUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"  validate:"omitempty,oneof=USER ADMIN SUPERUSER"`
}

// updateUserRequest is a partial update; absent fields are left unchanged.
// Role is checked in the service instead of by tag so that an empty string
// can clear a previously set role.
type updateUserRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role"`
}

type listUsersRequest struct {
	Role  string `query:"role" validate:"omitempty,oneof=USER ADMIN SUPERUSER"`
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
}

// --- Response types ---
//
// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type userResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// userDetailResponse extends userResponse with the user's posts.
type userDetailResponse struct {
	userResponse
	Posts []postSummaryResponse `json:"posts"`
}

// postSummaryResponse is the lightweight post view embedded in user details.
type postSummaryResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}

type listUsersResponse struct {
	Items      []userResponse     `json:"items"`
	Pagination paginationResponse `json:"pagination"`
}
