package handler

// --- Request types ---

type createPostRequest struct {
	Title  string `json:"title"   validate:"required"`
	Body   string `json:"body"    validate:"required"`
	UserID string `json:"user_id" validate:"required,uuid4"`
}

type listPostsRequest struct {
	UserID string `query:"user_id" validate:"omitempty,uuid4"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

// --- Response types ---

type postResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
}

// postDetailResponse extends postResponse with an author summary.
type postDetailResponse struct {
	postResponse
	Author *authorResponse `json:"author,omitempty"`
}

type authorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type listPostsResponse struct {
	Items      []postResponse     `json:"items"`
	Pagination paginationResponse `json:"pagination"`
}
