package http

type (
	// TodoRequest struct - HTTP request DTO for create and update.
	// Blank titles are rejected by the store so its message reaches the client.
	TodoRequest struct {
		Title       string `json:"title" validate:"max=200" form:"title"`
		IsCompleted bool   `json:"isCompleted" form:"isCompleted"`
	}
)
