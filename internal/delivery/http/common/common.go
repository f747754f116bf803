package http_common

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Message string `json:"error" example:"room_id is required"`
}

type StatusResponse struct {
	Status string `json:"status" example:"waiting"`
}
