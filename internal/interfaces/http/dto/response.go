package dto

// ErrorResponse is the wire shape for every failure: a single short
// message. The storefront client only ever inspects the status code,
// but admins see the message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the wire shape for informational results such as
// the idempotent seed endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse is the wire shape for bare success indicators.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// UploadedFile is one hosted file in an upload response.
type UploadedFile struct {
	URL string `json:"url"`
}

// UploadResponse is the wire shape of a successful upload. File order
// matches submission order.
type UploadResponse struct {
	Success bool           `json:"success"`
	Files   []UploadedFile `json:"files"`
	Message string         `json:"message"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewUploadResponse creates an upload response from hosted URLs
func NewUploadResponse(urls []string, message string) UploadResponse {
	files := make([]UploadedFile, 0, len(urls))
	for _, u := range urls {
		files = append(files, UploadedFile{URL: u})
	}
	return UploadResponse{Success: true, Files: files, Message: message}
}
