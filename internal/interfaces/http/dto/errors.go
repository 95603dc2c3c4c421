package dto

import "net/http"

// domainCodeHTTPStatus maps domain error codes to HTTP status codes.
// Unknown codes fall back to 500 so persistence failures never leak as
// client errors.
var domainCodeHTTPStatus = map[string]int{
	"NOT_FOUND":          http.StatusNotFound,
	"ALREADY_EXISTS":     http.StatusConflict,
	"INVALID_INPUT":      http.StatusBadRequest,
	"INVALID_NAME":       http.StatusBadRequest,
	"INVALID_PRICE":      http.StatusBadRequest,
	"INVALID_CONTENT_ID": http.StatusBadRequest,
	"INVALID_STATE":      http.StatusUnprocessableEntity,
	"UNAUTHORIZED":       http.StatusUnauthorized,
	"NO_FILES":           http.StatusBadRequest,
	"TOO_MANY_FILES":     http.StatusBadRequest,
	"FILE_TOO_LARGE":     http.StatusBadRequest,
	"INVALID_FILE_TYPE":  http.StatusBadRequest,
	"UPLOAD_FAILED":      http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code
func GetHTTPStatus(code string) int {
	if status, ok := domainCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
