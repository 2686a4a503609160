package errors

import "github.com/gin-gonic/gin"

const (
	HttpInternalError             = "internal_error"
	HttpInvalidRequestError       = "invalid_request"
	HttpUnauthenticatedError      = "unauthenticated"
	HttpRateLimitedError          = "rate_limited"
	HttpContributionNotFoundError = "contribution_not_found"
	HttpAlreadyEnrolledError      = "already_enrolled"
	HttpEnrollmentNotFoundError   = "enrollment_not_found"
	HttpNotEnrolledError          = "not_enrolled"
	HttpVideoNotFoundError        = "video_not_found"
	HttpInvalidRatingError        = "invalid_rating"
)

// ErrorResponse is the error response body for every API error.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

// Abort writes the error body and stops the handler chain.
func Abort(c *gin.Context, status int, errorType, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		ErrorType: errorType,
		Message:   message,
	})
}
