package enrollment

import (
	"errors"
	"log/slog"
	"net/http"

	v1 "github.com/coursehive-lab/coursehive/internal/api/v1"
	"github.com/coursehive-lab/coursehive/internal/auth"
	httperr "github.com/coursehive-lab/coursehive/internal/core/errors"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidJSON         = "Invalid JSON body"
	msgAlreadyEnrolled     = "You are already enrolled in this contribution"
	msgContributionMissing = "Contribution not found"
	msgEnrollmentMissing   = "Enrollment not found"
	msgInternal            = "Internal server error"
)

// apiError carries the structured HTTP error shape from a helper back to the handler.
type apiError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *apiError) Error() string {
	return e.message
}

// EnrollHandler handles POST /v1/enrollments.
func (s *Service) EnrollHandler(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		writeError(c, unauthenticated())
		return
	}

	var req v1.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("[Enrollment] Invalid JSON body received", "error", err)
		writeError(c, &apiError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRequestError,
			message:    msgInvalidJSON,
		})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, &apiError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRequestError,
			message:    err.Error(),
		})
		return
	}

	enrollment, err := s.Enroll(c.Request.Context(), userID, req.ContributionID)
	if err != nil {
		writeError(c, mapError(err, "contribution_id", req.ContributionID))
		return
	}

	c.JSON(http.StatusCreated, v1.NewEnrollmentResponse(enrollment))
}

// ListHandler handles GET /v1/enrollments.
func (s *Service) ListHandler(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		writeError(c, unauthenticated())
		return
	}

	items, err := s.ListEnrollments(c.Request.Context(), userID)
	if err != nil {
		writeError(c, mapError(err, "user_id", userID))
		return
	}

	c.JSON(http.StatusOK, v1.NewEnrollmentListResponse(items))
}

// GetHandler handles GET /v1/enrollments/:enrollment_id.
func (s *Service) GetHandler(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		writeError(c, unauthenticated())
		return
	}

	enrollmentID := c.Param("enrollment_id")
	enrollment, err := s.GetEnrollment(c.Request.Context(), userID, enrollmentID)
	if err != nil {
		writeError(c, mapError(err, "enrollment_id", enrollmentID))
		return
	}

	c.JSON(http.StatusOK, v1.NewEnrollmentResponse(enrollment))
}

// mapError translates service errors into API errors. Unknown errors are
// logged with the offending key and reported as a generic 500.
func mapError(err error, key, value string) *apiError {
	switch {
	case errors.Is(err, ErrAlreadyEnrolled):
		return &apiError{statusCode: http.StatusConflict, errorType: httperr.HttpAlreadyEnrolledError, message: msgAlreadyEnrolled}
	case errors.Is(err, ErrContributionNotFound):
		return &apiError{statusCode: http.StatusNotFound, errorType: httperr.HttpContributionNotFoundError, message: msgContributionMissing}
	case errors.Is(err, ErrEnrollmentNotFound):
		return &apiError{statusCode: http.StatusNotFound, errorType: httperr.HttpEnrollmentNotFoundError, message: msgEnrollmentMissing}
	}

	slog.Error("[Enrollment] Request failed", "error", err, key, value)
	return &apiError{statusCode: http.StatusInternalServerError, errorType: httperr.HttpInternalError, message: msgInternal}
}

func unauthenticated() *apiError {
	return &apiError{
		statusCode: http.StatusUnauthorized,
		errorType:  httperr.HttpUnauthenticatedError,
		message:    "Authentication credentials were not provided",
	}
}

// writeError serializes an apiError as the JSON HTTP response.
func writeError(c *gin.Context, err *apiError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
