package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gympoint/backoffice/internal/app/service/policy"
	"github.com/gympoint/backoffice/pkg/response"
)

// codeFor maps policy sentinels onto envelope codes. Everything unknown is a
// server error.
func codeFor(err error) response.APIResponseCode {
	switch {
	case errors.Is(err, policy.ErrStudentNotFound),
		errors.Is(err, policy.ErrPlanNotFound),
		errors.Is(err, policy.ErrNotEnrolled):
		return response.APIResponseCodeNotFound
	case errors.Is(err, policy.ErrPastStartDate),
		errors.Is(err, policy.ErrInvalidPlan):
		return response.APIResponseCodeBadRequest
	case errors.Is(err, policy.ErrAlreadyCheckedInToday),
		errors.Is(err, policy.ErrWeeklyLimitReached):
		return response.APIResponseCodeRateLimited
	case errors.Is(err, policy.ErrActiveMembershipExists),
		errors.Is(err, policy.ErrMembershipActiveImmutable),
		errors.Is(err, policy.ErrMembershipInactive),
		errors.Is(err, policy.ErrDuplicatePlanTitle),
		errors.Is(err, policy.ErrDuplicateStudentEmail),
		errors.Is(err, policy.ErrStoreConflict):
		return response.APIResponseCodeConflict
	default:
		return response.APIResponseCodeError
	}
}

// respondError writes the envelope with the mapped code and the error text
// as data, so callers always get an actionable reason.
func respondError(c *gin.Context, err error) {
	c.JSON(http.StatusOK, response.ErrorT[any](codeFor(err), err.Error()))
}
