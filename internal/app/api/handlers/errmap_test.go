package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gympoint/backoffice/internal/app/service/policy"
	"github.com/gympoint/backoffice/pkg/response"
)

func TestCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		want response.APIResponseCode
	}{
		{policy.ErrStudentNotFound, response.APIResponseCodeNotFound},
		{policy.ErrPlanNotFound, response.APIResponseCodeNotFound},
		{policy.ErrNotEnrolled, response.APIResponseCodeNotFound},
		{policy.ErrPastStartDate, response.APIResponseCodeBadRequest},
		{policy.ErrInvalidPlan, response.APIResponseCodeBadRequest},
		{policy.ErrAlreadyCheckedInToday, response.APIResponseCodeRateLimited},
		{policy.ErrWeeklyLimitReached, response.APIResponseCodeRateLimited},
		{policy.ErrActiveMembershipExists, response.APIResponseCodeConflict},
		{policy.ErrMembershipInactive, response.APIResponseCodeConflict},
		{policy.ErrStoreConflict, response.APIResponseCodeConflict},
		{fmt.Errorf("enroll: %w", policy.ErrActiveMembershipExists), response.APIResponseCodeConflict},
		{errors.New("boom"), response.APIResponseCodeError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, codeFor(tt.err), "err=%v", tt.err)
	}
}
