package policy

import "errors"

// Sentinel errors returned by the policy services. Handlers match them with
// errors.Is; wrap with fmt.Errorf("...: %w", err) when adding context.
var (
	// Not found.
	ErrStudentNotFound = errors.New("student not found")
	ErrPlanNotFound    = errors.New("plan not found")

	// Conflicts.
	ErrNotEnrolled               = errors.New("student has no membership")
	ErrActiveMembershipExists    = errors.New("student already has an active membership")
	ErrMembershipActiveImmutable = errors.New("only inactive memberships can be updated")
	ErrMembershipInactive        = errors.New("membership must be active to check in")
	ErrDuplicatePlanTitle        = errors.New("plan title already exists")
	ErrDuplicateStudentEmail     = errors.New("student email already registered")

	// Rate limits.
	ErrAlreadyCheckedInToday = errors.New("student already checked in today")
	ErrWeeklyLimitReached    = errors.New("weekly check-in limit reached")

	// Invalid input.
	ErrPastStartDate = errors.New("start date must not be in the past")
	ErrInvalidPlan   = errors.New("plan duration and price must be positive")

	// Commit-time concurrency failure: two racing requests both passed their
	// application-level checks and the store constraint caught the loser.
	ErrStoreConflict = errors.New("conflicting concurrent update")
)

// DenialReason names the stable error kind for metrics labels. Unknown
// errors report as "internal".
func DenialReason(err error) string {
	switch {
	case errors.Is(err, ErrStudentNotFound):
		return "unknown_student"
	case errors.Is(err, ErrPlanNotFound):
		return "unknown_plan"
	case errors.Is(err, ErrNotEnrolled):
		return "not_enrolled"
	case errors.Is(err, ErrActiveMembershipExists):
		return "active_membership_exists"
	case errors.Is(err, ErrMembershipActiveImmutable):
		return "membership_active_immutable"
	case errors.Is(err, ErrMembershipInactive):
		return "membership_inactive"
	case errors.Is(err, ErrDuplicatePlanTitle):
		return "duplicate_plan_title"
	case errors.Is(err, ErrDuplicateStudentEmail):
		return "duplicate_student_email"
	case errors.Is(err, ErrAlreadyCheckedInToday):
		return "already_checked_in_today"
	case errors.Is(err, ErrWeeklyLimitReached):
		return "weekly_limit_reached"
	case errors.Is(err, ErrPastStartDate):
		return "past_start_date"
	case errors.Is(err, ErrInvalidPlan):
		return "invalid_plan"
	case errors.Is(err, ErrStoreConflict):
		return "store_conflict"
	default:
		return "internal"
	}
}
