package mailer

import "time"

// MembershipConfirmed is the hand-off payload for the confirmation mail.
// It carries plain values only; the mail system never reaches back into the
// store.
type MembershipConfirmed struct {
	MembershipID string    `json:"membership_id"`
	StudentID    string    `json:"student_id"`
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
	PlanTitle    string    `json:"plan_title"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	PriceCents   int64     `json:"price_cents"`
}
