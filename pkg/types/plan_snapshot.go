package types

// PlanSnapshot captures the plan fields a membership was priced against at
// enrollment time. Later plan edits never alter an existing membership, so the
// snapshot is the authoritative record of what the student bought.
type PlanSnapshot struct {
	ID string `json:"id"`
	// Title is the plan title at purchase time.
	Title string `json:"title"`
	// DurationMonths is the term length in whole months.
	DurationMonths int `json:"duration_months"`
	// MonthlyPriceCents is the per-month price in cents.
	MonthlyPriceCents int64 `json:"monthly_price_cents"`
}

// TotalPriceCents is the full term price frozen on the membership.
func (p *PlanSnapshot) TotalPriceCents() int64 {
	if p == nil {
		return 0
	}
	return p.MonthlyPriceCents * int64(p.DurationMonths)
}
