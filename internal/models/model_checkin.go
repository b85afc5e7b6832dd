package models

import "time"

// Checkin is an attendance event. Immutable once written. The (student_id,
// day) unique index enforces the one-per-calendar-day cap at commit time;
// Day is derived from CreatedAt in the configured timezone and exists only
// to carry that constraint; range queries always use created_at.
type Checkin struct {
	ID        string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	StudentID string `gorm:"column:student_id;type:uuid;not null;index;uniqueIndex:unique_student_id_day,priority:1" json:"student_id"`
	// Day is CreatedAt formatted as 2006-01-02 in the deployment timezone.
	Day       string    `gorm:"column:day;type:varchar(10);not null;uniqueIndex:unique_student_id_day,priority:2" json:"day"`
	CreatedAt time.Time `json:"created_at"`
}

func (Checkin) TableName() string {
	return "checkin"
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DayKey formats t's calendar day in loc, matching Checkin.Day.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.DateOnly)
}
