package handlers

import (
	"time"

	"github.com/gympoint/backoffice/internal/app/service/attendance"
	"github.com/gympoint/backoffice/internal/app/service/statistics"
	"github.com/gympoint/backoffice/pkg/response"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

// RespScanCheckins wraps ScanCheckinsResponse in the standard envelope.
type RespScanCheckins struct {
	Code    response.APIResponseCode        `json:"code"`
	Message string                          `json:"message"`
	Data    attendance.ScanCheckinsResponse `json:"data"`
}

// RespStatistics wraps StatisticResponse in the standard envelope.
type RespStatistics struct {
	Code    response.APIResponseCode     `json:"code"`
	Message string                       `json:"message"`
	Data    statistics.StatisticResponse `json:"data"`
}

// SwaggerMembership is a simplified view of models.Membership for documentation purposes.
type SwaggerMembership struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	PlanID     string    `json:"plan_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	PriceCents int64     `json:"price_cents"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
