package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gympoint/backoffice/internal/app/service/attendance"
	"github.com/gympoint/backoffice/internal/app/service/statistics"
	"github.com/gympoint/backoffice/pkg/response"
	"github.com/gympoint/backoffice/pkg/types"
)

type ScanCheckinsRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

// @Summary      Scan Check-ins (Admin)
// @Description  Retrieves a paginated and filterable list of all check-ins.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.ScanCheckinsRequest true "Scan request with filters, pagination, and sorting"
// @Success      200  {object}  handlers.RespScanCheckins
// @Router       /api/v1/admin/scan_checkins [post]
func ApiScanCheckins(svc *attendance.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ScanCheckinsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		scanReq := &attendance.ScanCheckinsRequest{Filters: req.Filters, From: req.From, Size: req.Size, SortBy: req.SortBy, SortOrder: req.SortOrder}
		res, err := svc.ScanCheckins(c.Request.Context(), scanReq)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Get Statistics (Admin)
// @Description  Retrieves membership and attendance statistics.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body statistics.StatisticRequest true "Statistic request parameters"
// @Success      200  {object}  handlers.RespStatistics
// @Router       /api/v1/admin/get_statistics [post]
func ApiGetStatistics(svc *statistics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statistics.StatisticRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		res, err := svc.GetStatistics(c.Request.Context(), &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterAdminRoutes(r gin.IRouter, att *attendance.Service, stats *statistics.Service) {
	r.POST("/scan_checkins", ApiScanCheckins(att))
	r.POST("/get_statistics", ApiGetStatistics(stats))
}
