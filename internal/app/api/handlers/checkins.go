package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gympoint/backoffice/internal/app/service/attendance"
	"github.com/gympoint/backoffice/pkg/response"
)

// @Summary      Record check-in
// @Description  Records an attendance event for the student, enforcing the daily and weekly caps.
// @Tags         Checkins
// @Produce      json
// @Param        id path string true "Student ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/students/{id}/checkins [post]
func ApiRecordCheckin(svc *attendance.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		checkin, err := svc.RecordCheckin(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(checkin))
	}
}

func ApiListCheckins(svc *attendance.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		result, err := svc.ListCheckins(c.Request.Context(), c.Param("id"), page)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(result))
	}
}

func RegisterCheckinRoutes(r gin.IRouter, svc *attendance.Service) {
	r.POST("/students/:id/checkins", ApiRecordCheckin(svc))
	r.GET("/students/:id/checkins", ApiListCheckins(svc))
}
