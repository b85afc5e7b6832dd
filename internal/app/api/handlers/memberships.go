package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gympoint/backoffice/internal/app/service/membership"
	"github.com/gympoint/backoffice/pkg/config"
	"github.com/gympoint/backoffice/pkg/response"
)

type EnrollRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	PlanID    string `json:"plan_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"` // 2006-01-02
}

type RenewRequest struct {
	PlanID    string `json:"plan_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"` // 2006-01-02
}

type ListMembershipsResponse struct {
	Items []*membership.Detail `json:"items"`
	Total int64                `json:"total"`
}

// parseStartDate reads a calendar date in the deployment timezone.
func parseStartDate(cfg *config.Config, s string) (time.Time, error) {
	loc, err := cfg.Location()
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(time.DateOnly, s, loc)
}

// @Summary      Enroll student
// @Description  Creates an inactive membership pending confirmation. End date and price are derived from the plan and frozen.
// @Tags         Memberships
// @Accept       json
// @Produce      json
// @Param        request body handlers.EnrollRequest true "Enrollment request"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/memberships [post]
func ApiEnroll(svc *membership.Service, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EnrollRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		startDate, err := parseStartDate(cfg, req.StartDate)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "start_date must be YYYY-MM-DD"))
			return
		}
		m, err := svc.Enroll(c.Request.Context(), req.StudentID, req.PlanID, startDate)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(m))
	}
}

// @Summary      Renew membership
// @Description  Rewrites the student's inactive membership with new plan terms.
// @Tags         Memberships
// @Accept       json
// @Produce      json
// @Param        id      path  string                 true  "Student ID"
// @Param        request body  handlers.RenewRequest  true  "Renewal request"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/students/{id}/membership [put]
func ApiRenew(svc *membership.Service, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RenewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		startDate, err := parseStartDate(cfg, req.StartDate)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "start_date must be YYYY-MM-DD"))
			return
		}
		m, err := svc.Renew(c.Request.Context(), c.Param("id"), req.PlanID, startDate)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(m))
	}
}

func ApiCancel(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func ApiGetMembership(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(detail))
	}
}

func ApiListMemberships(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		items, total, err := svc.List(c.Request.Context(), page)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(ListMembershipsResponse{Items: items, Total: total}))
	}
}

// @Summary      Activate membership
// @Description  Confirmation hook for the external actor; flips the active flag.
// @Tags         Memberships
// @Produce      json
// @Param        id path string true "Membership ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/memberships/{id}/activate [post]
func ApiActivateMembership(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Activate(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterMembershipRoutes(r gin.IRouter, svc *membership.Service, cfg *config.Config) {
	r.POST("/memberships", ApiEnroll(svc, cfg))
	r.GET("/memberships", ApiListMemberships(svc))
	r.POST("/memberships/:id/activate", ApiActivateMembership(svc))
	r.GET("/students/:id/membership", ApiGetMembership(svc))
	r.PUT("/students/:id/membership", ApiRenew(svc, cfg))
	r.DELETE("/students/:id/membership", ApiCancel(svc))
}
