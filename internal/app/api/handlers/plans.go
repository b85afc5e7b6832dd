package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gympoint/backoffice/internal/app/service/catalog"
	"github.com/gympoint/backoffice/pkg/response"
)

// @Summary      Create plan
// @Description  Creates a purchasable plan; titles are unique.
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        request body catalog.PlanInput true "Plan fields"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/plans [post]
func ApiCreatePlan(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.PlanInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		plan, err := svc.CreatePlan(c.Request.Context(), &in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(plan))
	}
}

// @Summary      Update plan
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        id      path  string             true  "Plan ID"
// @Param        request body  catalog.PlanInput  true  "Plan fields"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/plans/{id} [put]
func ApiUpdatePlan(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.PlanInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		plan, err := svc.UpdatePlan(c.Request.Context(), c.Param("id"), &in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(plan))
	}
}

func ApiGetPlan(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		plan, err := svc.GetPlan(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(plan))
	}
}

func ApiListPlans(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		plans, err := svc.ListPlans(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(plans))
	}
}

func ApiDeletePlan(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterPlanRoutes(r gin.IRouter, svc *catalog.Service) {
	r.POST("/plans", ApiCreatePlan(svc))
	r.GET("/plans", ApiListPlans(svc))
	r.GET("/plans/:id", ApiGetPlan(svc))
	r.PUT("/plans/:id", ApiUpdatePlan(svc))
	r.DELETE("/plans/:id", ApiDeletePlan(svc))
}
