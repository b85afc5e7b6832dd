package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gympoint/backoffice/internal/app/service/catalog"
	"github.com/gympoint/backoffice/pkg/response"
)

// @Summary      Create student
// @Tags         Students
// @Accept       json
// @Produce      json
// @Param        request body catalog.StudentInput true "Student fields"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/students [post]
func ApiCreateStudent(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.StudentInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		student, err := svc.CreateStudent(c.Request.Context(), &in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(student))
	}
}

func ApiUpdateStudent(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.StudentInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		student, err := svc.UpdateStudent(c.Request.Context(), c.Param("id"), &in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(student))
	}
}

func ApiGetStudent(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		student, err := svc.GetStudent(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(student))
	}
}

func ApiListStudents(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		students, err := svc.ListStudents(c.Request.Context(), c.Query("q"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(students))
	}
}

func RegisterStudentRoutes(r gin.IRouter, svc *catalog.Service) {
	r.POST("/students", ApiCreateStudent(svc))
	r.GET("/students", ApiListStudents(svc))
	r.GET("/students/:id", ApiGetStudent(svc))
	r.PUT("/students/:id", ApiUpdateStudent(svc))
}
