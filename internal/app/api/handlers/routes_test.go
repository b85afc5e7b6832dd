package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1")
	RegisterPlanRoutes(g, nil)
	RegisterStudentRoutes(g, nil)
	RegisterMembershipRoutes(g, nil, nil)
	RegisterCheckinRoutes(g, nil)
	RegisterAdminRoutes(g.Group("/admin"), nil, nil)

	routes := r.Routes()
	contains := func(target string) bool {
		for _, rt := range routes {
			if rt.Method+" "+rt.Path == target {
				return true
			}
		}
		return false
	}

	require.True(t, contains("POST /api/v1/plans"))
	require.True(t, contains("GET /api/v1/plans"))
	require.True(t, contains("PUT /api/v1/plans/:id"))
	require.True(t, contains("DELETE /api/v1/plans/:id"))
	require.True(t, contains("POST /api/v1/students"))
	require.True(t, contains("PUT /api/v1/students/:id"))
	require.True(t, contains("POST /api/v1/memberships"))
	require.True(t, contains("POST /api/v1/memberships/:id/activate"))
	require.True(t, contains("GET /api/v1/students/:id/membership"))
	require.True(t, contains("PUT /api/v1/students/:id/membership"))
	require.True(t, contains("DELETE /api/v1/students/:id/membership"))
	require.True(t, contains("POST /api/v1/students/:id/checkins"))
	require.True(t, contains("GET /api/v1/students/:id/checkins"))
	require.True(t, contains("POST /api/v1/admin/scan_checkins"))
	require.True(t, contains("POST /api/v1/admin/get_statistics"))
}
