package handler

import "github.com/gin-gonic/gin"

// Register mounts every dashboard route on r.
func Register(r gin.IRouter, dh *DashboardHandler, hh *HealthHandler) {
	r.GET("/health", hh.Health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/dashboard", dh.Dashboard)
		v1.GET("/payments", dh.Payments)
		v1.GET("/merchants", dh.Merchants)
		v1.GET("/merchants/:code", dh.MerchantDetail)
		v1.GET("/codes", dh.Codes)
	}
}
