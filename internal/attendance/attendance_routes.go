package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendances := r.Group("/attendances")
	{
		attendances.GET("", h.GetAll)
		attendances.GET("/:id", h.GetByID)
		attendances.POST("", h.Create)
		attendances.POST("/bulk", h.BulkCreate)
		attendances.PUT("/:id", h.Update)
		attendances.DELETE("/:id", h.Delete)
	}
}
