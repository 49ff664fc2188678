package payroll

import (
	"go-hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("", handler.GetAll)
		payrolls.GET("/:id", handler.GetByID)
		payrolls.GET("/:id/payslip/download", handler.DownloadPayslip)
		if redisClient != nil {
			payrolls.POST("/generate", middleware.Idempotency(redisClient), handler.Generate)
		} else {
			payrolls.POST("/generate", handler.Generate)
		}
		payrolls.POST("/generate-bulk", handler.GenerateBulk)
		payrolls.POST("/:id/regenerate", handler.Regenerate)
		payrolls.POST("/:id/submit", handler.Submit)
		payrolls.POST("/:id/approve", handler.Approve)
		payrolls.POST("/:id/mark-paid", handler.MarkAsPaid)
		payrolls.POST("/:id/payslip", handler.RequestPayslip)
		payrolls.DELETE("/:id", handler.Delete)
	}
}
