package router

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/api/handler"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(
	h *server.Hertz,
	analysisHandler *handler.AnalysisHandler,
	jobHandler *handler.JobHandler,
	authHandler *handler.AuthHandler,
) {
	api := h.Group("/api/v1")

	// 健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "healthy"})
	})

	// 简历分析
	api.POST("/resume/upload", analysisHandler.HandleResumeAnalysis)

	// 岗位语料库
	api.GET("/jobs", jobHandler.HandleListJobs)
	api.POST("/jobs/search", jobHandler.HandleSearchJobs)

	// HR岗位管理
	api.GET("/hr/jobs", jobHandler.HandleListHRJobs)
	api.POST("/hr/jobs", jobHandler.HandleAddHRJob)
	api.DELETE("/hr/jobs/:job_id", jobHandler.HandleDeleteHRJob)

	// 认证
	api.POST("/auth/signup", authHandler.HandleSignup)
	api.POST("/auth/login", authHandler.HandleLogin)
	api.GET("/auth/check", authHandler.HandleCheck)
}
