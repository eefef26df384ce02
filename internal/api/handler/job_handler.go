package handler

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/constants"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/logger"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/storage"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/types"
)

// JobHandler 岗位相关接口：语料库浏览/搜索与HR岗位管理
type JobHandler struct {
	storage *storage.Storage
}

// NewJobHandler 创建一个新的岗位处理器
func NewJobHandler(storage *storage.Storage) *JobHandler {
	return &JobHandler{storage: storage}
}

// HandleListJobs 返回语料库中前一批岗位
// GET /api/v1/jobs
func (h *JobHandler) HandleListJobs(ctx context.Context, c *app.RequestContext) {
	jobs := h.storage.Jobs.ListCorpus(constants.JobsListLimit)
	c.JSON(consts.StatusOK, utils.H{
		"status": "success",
		"jobs":   jobs,
	})
}

type searchJobsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// HandleSearchJobs 在语料库中按岗位名或公司名搜索
// POST /api/v1/jobs/search
func (h *JobHandler) HandleSearchJobs(ctx context.Context, c *app.RequestContext) {
	var req searchJobsRequest
	body, err := c.Body()
	if err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "Invalid request body"})
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			c.JSON(consts.StatusBadRequest, utils.H{"error": "Invalid request body"})
			return
		}
	}

	jobs := h.storage.Jobs.SearchCorpus(req.SearchTerm, constants.JobSearchLimit)
	c.JSON(consts.StatusOK, utils.H{
		"status": "success",
		"jobs":   jobs,
	})
}

// HandleListHRJobs 返回指定HR发布的所有岗位
// GET /api/v1/hr/jobs?hr_id=xxx
func (h *JobHandler) HandleListHRJobs(ctx context.Context, c *app.RequestContext) {
	hrID := c.Query("hr_id")
	if hrID == "" {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "HR ID is required"})
		return
	}

	jobs := h.storage.Jobs.ListHRJobs(hrID)
	c.JSON(consts.StatusOK, utils.H{
		"status": "success",
		"jobs":   jobs,
	})
}

type addHRJobRequest struct {
	HRID            string `json:"hr_id"`
	Position        string `json:"position"`
	Company         string `json:"company"`
	Location        string `json:"location"`
	Description     string `json:"description"`
	Requirements    string `json:"requirements"`
	ExperienceLevel string `json:"experienceLevel"`
	Remote          bool   `json:"remote"`
}

// HandleAddHRJob 发布一条HR岗位，岗位ID与发布时间由服务端生成
// POST /api/v1/hr/jobs
func (h *JobHandler) HandleAddHRJob(ctx context.Context, c *app.RequestContext) {
	body, err := c.Body()
	if err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "Invalid request body"})
		return
	}
	var req addHRJobRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "Invalid request body"})
		return
	}
	if req.HRID == "" {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "HR ID is required"})
		return
	}

	job := types.JobPosting{
		ID:              uuid.NewString(),
		HRID:            req.HRID,
		Position:        req.Position,
		Company:         req.Company,
		Location:        req.Location,
		Description:     req.Description,
		Requirements:    req.Requirements,
		ExperienceLevel: req.ExperienceLevel,
		Remote:          req.Remote,
		DatePosted:      time.Now().Format(time.RFC3339),
	}

	if err := h.storage.Jobs.AddHRJob(ctx, job); err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("hr_id", req.HRID).Msg("保存HR岗位失败")
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "Failed to save job"})
		return
	}

	c.JSON(consts.StatusOK, utils.H{
		"status": "success",
		"job":    job,
	})
}

// HandleDeleteHRJob 删除指定HR的一条岗位
// DELETE /api/v1/hr/jobs/:job_id?hr_id=xxx
func (h *JobHandler) HandleDeleteHRJob(ctx context.Context, c *app.RequestContext) {
	jobID := c.Param("job_id")
	hrID := c.Query("hr_id")
	if hrID == "" {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "HR ID is required"})
		return
	}

	if err := h.storage.Jobs.DeleteHRJob(ctx, hrID, jobID); err != nil {
		if errors.Is(err, storage.ErrJobNotFound) {
			c.JSON(consts.StatusNotFound, utils.H{"error": "Job not found or unauthorized"})
			return
		}
		logger.Ctx(ctx).Error().Err(err).Str("job_id", jobID).Msg("删除HR岗位失败")
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "Failed to delete job"})
		return
	}

	c.JSON(consts.StatusOK, utils.H{"status": "success"})
}
