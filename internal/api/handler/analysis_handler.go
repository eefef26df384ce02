package handler

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/config"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/logger"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/matching"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/parser"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/processor"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/ratelimit"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/storage"
)

// AnalysisHandler 简历分析处理器，串联 文本提取 -> 字段抽取 -> 匹配打分 的完整流程
type AnalysisHandler struct {
	cfg       *config.Config
	storage   *storage.Storage
	extractor *parser.TextExtractor
	resume    *processor.ResumeExtractor
	engine    *matching.Engine
	limiter   *ratelimit.TokenBucket // 为nil时不限流
}

// NewAnalysisHandler 创建一个新的简历分析处理器
func NewAnalysisHandler(
	cfg *config.Config,
	storage *storage.Storage,
	extractor *parser.TextExtractor,
	resume *processor.ResumeExtractor,
	engine *matching.Engine,
	limiter *ratelimit.TokenBucket,
) *AnalysisHandler {
	return &AnalysisHandler{
		cfg:       cfg,
		storage:   storage,
		extractor: extractor,
		resume:    resume,
		engine:    engine,
		limiter:   limiter,
	}
}

// HandleResumeAnalysis 处理简历上传并返回完整分析结果
// POST /api/v1/resume/upload，multipart字段名为 resume
func (h *AnalysisHandler) HandleResumeAnalysis(ctx context.Context, c *app.RequestContext) {
	if h.limiter != nil && !h.limiter.Allow() {
		c.JSON(consts.StatusTooManyRequests, utils.H{"error": "Too many requests, please try again later"})
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "No resume file provided"})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "No resume file selected"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !parser.SupportedExt(ext) {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "Unsupported file format: " + ext})
		return
	}

	if h.cfg.Upload.MaxSizeMB > 0 && fileHeader.Size > int64(h.cfg.Upload.MaxSizeMB)<<20 {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "Failed to read uploaded file"})
		return
	}

	text, err := h.extractor.Extract(ctx, data, fileHeader.Filename)
	if err != nil {
		logger.Ctx(ctx).Error().
			Err(err).
			Str("filename", fileHeader.Filename).
			Msg("提取简历文本失败")
		switch {
		case errors.Is(err, parser.ErrUnsupportedFormat):
			c.JSON(consts.StatusBadRequest, utils.H{"error": "Unsupported file format: " + ext})
		case errors.Is(err, parser.ErrEmptyDocument):
			c.JSON(consts.StatusBadRequest, utils.H{"error": "No text could be extracted from resume"})
		default:
			c.JSON(consts.StatusInternalServerError, utils.H{"error": "Failed to extract text from resume"})
		}
		return
	}

	resumeData, err := h.resume.Extract(ctx, text)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("简历字段抽取失败")
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "Failed to parse resume"})
		return
	}
	if len(resumeData.Skills) == 0 {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "No skills found in resume"})
		return
	}

	h.archive(ctx, ext, data, text)

	result, err := h.engine.Analyze(ctx, resumeData)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("简历分析失败")
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "Failed to analyze resume"})
		return
	}

	c.JSON(consts.StatusOK, result)
}

// archive 尽力归档原始文件与解析文本，失败只记日志不影响分析结果
func (h *AnalysisHandler) archive(ctx context.Context, ext string, data []byte, text string) {
	if h.storage.MinIO == nil {
		return
	}
	submissionID := uuid.NewString()
	if _, err := h.storage.MinIO.ArchiveOriginal(ctx, submissionID, ext, data); err != nil {
		logger.Ctx(ctx).Warn().
			Err(err).
			Str("submission_id", submissionID).
			Msg("归档原始简历失败")
		return
	}
	if _, err := h.storage.MinIO.ArchiveParsedText(ctx, submissionID, text); err != nil {
		logger.Ctx(ctx).Warn().
			Err(err).
			Str("submission_id", submissionID).
			Msg("归档解析文本失败")
	}
}
