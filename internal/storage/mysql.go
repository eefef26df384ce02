package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/config"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/storage/models"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/tracing"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/types"
)

var mysqlTracer = otel.Tracer("resume-screening/storage/mysql")

// MySQL 可选的岗位持久化后端，未配置时岗位只存在JSON文档里
type MySQL struct {
	db *gorm.DB
}

// NewMySQL 连接MySQL并迁移岗位表
func NewMySQL(cfg *config.MySQLConfig) (*MySQL, error) {
	if cfg == nil || cfg.Host == "" {
		return nil, fmt.Errorf("MySQL未配置")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("连接MySQL失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层连接池失败: %w", err)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetimeMinutes > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
	}

	if err := db.AutoMigrate(&models.JobRecord{}); err != nil {
		return nil, fmt.Errorf("迁移岗位表失败: %w", err)
	}
	return &MySQL{db: db}, nil
}

// SaveJob 持久化一条岗位
func (m *MySQL) SaveJob(ctx context.Context, job *types.JobPosting) error {
	ctx, span := mysqlTracer.Start(ctx, "MySQL.SaveJob")
	defer span.End()

	record, err := jobToRecord(job)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeStore)
		return err
	}
	if err := m.db.WithContext(ctx).Create(record).Error; err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeStore)
		return fmt.Errorf("保存岗位失败: %w", err)
	}
	job.ID = record.ID
	return nil
}

// DeleteJob 删除指定HR名下的岗位，返回是否确有删除
func (m *MySQL) DeleteJob(ctx context.Context, hrID, jobID string) (bool, error) {
	ctx, span := mysqlTracer.Start(ctx, "MySQL.DeleteJob")
	defer span.End()
	span.SetAttributes(attribute.String("job.id", jobID))

	result := m.db.WithContext(ctx).
		Where("id = ? AND hr_id = ?", jobID, hrID).
		Delete(&models.JobRecord{})
	if result.Error != nil {
		tracing.RecordError(span, result.Error, tracing.ErrorTypeStore)
		return false, fmt.Errorf("删除岗位失败: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ListJobs 列出全部岗位；hrID非空时只列该HR发布的
func (m *MySQL) ListJobs(ctx context.Context, hrID string) ([]types.JobPosting, error) {
	ctx, span := mysqlTracer.Start(ctx, "MySQL.ListJobs")
	defer span.End()

	query := m.db.WithContext(ctx).Model(&models.JobRecord{})
	if hrID != "" {
		query = query.Where("hr_id = ?", hrID)
	}

	var records []models.JobRecord
	if err := query.Order("date_posted DESC").Find(&records).Error; err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeStore)
		return nil, fmt.Errorf("查询岗位失败: %w", err)
	}

	jobs := make([]types.JobPosting, 0, len(records))
	for i := range records {
		jobs = append(jobs, recordToJob(&records[i]))
	}
	span.SetAttributes(attribute.Int("job.count", len(jobs)))
	return jobs, nil
}

// Close 关闭数据库连接
func (m *MySQL) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func jobToRecord(job *types.JobPosting) (*models.JobRecord, error) {
	// 岗位要求是自由格式（字符串或数组），按JSON原样落库
	reqs, err := json.Marshal(job.Requirements)
	if err != nil {
		return nil, fmt.Errorf("序列化岗位要求失败: %w", err)
	}
	datePosted := time.Now()
	if job.DatePosted != "" {
		if t, err := time.Parse(time.RFC3339, job.DatePosted); err == nil {
			datePosted = t
		}
	}
	return &models.JobRecord{
		ID:              job.ID,
		HRID:            job.HRID,
		Position:        job.Position,
		Company:         job.Company,
		Location:        job.Location,
		Description:     job.Description,
		Requirements:    reqs,
		ExperienceLevel: job.ExperienceLevel,
		Remote:          job.Remote,
		DatePosted:      datePosted,
	}, nil
}

func recordToJob(r *models.JobRecord) types.JobPosting {
	var reqs string
	_ = json.Unmarshal(r.Requirements, &reqs)
	return types.JobPosting{
		ID:              r.ID,
		HRID:            r.HRID,
		Position:        r.Position,
		Company:         r.Company,
		Location:        r.Location,
		Description:     r.Description,
		Requirements:    reqs,
		ExperienceLevel: r.ExperienceLevel,
		Remote:          r.Remote,
		DatePosted:      r.DatePosted.Format(time.RFC3339),
	}
}
