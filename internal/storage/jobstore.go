package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/logger"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/types"
)

// ErrJobNotFound 岗位不存在或不属于该HR
var ErrJobNotFound = errors.New("岗位不存在或无权操作")

// hrJobsDocument hr_jobs.json 的文档结构
type hrJobsDocument struct {
	Jobs []types.JobPosting `json:"jobs"`
}

// JobStore 岗位数据访问层，合并三个来源：
// CSV语料库（只读）、HR发布的岗位（JSON文档）、可选的MySQL持久化
type JobStore struct {
	store    *FileStore
	filename string
	mysql    *MySQL // 可为nil

	mu     sync.RWMutex
	corpus []types.JobPosting // CSV语料，启动时加载
	hrJobs []types.JobPosting
}

// NewJobStore 创建岗位存储；corpusCSV为空时语料库为空，mysql可为nil
func NewJobStore(store *FileStore, filename, corpusCSV string, mysql *MySQL) (*JobStore, error) {
	s := &JobStore{
		store:    store,
		filename: filename,
		mysql:    mysql,
	}

	var doc hrJobsDocument
	if err := store.Load(filename, &doc); err != nil {
		return nil, err
	}
	s.hrJobs = doc.Jobs

	if corpusCSV != "" {
		corpus, err := loadJobCorpus(corpusCSV)
		if err != nil {
			logger.Warn().Err(err).Str("path", corpusCSV).Msg("加载岗位语料库失败，继续以空语料运行")
		} else {
			s.corpus = corpus
			logger.Info().Int("jobs", len(corpus)).Msg("岗位语料库加载完成")
		}
	}
	return s, nil
}

// loadJobCorpus 读取岗位语料CSV，要求 Position/Company/Location/Job_Description 列
func loadJobCorpus(path string) ([]types.JobPosting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("读取CSV表头失败: %w", err)
	}
	col := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}
	posCol, compCol := col("Position"), col("Company")
	locCol, descCol := col("Location"), col("Job_Description")
	if posCol == -1 || descCol == -1 {
		return nil, fmt.Errorf("岗位语料CSV缺少 Position 或 Job_Description 列")
	}

	field := func(row []string, idx int) string {
		if idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var jobs []types.JobPosting
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("读取岗位语料失败: %w", err)
		}
		jobs = append(jobs, types.JobPosting{
			Position:    field(row, posCol),
			Company:     field(row, compCol),
			Location:    field(row, locCol),
			Description: field(row, descCol),
		})
	}
	return jobs, nil
}

// Corpus 返回CSV语料库岗位（只读切片，调用方不得修改）
func (s *JobStore) Corpus() []types.JobPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.corpus
}

// AllForMatching 推荐引擎使用的完整岗位集合：语料库 + HR发布的岗位
func (s *JobStore) AllForMatching() []types.JobPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]types.JobPosting, 0, len(s.corpus)+len(s.hrJobs))
	all = append(all, s.corpus...)
	all = append(all, s.hrJobs...)
	return all
}

// ListCorpus 分页列出语料库岗位
func (s *JobStore) ListCorpus(limit int) []types.JobPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.corpus) {
		limit = len(s.corpus)
	}
	out := make([]types.JobPosting, limit)
	copy(out, s.corpus[:limit])
	return out
}

// SearchCorpus 在语料库中按岗位名或公司名做大小写不敏感的子串搜索
// 空搜索词视为匹配所有岗位；limit>0时截断结果
func (s *JobStore) SearchCorpus(term string, limit int) []types.JobPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.ToLower(strings.TrimSpace(term))
	var matched []types.JobPosting
	for _, job := range s.corpus {
		if term == "" ||
			strings.Contains(strings.ToLower(job.Position), term) ||
			strings.Contains(strings.ToLower(job.Company), term) {
			matched = append(matched, job)
			if limit > 0 && len(matched) >= limit {
				break
			}
		}
	}
	return matched
}

// AddHRJob 记录一条HR发布的岗位并持久化；配置了MySQL时同步落库
func (s *JobStore) AddHRJob(ctx context.Context, job types.JobPosting) error {
	s.mu.Lock()
	s.hrJobs = append(s.hrJobs, job)
	snapshot := hrJobsDocument{Jobs: append([]types.JobPosting(nil), s.hrJobs...)}
	s.mu.Unlock()

	if err := s.store.Save(s.filename, snapshot); err != nil {
		return fmt.Errorf("持久化HR岗位失败: %w", err)
	}

	if s.mysql != nil {
		if err := s.mysql.SaveJob(ctx, &job); err != nil {
			logger.Warn().Err(err).Str("job_id", job.ID).Msg("岗位写入MySQL失败，JSON文档仍是权威数据")
		}
	}
	return nil
}

// ListHRJobs 列出指定HR发布的岗位
func (s *JobStore) ListHRJobs(hrID string) []types.JobPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var jobs []types.JobPosting
	for _, job := range s.hrJobs {
		if job.HRID == hrID {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

// DeleteHRJob 删除HR名下的岗位，岗位不存在或归属不符时返回 ErrJobNotFound
func (s *JobStore) DeleteHRJob(ctx context.Context, hrID, jobID string) error {
	s.mu.Lock()
	idx := -1
	for i, job := range s.hrJobs {
		if job.ID == jobID && job.HRID == hrID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return ErrJobNotFound
	}
	s.hrJobs = append(s.hrJobs[:idx], s.hrJobs[idx+1:]...)
	snapshot := hrJobsDocument{Jobs: append([]types.JobPosting(nil), s.hrJobs...)}
	s.mu.Unlock()

	if err := s.store.Save(s.filename, snapshot); err != nil {
		return fmt.Errorf("持久化HR岗位失败: %w", err)
	}

	if s.mysql != nil {
		if _, err := s.mysql.DeleteJob(ctx, hrID, jobID); err != nil {
			logger.Warn().Err(err).Str("job_id", jobID).Msg("岗位从MySQL删除失败")
		}
	}
	return nil
}
