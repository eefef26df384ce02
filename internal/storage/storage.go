package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/config"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/logger"
)

// Storage 存储管理器，聚合所有存储相关依赖
// 文件存储始终可用；Redis/MySQL/MinIO按配置初始化，失败时降级为未启用
type Storage struct {
	// 本地JSON文档
	File *FileStore

	// 业务存储
	Users *UserStore
	Jobs  *JobStore

	// 缓存后端（FileCache或RedisCache）
	Cache CacheStore

	// 可选组件
	Redis *RedisCache
	MySQL *MySQL
	MinIO *MinIO
}

// NewStorage 创建存储管理器
// JSON文档存储初始化失败是致命错误；可选组件失败只记录警告
func NewStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg == nil {
		return nil, fmt.Errorf("配置不能为空")
	}

	s := &Storage{}
	var err error

	s.File, err = NewFileStore(cfg.Store.DataDir)
	if err != nil {
		return nil, fmt.Errorf("初始化文件存储失败: %w", err)
	}

	// 可选: MySQL
	if cfg.MySQL.Host != "" {
		s.MySQL, err = NewMySQL(&cfg.MySQL)
		if err != nil {
			logger.Warn().Err(err).Msg("初始化MySQL失败，岗位只保存在JSON文档中")
			s.MySQL = nil
		} else {
			logger.Info().Str("host", cfg.MySQL.Host).Msg("MySQL连接成功")
		}
	}

	// 可选: Redis
	if cfg.Redis.Address != "" {
		s.Redis, err = NewRedisCache(ctx, &cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("初始化Redis失败")
			s.Redis = nil
		} else {
			logger.Info().Str("address", cfg.Redis.Address).Msg("Redis连接成功")
		}
	}

	// 可选: MinIO
	if cfg.MinIO.Endpoint != "" {
		s.MinIO, err = NewMinIO(ctx, &cfg.MinIO)
		if err != nil {
			logger.Warn().Err(err).Msg("初始化MinIO失败，简历不做对象存储归档")
			s.MinIO = nil
		} else {
			logger.Info().Str("endpoint", cfg.MinIO.Endpoint).Msg("MinIO连接成功")
		}
	}

	// 缓存后端选择: 配置要求redis且连接成功时用Redis，否则用文件缓存
	if cfg.Store.CacheBackend == "redis" && s.Redis != nil {
		s.Cache = s.Redis
	} else {
		if cfg.Store.CacheBackend == "redis" {
			logger.Warn().Msg("Redis缓存后端不可用，降级为文件缓存")
		}
		fileCache, err := NewFileCache(s.File, cfg.Store.CacheFile)
		if err != nil {
			return nil, fmt.Errorf("初始化文件缓存失败: %w", err)
		}
		s.Cache = fileCache
	}

	s.Users, err = NewUserStore(s.File, cfg.Store.UsersFile)
	if err != nil {
		return nil, fmt.Errorf("初始化用户存储失败: %w", err)
	}

	corpusPath := cfg.Store.JobCorpusCSV
	if corpusPath != "" && !filepath.IsAbs(corpusPath) {
		corpusPath = filepath.Clean(corpusPath)
	}
	s.Jobs, err = NewJobStore(s.File, cfg.Store.HRJobsFile, corpusPath, s.MySQL)
	if err != nil {
		return nil, fmt.Errorf("初始化岗位存储失败: %w", err)
	}

	return s, nil
}

// Close 关闭所有连接
func (s *Storage) Close() {
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			logger.Error().Err(err).Msg("关闭Redis连接失败")
		}
	}
	if s.MySQL != nil {
		if err := s.MySQL.Close(); err != nil {
			logger.Error().Err(err).Msg("关闭MySQL连接失败")
		}
	}
	// MinIO客户端无需显式关闭
}
