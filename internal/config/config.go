package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 应用程序配置
type Config struct {
	// 服务器配置
	Server ServerConfig `yaml:"server"`

	// 日志配置
	Logger LoggerConfig `yaml:"logger"`

	// 技能词表配置
	Skills SkillsConfig `yaml:"skills"`

	// 文件存储配置（用户、HR岗位、缓存的JSON文档）
	Store StoreConfig `yaml:"store"`

	// Redis配置（可选的缓存后端）
	Redis RedisConfig `yaml:"redis"`

	// MySQL配置（可选的岗位语料来源）
	MySQL MySQLConfig `yaml:"mysql"`

	// MinIO配置（可选的原始简历/解析文本归档）
	MinIO MinIOConfig `yaml:"minio"`

	// 上传处理配置
	Upload UploadConfig `yaml:"upload"`

	// 认证配置
	Auth AuthConfig `yaml:"auth"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Address string `yaml:"address"` // 例如 ":8080"
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`         // debug, info, warn, error
	Format       string `yaml:"format"`        // json, pretty
	TimeFormat   string `yaml:"time_format"`   // 时间格式
	ReportCaller bool   `yaml:"report_caller"` // 是否报告调用位置
}

// SkillsConfig 技能词表及展示大小写规则
// 大小写规则按配置数据处理而非写死在代码里，便于随新框架扩展
type SkillsConfig struct {
	CSVPath string `yaml:"csv_path"` // 技能CSV路径，列名 Skill；为空时使用内置默认词表
	// ExtraAcronyms 追加的全大写缩写词（在内置 HTML/CSS/PHP/SQL/API/AWS/GCP 之外）
	ExtraAcronyms []string `yaml:"extra_acronyms"`
	// ExtraProperNouns 追加的专有名词展示形式，键为小写技能名
	ExtraProperNouns map[string]string `yaml:"extra_proper_nouns"`
	// ExtraCapitalizedPrefixes 追加的首字母大写前缀（在内置 react/vue/angular 之外）
	ExtraCapitalizedPrefixes []string `yaml:"extra_capitalized_prefixes"`
}

// StoreConfig JSON文档存储配置
type StoreConfig struct {
	DataDir      string `yaml:"data_dir"`       // 数据目录，users.json / hr_jobs.json / ats_scores.json 所在位置
	JobCorpusCSV string `yaml:"job_corpus_csv"` // 岗位语料CSV路径（Position/Company/Location/Job_Description列）
	UsersFile    string `yaml:"users_file"`     // 相对DataDir，默认 users.json
	HRJobsFile   string `yaml:"hr_jobs_file"`   // 相对DataDir，默认 hr_jobs.json
	CacheFile    string `yaml:"cache_file"`     // 相对DataDir，默认 ats_scores.json
	CacheBackend string `yaml:"cache_backend"`  // "file"（默认）或 "redis"
}

// RedisConfig Redis配置
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	// 连接池设置
	PoolSize     int `yaml:"pool_size"`
	MinIdleConns int `yaml:"min_idle_conns"`
	// 超时设置
	DialTimeoutSeconds  int `yaml:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds"`
}

// MySQLConfig MySQL配置
type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	// 连接池设置
	MaxIdleConns int `yaml:"max_idle_conns"`
	MaxOpenConns int `yaml:"max_open_conns"`
	// 连接生命周期
	ConnMaxLifetimeMinutes int `yaml:"conn_max_lifetime_minutes"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint         string `yaml:"endpoint"`
	AccessKeyID      string `yaml:"accessKeyID"`
	SecretAccessKey  string `yaml:"secretAccessKey"`
	UseSSL           bool   `yaml:"useSSL"`
	OriginalsBucket  string `yaml:"originalsBucket"`  // 原始简历存储桶
	ParsedTextBucket string `yaml:"parsedTextBucket"` // 解析文本存储桶
	Location         string `yaml:"location"`
}

// UploadConfig 上传处理配置
type UploadConfig struct {
	TempDir    string `yaml:"temp_dir"`    // 临时文件目录，为空用系统默认
	MaxSizeMB  int    `yaml:"max_size_mb"` // 上传大小上限
	PDFTimeout string `yaml:"pdf_timeout"` // PDF解析超时，例如 "30s"
	// 简历分析接口限流，QPM<=0时不限流
	RateLimitQPM   int `yaml:"rate_limit_qpm"`
	RateLimitBurst int `yaml:"rate_limit_burst"` // <=0时取QPM的一半
}

// AuthConfig 认证配置
type AuthConfig struct {
	PBKDF2Iterations int `yaml:"pbkdf2_iterations"` // 为0时使用默认值
}

// LoadConfig 从文件加载配置；configPath为空时在常见位置查找，找不到则返回默认配置
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
			filepath.Join(os.Getenv("HOME"), ".resume-screening", "config.yaml"),
		}
		if execPath, err := os.Executable(); err == nil {
			searchPaths = append(searchPaths, filepath.Join(filepath.Dir(execPath), "config.yaml"))
		}
		for _, p := range searchPaths {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
		if configPath == "" {
			// 没有配置文件也可以运行，全部走默认值
			return createDefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", configPath, err)
	}

	cfg := createDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", configPath, err)
	}

	return cfg, nil
}

// createDefaultConfig 返回全部使用默认值的配置
func createDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Address: ":8080"},
		Logger: LoggerConfig{
			Level:      "info",
			Format:     "json",
			TimeFormat: time.RFC3339,
		},
		Store: StoreConfig{
			DataDir:      "data",
			UsersFile:    "users.json",
			HRJobsFile:   "hr_jobs.json",
			CacheFile:    "ats_scores.json",
			CacheBackend: "file",
		},
		Upload: UploadConfig{
			MaxSizeMB:  16,
			PDFTimeout: "30s",
		},
	}
}

// GetDuration 解析时间串，失败时返回默认值
func GetDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	if durationStr == "" {
		return defaultDuration
	}
	d, err := time.ParseDuration(durationStr)
	if err != nil {
		return defaultDuration
	}
	return d
}
