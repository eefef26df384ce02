package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/require"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/api/handler"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/api/router"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/auth"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/config"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/matching"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/parser"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/processor"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/storage"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/vocabulary"
)

const testCorpusCSV = `Position,Company,Location,Job_Description
Python Developer,TechCorp,Remote,"We need python and django experience, minimum 2+ years of experience, bachelor's degree required"
Data Analyst,DataCo,New York,"Analyze data with sql and excel"
`

// newTestServer 搭建一个带全部路由的内存测试服务
func newTestServer(t *testing.T) (*server.Hertz, *storage.Storage) {
	t.Helper()

	dataDir := t.TempDir()
	corpusPath := filepath.Join(dataDir, "jobs.csv")
	require.NoError(t, os.WriteFile(corpusPath, []byte(testCorpusCSV), 0644))

	cfg := &config.Config{}
	cfg.Store.DataDir = dataDir
	cfg.Store.JobCorpusCSV = corpusPath
	cfg.Store.UsersFile = "users.json"
	cfg.Store.HRJobsFile = "hr_jobs.json"
	cfg.Store.CacheFile = "ats_scores.json"
	cfg.Upload.MaxSizeMB = 5

	store, err := storage.NewStorage(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	vocab := vocabulary.Default()
	extractor := parser.NewTextExtractor(nil)
	resumeExtractor := processor.NewResumeExtractor(
		[]processor.ComponentOpt{processor.WithVocabulary(vocab)},
		nil,
	)
	engine := matching.NewEngine(vocab, store.Jobs, store.Cache)

	h := server.New(server.WithHostPorts("127.0.0.1:0"))
	router.RegisterRoutes(h,
		handler.NewAnalysisHandler(cfg, store, extractor, resumeExtractor, engine, nil),
		handler.NewJobHandler(store),
		handler.NewAuthHandler(store.Users, auth.NewHasher(1000)),
	)
	return h, store
}

// postJSON 以JSON体发起POST请求
func postJSON(t *testing.T, h *server.Hertz, path string, payload any) *ut.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return ut.PerformRequest(h.Engine, "POST", path,
		&ut.Body{Body: bytes.NewBuffer(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: "application/json"},
	)
}

// multipartResume 构造带resume字段的multipart表单
func multipartResume(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func decodeBody(t *testing.T, resp *ut.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func TestHealthCheck(t *testing.T) {
	h, _ := newTestServer(t)

	resp := ut.PerformRequest(h.Engine, "GET", "/api/v1/health", nil)
	require.Equal(t, 200, resp.Code)
	require.Equal(t, "healthy", decodeBody(t, resp)["status"])
}
