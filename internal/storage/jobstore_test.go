package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/types"
)

const corpusCSV = `Position,Company,Location,Job_Description
Python Developer,Acme Corp,Remote,"Looking for python and django experience, 3+ years experience required"
Data Scientist,DataCo,NYC,"Machine learning and pandas, master's degree preferred"
Frontend Engineer,WebWorks,SF,"React and typescript"
`

func newTestJobStore(t *testing.T) *JobStore {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "jobs.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(corpusCSV), 0o644))

	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	js, err := NewJobStore(fs, "hr_jobs.json", csvPath, nil)
	require.NoError(t, err)
	return js
}

func TestJobStoreCorpusLoad(t *testing.T) {
	js := newTestJobStore(t)

	corpus := js.Corpus()
	require.Len(t, corpus, 3)
	assert.Equal(t, "Python Developer", corpus[0].Position)
	assert.Contains(t, corpus[0].Description, "django")
}

func TestJobStoreMissingCorpus(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	js, err := NewJobStore(fs, "hr_jobs.json", "/nonexistent/jobs.csv", nil)
	require.NoError(t, err, "语料缺失时应降级为空语料而不是失败")
	assert.Empty(t, js.Corpus())
}

func TestJobStoreSearchCorpus(t *testing.T) {
	js := newTestJobStore(t)

	assert.Len(t, js.SearchCorpus("python", 20), 1)
	assert.Len(t, js.SearchCorpus("dataco", 20), 1, "公司名也参与搜索")
	assert.Empty(t, js.SearchCorpus("rust", 20))
	assert.Len(t, js.SearchCorpus("  ", 20), len(js.Corpus()), "空搜索词匹配全部")
	assert.Len(t, js.SearchCorpus("", 1), 1, "limit截断")
}

func TestJobStoreListCorpusLimit(t *testing.T) {
	js := newTestJobStore(t)

	assert.Len(t, js.ListCorpus(2), 2)
	assert.Len(t, js.ListCorpus(100), 3)
}

func TestJobStoreHRJobLifecycle(t *testing.T) {
	js := newTestJobStore(t)
	ctx := context.Background()

	job := types.JobPosting{
		ID:       "job-1",
		HRID:     "hr-1",
		Position: "Backend Engineer",
		Company:  "Startup Inc",
	}
	require.NoError(t, js.AddHRJob(ctx, job))

	listed := js.ListHRJobs("hr-1")
	require.Len(t, listed, 1)
	assert.Equal(t, "Backend Engineer", listed[0].Position)

	assert.Empty(t, js.ListHRJobs("hr-2"), "其他HR看不到别人的岗位")

	// HR岗位参与推荐匹配
	assert.Len(t, js.AllForMatching(), 4)

	// 归属不符时拒绝删除
	assert.ErrorIs(t, js.DeleteHRJob(ctx, "hr-2", "job-1"), ErrJobNotFound)

	require.NoError(t, js.DeleteHRJob(ctx, "hr-1", "job-1"))
	assert.Empty(t, js.ListHRJobs("hr-1"))
}

func TestJobStoreHRJobsPersist(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	js, err := NewJobStore(fs, "hr_jobs.json", "", nil)
	require.NoError(t, err)
	require.NoError(t, js.AddHRJob(context.Background(), types.JobPosting{ID: "j1", HRID: "hr-1", Position: "DevOps"}))

	reloaded, err := NewJobStore(fs, "hr_jobs.json", "", nil)
	require.NoError(t, err)
	assert.Len(t, reloaded.ListHRJobs("hr-1"), 1)
}
