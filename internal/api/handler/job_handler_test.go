package handler_test

import (
	"testing"

	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/require"
)

func TestListJobs(t *testing.T) {
	h, _ := newTestServer(t)

	resp := ut.PerformRequest(h.Engine, "GET", "/api/v1/jobs", nil)
	require.Equal(t, 200, resp.Code)
	body := decodeBody(t, resp)
	require.Equal(t, "success", body["status"])
	require.Len(t, body["jobs"], 2)
}

func TestSearchJobs(t *testing.T) {
	h, _ := newTestServer(t)

	resp := postJSON(t, h, "/api/v1/jobs/search", map[string]any{"searchTerm": "python"})
	require.Equal(t, 200, resp.Code)
	body := decodeBody(t, resp)
	jobs := body["jobs"].([]any)
	require.Len(t, jobs, 1)
	require.Equal(t, "Python Developer", jobs[0].(map[string]any)["position"])

	// 公司名也参与匹配
	resp = postJSON(t, h, "/api/v1/jobs/search", map[string]any{"searchTerm": "dataco"})
	require.Len(t, decodeBody(t, resp)["jobs"], 1)

	// 空搜索词返回全部
	resp = postJSON(t, h, "/api/v1/jobs/search", map[string]any{"searchTerm": ""})
	require.Len(t, decodeBody(t, resp)["jobs"], 2)
}

func TestHRJobLifecycle(t *testing.T) {
	h, _ := newTestServer(t)

	// 缺少hr_id
	resp := postJSON(t, h, "/api/v1/hr/jobs", map[string]any{"position": "Engineer"})
	require.Equal(t, 400, resp.Code)
	require.Equal(t, "HR ID is required", decodeBody(t, resp)["error"])

	// 发布岗位
	resp = postJSON(t, h, "/api/v1/hr/jobs", map[string]any{
		"hr_id":           "hr-1",
		"position":        "Go Developer",
		"company":         "Acme",
		"location":        "Remote",
		"description":     "Build services in go",
		"requirements":    "golang, docker",
		"experienceLevel": "mid",
		"remote":          true,
	})
	require.Equal(t, 200, resp.Code)
	body := decodeBody(t, resp)
	require.Equal(t, "success", body["status"])
	created := body["job"].(map[string]any)
	require.NotEmpty(t, created["id"], "服务端生成岗位ID")
	require.NotEmpty(t, created["datePosted"], "服务端生成发布时间")
	require.Equal(t, "hr-1", created["hr_id"])
	jobID := created["id"].(string)

	// 按HR列出
	resp = ut.PerformRequest(h.Engine, "GET", "/api/v1/hr/jobs?hr_id=hr-1", nil)
	require.Equal(t, 200, resp.Code)
	require.Len(t, decodeBody(t, resp)["jobs"], 1)

	// 其他HR看不到
	resp = ut.PerformRequest(h.Engine, "GET", "/api/v1/hr/jobs?hr_id=hr-2", nil)
	require.Equal(t, 200, resp.Code)
	require.Empty(t, decodeBody(t, resp)["jobs"])

	// 其他HR不能删除
	resp = ut.PerformRequest(h.Engine, "DELETE", "/api/v1/hr/jobs/"+jobID+"?hr_id=hr-2", nil)
	require.Equal(t, 404, resp.Code)
	require.Equal(t, "Job not found or unauthorized", decodeBody(t, resp)["error"])

	// 归属HR删除成功
	resp = ut.PerformRequest(h.Engine, "DELETE", "/api/v1/hr/jobs/"+jobID+"?hr_id=hr-1", nil)
	require.Equal(t, 200, resp.Code)
	require.Equal(t, "success", decodeBody(t, resp)["status"])

	// 再次删除返回404
	resp = ut.PerformRequest(h.Engine, "DELETE", "/api/v1/hr/jobs/"+jobID+"?hr_id=hr-1", nil)
	require.Equal(t, 404, resp.Code)
}

func TestListHRJobsRequiresID(t *testing.T) {
	h, _ := newTestServer(t)

	resp := ut.PerformRequest(h.Engine, "GET", "/api/v1/hr/jobs", nil)
	require.Equal(t, 400, resp.Code)
	require.Equal(t, "HR ID is required", decodeBody(t, resp)["error"])
}
