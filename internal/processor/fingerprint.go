package processor

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/types"
)

// fingerprintPayload 参与指纹计算的字段，键按字典序排列保证序列化稳定
type fingerprintPayload struct {
	Education       []string `json:"education"`
	Email           string   `json:"email"`
	Experience      []string `json:"experience"`
	PhoneNumber     string   `json:"phone_number"`
	Skills          []string `json:"skills"`
	TotalExperience float64  `json:"total_experience"`
}

// Fingerprint 计算简历内容指纹：技能/教育/经历排序后连同联系方式做MD5
// 姓名、公司、头衔不参与，避免展示性字段的抖动影响缓存命中
func Fingerprint(resume *types.StructuredResume) string {
	payload := fingerprintPayload{
		Education:   sortedCopy(resume.Education),
		Email:       resume.Email,
		Experience:  sortedCopy(resume.Experience),
		PhoneNumber: resume.PhoneNumber,
		Skills:      sortedCopy(resume.Skills),
	}
	if resume.TotalExperience != nil {
		payload.TotalExperience = *resume.TotalExperience
	}

	data, _ := json.Marshal(payload)
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// FingerprintText 对任意文本计算MD5指纹，岗位描述的缓存键用
func FingerprintText(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

func sortedCopy(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}
