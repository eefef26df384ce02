package types

// StructuredResume 简历解析后的结构化数据
// 所有字段均为"尽力提取"：提取失败的字段保持零值，绝不作为错误向上传播
type StructuredResume struct {
	Name        string   `json:"name,omitempty"`         // 第一个识别到的人名实体
	Email       string   `json:"email,omitempty"`        // 第一个匹配到的邮箱
	PhoneNumber string   `json:"phone_number,omitempty"` // 第一个匹配到的电话号码
	Skills      []string `json:"skills"`                 // 命中技能词表的技能，已做展示大小写规范化并排序
	Education   []string `json:"education"`              // 含教育关键词的句子，按首次出现顺序去重
	Experience  []string `json:"experience"`             // 含工作经历关键词的句子
	Companies   []string `json:"company_names"`          // 公司名集合
	Designation []string `json:"designation"`            // 职位头衔集合
	// TotalExperience 总工作年限（保留一位小数）
	// 注意：该值以全文中最早/最晚可解析日期的跨度估算，可能因毕业年份等无关日期而偏大；
	// 只有一个可解析日期时为0.0而不是缺失。这是已记录的启发式局限，不在此处修正
	TotalExperience *float64 `json:"total_experience,omitempty"`
}

// HasContact 是否提取到了至少一种联系方式
func (r *StructuredResume) HasContact() bool {
	return r.Email != "" || r.PhoneNumber != ""
}

// JobPosting 岗位信息，既可来自CSV语料库，也可来自HR上传
type JobPosting struct {
	ID              string `json:"id,omitempty"`    // HR岗位才有，语料库岗位为空
	HRID            string `json:"hr_id,omitempty"` // HR岗位的归属者
	Position        string `json:"position"`        // 岗位名称
	Company         string `json:"company"`         // 公司
	Location        string `json:"location"`        // 工作地点
	Description     string `json:"description"`     // 岗位描述全文
	Requirements    string `json:"requirements,omitempty"`
	ExperienceLevel string `json:"experienceLevel,omitempty"`
	Remote          bool   `json:"remote,omitempty"`
	DatePosted      string `json:"datePosted,omitempty"` // RFC3339
}

// ScoredJob 推荐结果中的一条岗位及其各项匹配信号
type ScoredJob struct {
	Position        string   `json:"position"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	MatchScore      int      `json:"match_score"`      // 综合匹配分(0-100)
	ATSScore        int      `json:"ats_score"`        // ATS兼容分(0-100)
	MatchingSkills  []string `json:"matching_skills"`  // 简历技能中出现在该岗位描述里的子集
	ExperienceMatch bool     `json:"experience_match"` // 岗位年限要求是否满足
	EducationMatch  bool     `json:"education_match"`  // 岗位学历要求是否满足
}

// FeedbackItem 针对简历单个维度的反馈
type FeedbackItem struct {
	Category   string  `json:"category"`
	Positive   string  `json:"positive"`
	Suggestion *string `json:"suggestion"` // 无建议时为null
}

// AnalysisResult 简历分析接口的完整响应
type AnalysisResult struct {
	Status          string           `json:"status"`
	Recommendations []ScoredJob      `json:"recommendations"`
	ExtractedData   StructuredResume `json:"extracted_data"`
	ATSScore        float64          `json:"ats_score"` // 各推荐岗位ATS分的算术平均
	Feedback        []FeedbackItem   `json:"feedback"`
}

// User 注册用户，密码以 hash:salt 形式存储
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"` // 序列化到存储时保留，响应中必须剔除
	Name       string `json:"name"`
	Role       string `json:"role"`
	CreatedAt  string `json:"created_at"`
	ProfilePic string `json:"profile_pic,omitempty"`
}

// PublicUser 返回剔除凭据后的用户视图
func (u User) PublicUser() User {
	u.Password = ""
	return u
}
