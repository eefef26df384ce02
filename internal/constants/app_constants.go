package constants

import "time"

// 缓存命名空间。三个命名空间相互独立，键空间不重叠
const (
	// CacheNamespaceScore ATS分数缓存：键为 resumeFingerprint_jobHash，永不过期
	CacheNamespaceScore = "score_cache"
	// CacheNamespaceRecommendation 推荐结果缓存：键为 resumeFingerprint，24小时内有效
	CacheNamespaceRecommendation = "recommendation_cache"
	// CacheNamespaceAnalysis 完整分析结果缓存：键为 resumeFingerprint，24小时内有效
	CacheNamespaceAnalysis = "analysis_cache"
)

// CacheFreshnessWindow 推荐/分析缓存的新鲜度窗口，超过视为未命中
const CacheFreshnessWindow = 24 * time.Hour

// 打分相关常量，调整前先同步更新匹配引擎的测试
const (
	// ATSBaseScore 打分起点，也是打分器内部出错时的降级返回值
	ATSBaseScore = 70
	// ATSMaxSkillBonus 技能匹配加分上限
	ATSMaxSkillBonus = 20
	// ATSEducationBonus 学历关键词加分
	ATSEducationBonus = 5
	// ATSMaxScore 分数上限
	ATSMaxScore = 100
)

// RecommendationLimit 按相似度初筛保留的岗位数
const RecommendationLimit = 10

// 支持的上传扩展名
const (
	ExtPDF  = ".pdf"
	ExtDOCX = ".docx"
	ExtDOC  = ".doc"
	ExtTXT  = ".txt"
)

// DefaultUserRole 注册时未指定角色的默认值
const DefaultUserRole = "individual"

// DefaultProfilePic 注册用户的默认头像路径，与前端静态资源约定一致
const DefaultProfilePic = "/src/assets/default-avatar.svg"

// 岗位列表接口的返回条数上限
const (
	// JobsListLimit GET /jobs 返回的语料库岗位数
	JobsListLimit = 100
	// JobSearchLimit POST /jobs/search 返回的匹配岗位数
	JobSearchLimit = 20
)
