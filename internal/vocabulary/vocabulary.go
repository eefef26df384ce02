package vocabulary

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/config"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/logger"
)

// defaultSkills 内置技能词表，覆盖语言/Web/数据库/云与DevOps/数据科学/移动端/流程工具
// 配置了CSV词表时不使用
var defaultSkills = []string{
	// 编程语言
	"python", "java", "javascript", "js", "c++", "c#", "ruby", "php", "swift", "kotlin",
	"scala", "rust", "golang", "typescript", "perl", "r", "matlab", "bash", "shell",

	// Web技术
	"html", "css", "sass", "less", "bootstrap", "tailwind", "jquery", "react", "vue",
	"angular", "node", "express", "django", "flask", "spring", "asp.net", "laravel",
	"webpack", "babel", "next.js", "nuxt.js", "svelte", "graphql", "rest", "soap",

	// 数据库
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra",
	"oracle", "sqlite", "mariadb", "dynamodb", "firebase",

	// 云与DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab", "github",
	"bitbucket", "terraform", "ansible", "puppet", "chef", "prometheus", "grafana",

	// AI与数据科学
	"machine learning", "deep learning", "nlp", "computer vision", "tensorflow",
	"pytorch", "keras", "scikit-learn", "pandas", "numpy", "scipy", "matplotlib",

	// 移动开发
	"android", "ios", "react native", "flutter", "xamarin", "ionic",
	"objective-c", "mobile development",

	// 其他
	"agile", "scrum", "kanban", "jira", "confluence", "git", "svn", "linux",
	"windows", "macos", "ci/cd", "devops", "testing", "junit", "selenium",
	"cypress", "jest", "mocha", "blockchain", "cybersecurity", "networking",
}

// 展示大小写规则的内置部分，可通过 SkillsConfig 扩展
var (
	defaultAcronyms = []string{"html", "css", "php", "sql", "api", "aws", "gcp"}

	defaultProperNouns = map[string]string{
		"javascript": "JavaScript",
		"typescript": "TypeScript",
		"github":     "GitHub",
		"gitlab":     "GitLab",
		"devops":     "DevOps",
		"mongodb":    "MongoDB",
	}

	defaultCapitalizedPrefixes = []string{"react", "vue", "angular"}
)

// Vocabulary 大小写不敏感的技能词表及展示规则
type Vocabulary struct {
	skills      map[string]struct{} // 全部小写
	acronyms    map[string]struct{}
	properNouns map[string]string
	capPrefixes []string
	fromCSV     bool

	sorted []string // 懒初始化的排序副本
}

// Load 按配置构建词表：优先CSV，加载失败降级到内置词表（记录日志，不报错）
func Load(cfg config.SkillsConfig) *Vocabulary {
	v := newWithRules(cfg)

	if cfg.CSVPath == "" {
		v.addAll(defaultSkills)
		return v
	}

	skills, err := loadSkillsCSV(cfg.CSVPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.CSVPath).Msg("加载技能CSV失败，使用内置词表")
		v.addAll(defaultSkills)
		return v
	}
	v.addAll(skills)
	v.fromCSV = true
	return v
}

// Default 仅使用内置词表和内置展示规则
func Default() *Vocabulary {
	v := newWithRules(config.SkillsConfig{})
	v.addAll(defaultSkills)
	return v
}

func newWithRules(cfg config.SkillsConfig) *Vocabulary {
	v := &Vocabulary{
		skills:      make(map[string]struct{}),
		acronyms:    make(map[string]struct{}),
		properNouns: make(map[string]string),
	}
	for _, a := range defaultAcronyms {
		v.acronyms[a] = struct{}{}
	}
	for _, a := range cfg.ExtraAcronyms {
		v.acronyms[strings.ToLower(a)] = struct{}{}
	}
	for k, canon := range defaultProperNouns {
		v.properNouns[k] = canon
	}
	for k, canon := range cfg.ExtraProperNouns {
		v.properNouns[strings.ToLower(k)] = canon
	}
	v.capPrefixes = append(v.capPrefixes, defaultCapitalizedPrefixes...)
	for _, p := range cfg.ExtraCapitalizedPrefixes {
		v.capPrefixes = append(v.capPrefixes, strings.ToLower(p))
	}
	return v
}

func (v *Vocabulary) addAll(skills []string) {
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			v.skills[s] = struct{}{}
		}
	}
	v.sorted = nil
}

// loadSkillsCSV 读取技能CSV，要求存在 Skill 列
func loadSkillsCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("技能CSV为空: %s", path)
	}

	skillCol := -1
	for i, name := range records[0] {
		if strings.EqualFold(strings.TrimSpace(name), "Skill") {
			skillCol = i
			break
		}
	}
	if skillCol == -1 {
		return nil, fmt.Errorf("技能CSV缺少 Skill 列: %s", path)
	}

	var skills []string
	for _, row := range records[1:] {
		if skillCol < len(row) {
			skills = append(skills, row[skillCol])
		}
	}
	if len(skills) == 0 {
		return nil, fmt.Errorf("技能CSV中 Skill 列没有数据: %s", path)
	}
	return skills, nil
}

// Contains 判断某个词（大小写不敏感）是否在词表内
func (v *Vocabulary) Contains(term string) bool {
	_, ok := v.skills[strings.ToLower(term)]
	return ok
}

// All 返回排序后的全部技能（小写）
func (v *Vocabulary) All() []string {
	if v.sorted == nil {
		v.sorted = make([]string, 0, len(v.skills))
		for s := range v.skills {
			v.sorted = append(v.sorted, s)
		}
		sort.Strings(v.sorted)
	}
	return v.sorted
}

// Len 词表大小
func (v *Vocabulary) Len() int {
	return len(v.skills)
}

// FromCSV 词表是否来自配置的CSV文件
// 内置默认词表含 r 这类极短技能名，不适合整表对任意文本做子串扫描
func (v *Vocabulary) FromCSV() bool {
	return v.fromCSV
}

// DisplayCase 将小写技能名转换为展示形式：
// 已知缩写词全大写，已知专有名词用规范形式，react/vue/angular前缀首字母大写，其余保持小写
func (v *Vocabulary) DisplayCase(skill string) string {
	lower := strings.ToLower(skill)
	if _, ok := v.acronyms[lower]; ok {
		return strings.ToUpper(lower)
	}
	if canon, ok := v.properNouns[lower]; ok {
		return canon
	}
	for _, prefix := range v.capPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return strings.ToUpper(lower[:1]) + lower[1:]
		}
	}
	return lower
}

// SkillsInText 返回词表中以子串形式出现在文本里的技能（小写），结果有序
func (v *Vocabulary) SkillsInText(text string) []string {
	lowered := strings.ToLower(text)
	var found []string
	for _, skill := range v.All() {
		if strings.Contains(lowered, skill) {
			found = append(found, skill)
		}
	}
	return found
}
