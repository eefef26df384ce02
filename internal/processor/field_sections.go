package processor

import (
	"regexp"
	"strings"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/parser"
)

// educationTerms 学历相关词汇：学位、学位缩写、教育阶段和机构
var educationTerms = []string{
	"bachelor", "master", "phd", "doctorate", "doctoral", "associate",
	"b.tech", "m.tech", "b.e.", "m.e.", "b.sc", "m.sc", "b.a.", "m.a.",
	"bca", "mca", "b.com", "m.com", "mba", "diploma",

	"bs", "ms", "ba", "ma", "bsc", "msc", "btech", "mtech",

	"high school", "secondary", "undergraduate", "graduate", "postgraduate",
	"post-graduate", "ph.d", "ph.d.",

	"university", "college", "institute", "school", "academy",
	"certification", "degree", "education", "qualification",
}

// experienceTerms 工作经历相关词汇：职位、工作用语、时间指示词和常见前缀
var experienceTerms = []string{
	"engineer", "developer", "programmer", "analyst", "consultant",
	"manager", "director", "lead", "architect", "designer",
	"administrator", "specialist", "coordinator", "supervisor",

	"experience", "work", "employment", "job", "career", "position",
	"role", "company", "organization", "firm", "corporation",
	"employer", "client", "project", "responsibility",

	"year", "month", "present", "current", "former", "previous",

	"senior", "junior", "associate", "principal", "staff",
	"technical", "software", "systems", "solution",
}

var (
	bulletPrefixRe = regexp.MustCompile(`^[-•*]\s*`)

	// 常见学位缩写的规范写法
	degreeRewrites = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`(?i)\bb\.tech\b`), "B.Tech"},
		{regexp.MustCompile(`(?i)\bm\.tech\b`), "M.Tech"},
		{regexp.MustCompile(`(?i)\bb\.sc\b`), "B.Sc"},
		{regexp.MustCompile(`(?i)\bm\.sc\b`), "M.Sc"},
		{regexp.MustCompile(`(?i)\bph\.d\b`), "Ph.D"},
		{regexp.MustCompile(`(?i)\bmba\b`), "MBA"},
	}

	srRe = regexp.MustCompile(`(?i)\bsr\.\s*`)
	jrRe = regexp.MustCompile(`(?i)\bjr\.\s*`)
)

// capitalizeSentence 首字母大写，其余小写
func capitalizeSentence(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// cleanSentence 压缩空白并去掉行首项目符号
func cleanSentence(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return bulletPrefixRe.ReplaceAllString(s, "")
}

func containsAnyTerm(sent string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(sent, term) {
			return true
		}
	}
	return false
}

// extractEducation 扫描小写文本的句子，保留含学历词汇的句子
// 清洗后首字母大写，常见学位缩写改为规范写法，按出现顺序去重
func extractEducation(lowered *parser.Annotation) []string {
	var education []string
	seen := make(map[string]struct{})

	for _, sent := range lowered.Sentences {
		sent = strings.TrimSpace(sent)
		if len(strings.Fields(sent)) < 3 {
			continue
		}
		if !containsAnyTerm(sent, educationTerms) {
			continue
		}

		sent = capitalizeSentence(cleanSentence(sent))
		for _, rw := range degreeRewrites {
			sent = rw.re.ReplaceAllString(sent, rw.repl)
		}

		if _, ok := seen[sent]; !ok {
			seen[sent] = struct{}{}
			education = append(education, sent)
		}
	}
	return education
}

// rejectedSentencePrefixes 以限定词或人称代词开头的句子多为职责描述而非经历条目
var (
	determinerPrefixes = []string{"The", "A", "An", "This", "That", "These", "Those"}
	pronounPrefixes    = []string{"i ", "we ", "they ", "you "}
)

// extractExperience 扫描小写文本的句子，保留含工作经历词汇的句子
// 清洗后展开sr./jr.缩写，并用原文的专有名词恢复大小写；过滤过短和描述性开头的句子
func extractExperience(lowered, cased *parser.Annotation) []string {
	// 原文中的专有名词词元，用于恢复公司名/人名的大小写
	var properNouns []string
	for _, tok := range cased.Tokens {
		if (tok.Tag == "NNP" || tok.Tag == "NNPS") && len(tok.Text) > 1 {
			properNouns = append(properNouns, tok.Text)
		}
	}

	var experience []string
	seen := make(map[string]struct{})

	for _, sent := range lowered.Sentences {
		sent = strings.TrimSpace(sent)
		if len(strings.Fields(sent)) < 3 {
			continue
		}
		if !containsAnyTerm(sent, experienceTerms) {
			continue
		}

		sent = capitalizeSentence(cleanSentence(sent))
		sent = srRe.ReplaceAllString(sent, "Senior ")
		sent = jrRe.ReplaceAllString(sent, "Junior ")
		for _, pn := range properNouns {
			sent = strings.ReplaceAll(sent, strings.ToLower(pn), titleWord(pn))
		}

		if _, ok := seen[sent]; ok {
			continue
		}
		if len(strings.Fields(sent)) <= 3 {
			continue
		}
		if hasAnyPrefix(sent, determinerPrefixes) {
			continue
		}
		if hasAnyPrefix(strings.ToLower(sent), pronounPrefixes) {
			continue
		}

		seen[sent] = struct{}{}
		experience = append(experience, sent)
	}
	return experience
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// titleWord 词首字母大写，其余小写
func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}
