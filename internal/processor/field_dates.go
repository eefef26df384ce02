package processor

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// 日期识别模式：月份+年份、MM/DD/YYYY、MM-DD-YYYY、裸四位年份
var datePatterns = []struct {
	re     *regexp.Regexp
	layout func(match string) string
}{
	{
		re: regexp.MustCompile(`(?i)(jan|january|feb|february|mar|march|apr|april|may|jun|june|jul|july|aug|august|sep|september|oct|october|nov|november|dec|december)[,\s]+\d{4}`),
		layout: func(match string) string {
			month, _, _ := strings.Cut(match, " ")
			if len(month) > 3 {
				return "January 2006"
			}
			return "Jan 2006"
		},
	},
	{
		re:     regexp.MustCompile(`\d{2}/\d{2}/\d{4}`),
		layout: func(string) string { return "01/02/2006" },
	},
	{
		re:     regexp.MustCompile(`\d{2}-\d{2}-\d{4}`),
		layout: func(string) string { return "01-02-2006" },
	},
	{
		re:     regexp.MustCompile(`\d{4}`),
		layout: func(string) string { return "2006" },
	},
}

// calculateTotalExperience 用全文识别出的最早和最晚日期估算总工作年限
// 注意这是对全部日期取极差，会把教育经历等非工作日期也计算在内；
// 只识别出一个日期时极差为0，返回0.0而不是缺失
func calculateTotalExperience(text string) *float64 {
	var dates []time.Time
	for _, p := range datePatterns {
		for _, match := range p.re.FindAllString(text, -1) {
			normalized := normalizeDateMatch(match)
			if t, err := time.Parse(p.layout(normalized), normalized); err == nil {
				dates = append(dates, t)
			}
		}
	}
	if len(dates) == 0 {
		return nil
	}

	earliest, latest := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(earliest) {
			earliest = d
		}
		if d.After(latest) {
			latest = d
		}
	}

	years := float64(latest.Year()-earliest.Year()) + float64(latest.Month()-earliest.Month())/12
	rounded := math.Round(years*10) / 10
	return &rounded
}

// normalizeDateMatch 统一月份大小写和分隔符，便于 time.Parse 处理
func normalizeDateMatch(match string) string {
	fields := strings.Fields(strings.ReplaceAll(match, ",", " "))
	if len(fields) == 2 {
		return titleWord(fields[0]) + " " + fields[1]
	}
	return match
}
