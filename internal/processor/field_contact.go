package processor

import "regexp"

var (
	// phoneRe 北美风格号码，可带+1前缀和括号区号
	phoneRe = regexp.MustCompile(`(?:\+?1[-.]?)?\s*(?:\([0-9]{3}\)|[0-9]{3})[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
	emailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
)

// extractEmail 返回文本中的第一个邮箱地址，没有则为空串
func extractEmail(text string) string {
	return emailRe.FindString(text)
}

// extractPhoneNumber 返回文本中的第一个电话号码，没有则为空串
func extractPhoneNumber(text string) string {
	return phoneRe.FindString(text)
}
