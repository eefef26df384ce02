package processor

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrExtractTextFailed  = errors.New("提取简历文本失败")
	ErrAnnotationFailed   = errors.New("文本标注失败")
	ErrNoSkillsFound      = errors.New("简历中未识别到任何技能")
	ErrFieldExtractFailed = errors.New("字段提取失败")
)

// FieldExtractError 单个字段提取失败的详细错误
// 字段级失败不会中断整体提取流程，只记录并保留零值
type FieldExtractError struct {
	Field   string
	BaseErr error
	Detail  string
}

func (e *FieldExtractError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (字段:%s): %s", e.BaseErr, e.Field, e.Detail)
	}
	return fmt.Sprintf("%s (字段:%s)", e.BaseErr, e.Field)
}

func (e *FieldExtractError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *FieldExtractError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// NewFieldError 构造字段提取错误
func NewFieldError(field, detail string) error {
	return &FieldExtractError{
		Field:   field,
		BaseErr: ErrFieldExtractFailed,
		Detail:  detail,
	}
}
