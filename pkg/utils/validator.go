package utils

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrInvalidIDParam   = errors.New("无效的 ID 参数，必须是正整数")
	ErrRoomNameTooLong  = errors.New("房间名称过长，最多255个字符")
	ErrItemNameRequired = errors.New("物品名称不能为空")
)

// IsNumeric 检查字符串是否只包含数字
func IsNumeric(s string) bool {
	if s == "" {
		return false // 空字符串不视为数字
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ValidateIDParam 校验路径参数是否是合法的数据库 ID。
// 如果有效，返回 nil；否则返回具体的错误。
func ValidateIDParam(param string) error {
	trimmed := strings.TrimSpace(param)
	if !IsNumeric(trimmed) || strings.HasPrefix(trimmed, "0") {
		return ErrInvalidIDParam
	}
	return nil
}

// ValidateRoomName 校验房间名称。空字符串视为未填写，不报错。
func ValidateRoomName(room string) error {
	if len(strings.TrimSpace(room)) > 255 {
		return ErrRoomNameTooLong
	}
	return nil
}

// ValidateItemName 校验物品名称，不允许为空或只包含空白字符
func ValidateItemName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrItemNameRequired
	}
	return nil
}
