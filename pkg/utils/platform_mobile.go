//go:build mobile

package utils

// IsMobile 移动端编译时固定返回 true（不显示 F11 全屏等桌面功能）
func IsMobile() bool {
	return true
}
