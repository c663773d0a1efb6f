package config

// 布局配置常量
// 本文件定义了界面元素的位置参数，所有坐标使用逻辑屏幕坐标（左上角为原点）
// 逻辑屏幕尺寸来自 data/gameplay.yaml 的 screen 段，默认 480x854（竖屏）

// HUD Configuration (战斗界面顶部信息栏)
const (
	// HUDHeight 顶部信息栏高度
	HUDHeight = 64.0

	// HUDPadding 信息栏内边距
	HUDPadding = 12.0

	// HealthBarWidth 生命条宽度
	HealthBarWidth = 160.0

	// HealthBarHeight 生命条高度
	HealthBarHeight = 12.0

	// CooldownBarWidth 每个招式冷却条宽度
	CooldownBarWidth = 120.0

	// CooldownBarHeight 冷却条高度
	CooldownBarHeight = 8.0

	// CooldownBarGap 冷却条之间的间距
	CooldownBarGap = 16.0

	// CooldownBarBottomOffset 冷却条距屏幕底部的距离
	CooldownBarBottomOffset = 36.0

	// EnemyHealthBarHeight 敌人头顶血条高度
	EnemyHealthBarHeight = 4.0

	// BossHealthBarHeight 首领血条高度（显示在信息栏下方）
	BossHealthBarHeight = 10.0
)

// Menu Configuration (菜单按钮)
const (
	// ButtonWidth 菜单按钮宽度
	ButtonWidth = 240.0

	// ButtonHeight 菜单按钮高度
	ButtonHeight = 56.0

	// ButtonGap 按钮纵向间距
	ButtonGap = 20.0

	// SmallButtonSize 返回/暂停等小按钮的边长
	SmallButtonSize = 44.0

	// WorldTileHeight 世界选择列表每一项的高度
	WorldTileHeight = 64.0

	// ShopRowHeight 商店列表每一行高度
	ShopRowHeight = 52.0

	// ShopTabHeight 商店槽位标签高度
	ShopTabHeight = 44.0

	// ListTop 列表类界面的起始 Y 坐标
	ListTop = 120.0
)

// Rect 轴对齐矩形，用作点击区域
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（左闭右开）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center 返回矩形中心
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// MenuButtonRect 返回竖直排列的第 index 个菜单按钮区域（水平居中）
func MenuButtonRect(screenW, top float64, index int) Rect {
	return Rect{
		X: (screenW - ButtonWidth) / 2,
		Y: top + float64(index)*(ButtonHeight+ButtonGap),
		W: ButtonWidth,
		H: ButtonHeight,
	}
}

// ListRowRect 返回列表第 index 行的区域
func ListRowRect(screenW, top, rowHeight float64, index int) Rect {
	return Rect{
		X: HUDPadding,
		Y: top + float64(index)*rowHeight,
		W: screenW - 2*HUDPadding,
		H: rowHeight - 4,
	}
}

// CooldownBarRect 返回第 index 个槽位的冷却条区域（底部居中排列）
func CooldownBarRect(screenW, screenH float64, index, count int) Rect {
	total := float64(count)*CooldownBarWidth + float64(count-1)*CooldownBarGap
	startX := (screenW - total) / 2
	return Rect{
		X: startX + float64(index)*(CooldownBarWidth+CooldownBarGap),
		Y: screenH - CooldownBarBottomOffset,
		W: CooldownBarWidth,
		H: CooldownBarHeight,
	}
}
