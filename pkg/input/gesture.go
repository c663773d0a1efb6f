// Package input 手势识别和指针跟踪
package input

import "github.com/gonewx/phoenix/pkg/config"

// GestureKind 手势类型
type GestureKind int

const (
	GestureHold      GestureKind = iota // 长按
	GestureDoubleTap                    // 双击
	GestureTripleTap                    // 三击及以上
)

// String 返回手势名称
func (k GestureKind) String() string {
	switch k {
	case GestureHold:
		return "hold"
	case GestureDoubleTap:
		return "double_tap"
	case GestureTripleTap:
		return "triple_tap"
	}
	return "unknown"
}

// Slot 返回手势对应的攻击槽位
func (k GestureKind) Slot() config.MoveSlot {
	switch k {
	case GestureHold:
		return config.SlotHold
	case GestureDoubleTap:
		return config.SlotDouble
	default:
		return config.SlotTriple
	}
}

// Gesture 识别出的手势
type Gesture struct {
	Kind GestureKind
	At   float64 // 识别时刻（秒）
	X, Y float64 // 最近一次按下的位置
}

// GestureClassifier 区分长按、双击和三击
//
// 不读取系统时间，所有时间戳由调用方传入，便于测试和回放。
//   - 每次按下都会重新开始长按计时和连击窗口
//   - 按住超过 HoldDelay 触发一次长按
//   - 连击窗口到期时：按下次数 >= 3 为三击，== 2 为双击，单击不触发
//   - 本轮连击中已经触发长按时不再判定连击
type GestureClassifier struct {
	holdDelay float64
	tapWindow float64

	touching     bool
	holding      bool
	holdDeadline float64
	tapCount     int
	tapDeadline  float64
	startX       float64
	startY       float64
	lastX        float64
	lastY        float64
}

// NewGestureClassifier 创建手势识别器
func NewGestureClassifier(cfg config.GestureConfig) *GestureClassifier {
	return &GestureClassifier{
		holdDelay: cfg.HoldDelay,
		tapWindow: cfg.TapWindow,
	}
}

// TouchStart 手指按下
func (c *GestureClassifier) TouchStart(at, x, y float64) {
	c.touching = true
	c.tapCount++
	c.tapDeadline = at + c.tapWindow
	c.holdDeadline = at + c.holdDelay
	c.startX, c.startY = x, y
	c.lastX, c.lastY = x, y
}

// TouchMove 手指移动，返回相对上一位置的位移
// 移动不会取消长按
func (c *GestureClassifier) TouchMove(at, x, y float64) (dx, dy float64) {
	if !c.touching {
		return 0, 0
	}
	dx, dy = x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y
	return dx, dy
}

// TouchEnd 手指抬起，结束长按状态；连击窗口继续计时
func (c *GestureClassifier) TouchEnd(at float64) {
	c.touching = false
	c.holding = false
}

// TouchCancel 触摸被系统取消，丢弃全部状态
func (c *GestureClassifier) TouchCancel() {
	c.touching = false
	c.holding = false
	c.tapCount = 0
}

// Touching 是否有手指按下
func (c *GestureClassifier) Touching() bool {
	return c.touching
}

// Holding 当前是否处于长按状态
func (c *GestureClassifier) Holding() bool {
	return c.holding
}

// Update 推进计时器，返回在 at 之前到期的手势（按时间顺序）
func (c *GestureClassifier) Update(at float64) []Gesture {
	var out []Gesture

	holdDue := c.touching && !c.holding && at >= c.holdDeadline
	tapDue := c.tapCount > 0 && at >= c.tapDeadline

	// 两个计时器同时到期时按到期先后处理
	if holdDue && tapDue && c.holdDeadline < c.tapDeadline {
		out = c.fireHold(out)
		out = c.evaluateTaps(out)
		return out
	}
	if tapDue {
		out = c.evaluateTaps(out)
	}
	if holdDue {
		out = c.fireHold(out)
	}
	return out
}

func (c *GestureClassifier) fireHold(out []Gesture) []Gesture {
	c.holding = true
	return append(out, Gesture{Kind: GestureHold, At: c.holdDeadline, X: c.startX, Y: c.startY})
}

func (c *GestureClassifier) evaluateTaps(out []Gesture) []Gesture {
	count := c.tapCount
	c.tapCount = 0
	if c.holding {
		return out
	}
	switch {
	case count >= 3:
		out = append(out, Gesture{Kind: GestureTripleTap, At: c.tapDeadline, X: c.startX, Y: c.startY})
	case count == 2:
		out = append(out, Gesture{Kind: GestureDoubleTap, At: c.tapDeadline, X: c.startX, Y: c.startY})
	}
	return out
}
