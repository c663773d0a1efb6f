package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 指针（触摸或鼠标左键）状态
type PointerState int

const (
	PointerNone     PointerState = iota // 未按下
	PointerStarted                      // 本帧刚按下
	PointerDragging                     // 按住中
	PointerEnded                        // 本帧刚抬起
)

// PointerInfo 当前帧的指针信息
type PointerInfo struct {
	State              PointerState
	StartX, StartY     int
	CurrentX, CurrentY int
	// TouchID 跟踪的触摸 ID，-1 表示鼠标
	TouchID      ebiten.TouchID
	IsTouchInput bool
}

// PointerSource 提供原始指针状态，便于在测试中替换 ebiten 输入
type PointerSource interface {
	// JustPressed 返回本帧新按下的指针位置和触摸 ID（鼠标为 -1）
	JustPressed() (id ebiten.TouchID, x, y int, ok bool)
	// Position 返回指定指针当前位置，指针已抬起时 ok 为 false
	Position(id ebiten.TouchID) (x, y int, ok bool)
}

// EbitenSource 从 ebiten 读取触摸和鼠标输入，触摸优先
type EbitenSource struct{}

// JustPressed 实现 PointerSource
func (EbitenSource) JustPressed() (ebiten.TouchID, int, int, bool) {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return ids[0], x, y, true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return -1, x, y, true
	}
	return 0, 0, 0, false
}

// Position 实现 PointerSource
func (EbitenSource) Position(id ebiten.TouchID) (int, int, bool) {
	if id < 0 {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			return 0, 0, false
		}
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	for _, tid := range ebiten.AppendTouchIDs(nil) {
		if tid == id {
			x, y := ebiten.TouchPosition(id)
			return x, y, true
		}
	}
	return 0, 0, false
}

// PointerTracker 跟踪单个指针的按下、拖动和抬起，并把事件送入手势识别器
//
// 每帧调用一次 Update。拖动产生的位移通过 Delta 取得，用于移动凤凰。
type PointerTracker struct {
	source     PointerSource
	classifier *GestureClassifier
	info       PointerInfo
	dx, dy     float64
}

// NewPointerTracker 创建指针跟踪器，classifier 可为 nil（只跟踪拖动，例如菜单）
func NewPointerTracker(source PointerSource, classifier *GestureClassifier) *PointerTracker {
	return &PointerTracker{
		source:     source,
		classifier: classifier,
		info:       PointerInfo{State: PointerNone, TouchID: -1},
	}
}

// Update 更新指针状态，now 为当前时刻（秒），返回本帧识别出的手势
func (pt *PointerTracker) Update(now float64) []Gesture {
	pt.dx, pt.dy = 0, 0

	switch pt.info.State {
	case PointerNone:
		pt.checkStart(now)

	case PointerStarted, PointerDragging:
		x, y, ok := pt.source.Position(pt.info.TouchID)
		if !ok {
			pt.info.State = PointerEnded
			if pt.classifier != nil {
				pt.classifier.TouchEnd(now)
			}
			break
		}
		pt.info.State = PointerDragging
		pt.dx = float64(x - pt.info.CurrentX)
		pt.dy = float64(y - pt.info.CurrentY)
		pt.info.CurrentX, pt.info.CurrentY = x, y
		if pt.classifier != nil {
			pt.classifier.TouchMove(now, float64(x), float64(y))
		}

	case PointerEnded:
		// 抬起状态只保持一帧；同一帧可能已经再次按下
		pt.Reset()
		pt.checkStart(now)
	}

	if pt.classifier == nil {
		return nil
	}
	return pt.classifier.Update(now)
}

func (pt *PointerTracker) checkStart(now float64) {
	id, x, y, ok := pt.source.JustPressed()
	if !ok {
		return
	}
	pt.info = PointerInfo{
		State:        PointerStarted,
		StartX:       x,
		StartY:       y,
		CurrentX:     x,
		CurrentY:     y,
		TouchID:      id,
		IsTouchInput: id >= 0,
	}
	if pt.classifier != nil {
		pt.classifier.TouchStart(now, float64(x), float64(y))
	}
}

// Reset 丢弃当前指针状态
func (pt *PointerTracker) Reset() {
	pt.info = PointerInfo{State: PointerNone, TouchID: -1}
	pt.dx, pt.dy = 0, 0
}

// Cancel 丢弃指针和手势状态（暂停、切换场景时调用）
func (pt *PointerTracker) Cancel() {
	pt.Reset()
	if pt.classifier != nil {
		pt.classifier.TouchCancel()
	}
}

// Info 返回当前指针信息
func (pt *PointerTracker) Info() PointerInfo {
	return pt.info
}

// JustPressed 本帧是否刚按下
func (pt *PointerTracker) JustPressed() bool {
	return pt.info.State == PointerStarted
}

// JustReleased 本帧是否刚抬起
func (pt *PointerTracker) JustReleased() bool {
	return pt.info.State == PointerEnded
}

// Pressed 指针是否按住
func (pt *PointerTracker) Pressed() bool {
	return pt.info.State == PointerStarted || pt.info.State == PointerDragging
}

// Delta 本帧拖动位移
func (pt *PointerTracker) Delta() (float64, float64) {
	return pt.dx, pt.dy
}

// Position 当前指针位置
func (pt *PointerTracker) Position() (int, int) {
	return pt.info.CurrentX, pt.info.CurrentY
}
