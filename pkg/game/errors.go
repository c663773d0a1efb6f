package game

import "errors"

// 玩家状态操作被拒绝时返回的错误，调用方用 errors.Is 判断
var (
	ErrUnknownMove       = errors.New("unknown move")
	ErrInsufficientCoins = errors.New("insufficient coins")
	ErrMoveAlreadyOwned  = errors.New("move already owned")
	ErrMoveNotOwned      = errors.New("move not owned")
	ErrUnknownWorld      = errors.New("unknown world")
	ErrWorldLocked       = errors.New("world locked")
)
