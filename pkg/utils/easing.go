package utils

import "math"

// EaseOutCubic 三次方缓出，t ∈ [0, 1]
// 开始快，结束慢，用于胜利面板淡入
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(1-t, 3)
}
