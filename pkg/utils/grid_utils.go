package utils

import "math"

// SnapToGrid 将像素坐标向下对齐到网格格子边界
// 使用向下取整（负数向负无穷取整），保证结果是 cellSize 的整数倍
//
// 参数:
//   - v: 原始像素坐标
//   - cellSize: 格子尺寸（像素，必须为正数）
//
// 返回:
//   - int: 对齐后的坐标
func SnapToGrid(v, cellSize int) int {
	q := v / cellSize
	if v%cellSize != 0 && v < 0 {
		q--
	}
	return q * cellSize
}

// SnapPoint 将像素坐标点对齐到网格
func SnapPoint(x, y, cellSize int) (int, int) {
	return SnapToGrid(x, cellSize), SnapToGrid(y, cellSize)
}

// Distance 返回两点之间的欧几里得距离
func Distance(x1, y1, x2, y2 int) float64 {
	dx := float64(x1 - x2)
	dy := float64(y1 - y2)
	return math.Sqrt(dx*dx + dy*dy)
}
