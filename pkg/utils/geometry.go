package utils

import (
	"math"
	"math/rand"
)

// Point 画布像素空间中的一个二维坐标点
type Point struct {
	X float64
	Y float64
}

// Distance 计算两点之间的欧几里得距离
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// LerpPoint 在 a 和 b 之间按 t 线性插值
// t=0 返回 a，t=1 返回 b
func LerpPoint(a, b Point, t float64) Point {
	return Point{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
	}
}

// RandomPoints 在 [0,width] × [0,height] 范围内均匀生成 n 个随机点
// rng 由调用方注入，保证测试可复现
func RandomPoints(n int, width, height float64, rng *rand.Rand) []Point {
	if n <= 0 || width <= 0 || height <= 0 {
		return nil
	}
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: rng.Float64() * width,
			Y: rng.Float64() * height,
		}
	}
	return points
}
