package utils

import (
	"fmt"
	"image/color"
	"strings"
)

// ParseHexColor 解析 "#RRGGBB" 或 "#RRGGBBAA" 格式的十六进制颜色
// 供配置文件中的调色板使用
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	var c color.RGBA
	c.A = 0xff

	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: expected 6 or 8 hex digits", s)
	}

	return c, nil
}

// Brighten 将颜色向白色方向混合 amount ∈ [0,1]
// amount=0 返回原色，amount=1 返回白色（Alpha 不变）
func Brighten(c color.RGBA, amount float64) color.RGBA {
	amount = Clamp01(amount)
	blend := func(v uint8) uint8 {
		return uint8(Lerp(float64(v), 255, amount))
	}
	return color.RGBA{R: blend(c.R), G: blend(c.G), B: blend(c.B), A: c.A}
}
