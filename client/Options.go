package client

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type Palette struct {
	Paddle tcell.Style
	Ball   tcell.Style
	Text   tcell.Style
}

type Options struct {
	FrameInterval time.Duration // 每一個畫面(tick)的間隔
	HoldInterval  time.Duration // 按鍵視為按住的時間，要比終端機的按鍵重複延遲長
	Palette       Palette
}

func DefaultOptions() Options {
	white := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	return Options{
		FrameInterval: 33 * time.Millisecond,
		HoldInterval:  400 * time.Millisecond,
		Palette:       Palette{Paddle: white, Ball: white, Text: white},
	}
}

// LoadOptions 從properties讀取畫面相關設定
func LoadOptions(v *viper.Viper) (Options, error) {
	v.SetDefault("frameInterval", 33)
	v.SetDefault("holdInterval", 400)
	v.SetDefault("paddleColor", "#ffffff")
	v.SetDefault("ballColor", "#ffffff")
	v.SetDefault("textColor", "#ffffff")

	frame, err := cast.ToIntE(v.Get("frameInterval"))
	if err != nil || frame <= 0 {
		return Options{}, fmt.Errorf("frameInterval must be a positive number of ms: %v", v.Get("frameInterval"))
	}
	hold, err := cast.ToIntE(v.Get("holdInterval"))
	if err != nil || hold <= 0 {
		return Options{}, fmt.Errorf("holdInterval must be a positive number of ms: %v", v.Get("holdInterval"))
	}

	palette, err := ParsePalette(
		cast.ToString(v.Get("paddleColor")),
		cast.ToString(v.Get("ballColor")),
		cast.ToString(v.Get("textColor")),
	)
	if err != nil {
		return Options{}, err
	}

	return Options{
		FrameInterval: time.Duration(frame) * time.Millisecond,
		HoldInterval:  time.Duration(hold) * time.Millisecond,
		Palette:       palette,
	}, nil
}

func ParsePalette(paddleHex, ballHex, textHex string) (Palette, error) {
	paddle, err := parseStyle(paddleHex)
	if err != nil {
		return Palette{}, err
	}
	ball, err := parseStyle(ballHex)
	if err != nil {
		return Palette{}, err
	}
	text, err := parseStyle(textHex)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Paddle: paddle, Ball: ball, Text: text}, nil
}

func parseStyle(hex string) (tcell.Style, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.StyleDefault, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	fg := tcell.NewRGBColor(int32(r), int32(g), int32(b))
	return tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(fg), nil
}
