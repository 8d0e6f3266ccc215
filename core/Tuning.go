package core

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning 遊戲平衡參數，幾何相關的數值都是場地尺寸的比例
type Tuning struct {
	WinningScore   int
	BallSpeed      float64 // 發球時每個tick的位移，dx=寬*BallSpeed, dy=高*BallSpeed
	BallRadius     float64 // 相對場地高度
	HitMultiplier  float64 // 每次擊球水平速度的倍率，不設上限
	MaxBounceAngle float64 // 擊中球拍邊緣時的角度(度)

	PaddleWidth  float64 // 相對場地寬度
	PaddleHeight float64 // 相對場地高度
	PaddleSpeed  float64 // 相對場地高度
	PaddleOffset float64 // 球拍離左右邊界的距離，相對場地寬度

	ComputerGain     float64 // 電腦球拍速度佔一般球拍速度的比例
	ComputerDeadband float64 // 相對場地高度
}

func DefaultTuning() Tuning {
	return Tuning{
		WinningScore:   5,
		BallSpeed:      0.01,
		BallRadius:     0.02,
		HitMultiplier:  1.05,
		MaxBounceAngle: 45,

		PaddleWidth:  0.015,
		PaddleHeight: 0.2,
		PaddleSpeed:  0.04,
		PaddleOffset: 0.03,

		ComputerGain:     0.6,
		ComputerDeadband: 0.005,
	}
}

func (t Tuning) Validate() error {
	switch {
	case t.WinningScore < 1:
		return fmt.Errorf("%w: winningScore must be at least 1, got %d", ErrInvalidTuning, t.WinningScore)
	case !positive(t.BallSpeed):
		return fmt.Errorf("%w: ballSpeed must be positive, got %v", ErrInvalidTuning, t.BallSpeed)
	case !positive(t.BallRadius):
		return fmt.Errorf("%w: ballRadius must be positive, got %v", ErrInvalidTuning, t.BallRadius)
	case !finite(t.HitMultiplier) || t.HitMultiplier < 1:
		return fmt.Errorf("%w: hitMultiplier must be >= 1, got %v", ErrInvalidTuning, t.HitMultiplier)
	case !positive(t.MaxBounceAngle) || t.MaxBounceAngle >= 90:
		return fmt.Errorf("%w: maxBounceAngle must be in (0, 90), got %v", ErrInvalidTuning, t.MaxBounceAngle)
	case !positive(t.PaddleHeight) || t.PaddleHeight > 1:
		return fmt.Errorf("%w: paddleHeight must be in (0, 1], got %v", ErrInvalidTuning, t.PaddleHeight)
	case !positive(t.PaddleSpeed):
		return fmt.Errorf("%w: paddleSpeed must be positive, got %v", ErrInvalidTuning, t.PaddleSpeed)
	case !positive(t.PaddleWidth) || !finite(t.PaddleOffset) || t.PaddleOffset < 0 || t.PaddleOffset+t.PaddleWidth >= 0.5:
		return fmt.Errorf("%w: paddleWidth %v and paddleOffset %v do not fit half the arena", ErrInvalidTuning, t.PaddleWidth, t.PaddleOffset)
	case !positive(t.ComputerGain):
		return fmt.Errorf("%w: computerGain must be positive, got %v", ErrInvalidTuning, t.ComputerGain)
	case !finite(t.ComputerDeadband) || t.ComputerDeadband < 0:
		return fmt.Errorf("%w: computerDeadband must not be negative, got %v", ErrInvalidTuning, t.ComputerDeadband)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(v float64) bool {
	return finite(v) && v > 0
}
