package core

import "math"

// trackBall 電腦球拍的比例追蹤：中心往球的y靠近，速度打折且不會衝過頭，
// 差距在deadband內就不動
func (e *Engine) trackBall(p *Paddle) float64 {
	diff := e.ball.Y - p.center()
	if math.Abs(diff) <= e.tuning.ComputerDeadband*e.arena.Height {
		return 0
	}
	step := math.Min(p.Speed*e.tuning.ComputerGain, math.Abs(diff))
	return math.Copysign(step, diff)
}
