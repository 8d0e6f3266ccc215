package core

import (
	"PingPong/logger"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

var ErrInvalidConfiguration = errors.New("invalid arena configuration")
var ErrNotConfigured = errors.New("arena not configured")

// Event Step回傳這一個tick發生的事
type Event uint8

const (
	EventWall Event = 1 << iota
	EventLeftHit
	EventRightHit
	EventLeftPoint
	EventRightPoint
	EventGameOver
)

func (e Event) Has(flag Event) bool {
	return e&flag != 0
}

// Engine 單執行緒的模擬核心，不可同時從多個goroutine呼叫
type Engine struct {
	tuning Tuning
	random Random

	arena      Arena
	configured bool

	left  *Paddle
	right *Paddle
	ball  *Ball

	state      MatchState
	winner     Side
	vsComputer bool
	matchId    string
}

// NewEngine random為nil時使用以時間為seed的亂數
func NewEngine(tuning Tuning, random Random) (*Engine, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	if random == nil {
		random = NewRandom(0)
	}

	return &Engine{
		tuning: tuning,
		random: random,
		left:   &Paddle{},
		right:  &Paddle{},
		ball:   &Ball{},
	}, nil
}

// Configure 依照新的場地尺寸重新計算球拍，比賽中呼叫也不會影響分數
func (e *Engine) Configure(width, height float64) error {
	if !positive(width) || !positive(height) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidConfiguration, width, height)
	}

	old := e.arena
	e.arena = Arena{Width: width, Height: height}
	e.layoutPaddles()

	//球的位置與速度跟著場地等比例縮放
	if e.configured {
		sx, sy := width/old.Width, height/old.Height
		e.ball.X *= sx
		e.ball.Y *= sy
		e.ball.DX *= sx
		e.ball.DY *= sy
	}
	e.ball.Radius = e.tuning.BallRadius * height
	e.configured = true

	logger.Log.Debug(fmt.Sprintf(logger.ArenaConfiguredMsg, width, height))
	return nil
}

// SetTuning 替換遊戲參數，球拍會依新參數重新排版
func (e *Engine) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	e.tuning = t
	if !e.configured {
		return nil
	}
	return e.Configure(e.arena.Width, e.arena.Height)
}

func (e *Engine) Tuning() Tuning {
	return e.tuning
}

func (e *Engine) layoutPaddles() {
	w, h := e.arena.Width, e.arena.Height
	for _, p := range []*Paddle{e.left, e.right} {
		p.Width = w * e.tuning.PaddleWidth
		p.Height = h * e.tuning.PaddleHeight
		p.Speed = h * e.tuning.PaddleSpeed
		p.Y = h/2 - p.Height/2
		p.VelY = 0
	}
	e.left.X = w * e.tuning.PaddleOffset
	e.right.X = w - e.right.Width - w*e.tuning.PaddleOffset
}

func (e *Engine) StartMatch(vsComputer bool) error {
	if !e.configured {
		return ErrNotConfigured
	}

	e.vsComputer = vsComputer
	e.left.Computer = false
	e.right.Computer = vsComputer
	for _, p := range []*Paddle{e.left, e.right} {
		p.Score = 0
		p.Input = DirNone
	}
	e.layoutPaddles()
	e.resetBall()

	e.winner = SideNone
	e.matchId = uuid.NewString()
	e.state = Running

	mode := "2P"
	if vsComputer {
		mode = "vsComputer"
	}
	logger.Log.Info(fmt.Sprintf(logger.MatchStartMsg, e.matchId, mode))
	return nil
}

// Stop 回到Idle，例如玩家回主選單
func (e *Engine) Stop() {
	if e.state == Idle {
		return
	}
	e.state = Idle
	e.left.Input = DirNone
	e.right.Input = DirNone
	logger.Log.Info(fmt.Sprintf(logger.MatchStopMsg, e.matchId))
}

// SetPaddleInput 記錄下一個tick的按鍵狀態，電腦控制的球拍會忽略
func (e *Engine) SetPaddleInput(side Side, pressedUp, pressedDown bool) {
	p := e.paddle(side)
	if p == nil || p.Computer {
		return
	}
	p.Input = resolveDirection(pressedUp, pressedDown)
}

func (e *Engine) paddle(side Side) *Paddle {
	switch side {
	case SideLeft:
		return e.left
	case SideRight:
		return e.right
	default:
		return nil
	}
}

// Step 推進一個tick，不在Running狀態時不做任何事
func (e *Engine) Step() Event {
	if e.state != Running {
		return 0
	}

	var ev Event

	//兩個球拍
	e.movePaddles()

	//球
	prevX := e.ball.X
	e.ball.move()

	//檢查有沒有撞到上下牆壁
	if e.reflectWalls() {
		ev |= EventWall
	}

	//檢查是否有碰到球拍，跟牆壁各自判斷，同一個tick可能兩個都成立
	if e.collide(e.left, SideLeft, prevX) {
		ev |= EventLeftHit
	}
	if e.collide(e.right, SideRight, prevX) {
		ev |= EventRightHit
	}

	return ev | e.checkScore()
}

func (e *Engine) movePaddles() {
	for _, p := range []*Paddle{e.left, e.right} {
		var dy float64
		switch {
		case p.Computer:
			dy = e.trackBall(p)
		case p.Input == DirUp:
			dy = -p.Speed
		case p.Input == DirDown:
			dy = p.Speed
		}
		p.moveBy(dy, e.arena.Height)
	}
}

// reflectWalls 球往外跑時才反轉垂直速度，避免卡在牆裡來回翻轉
func (e *Engine) reflectWalls() bool {
	b := e.ball
	if b.Y-b.Radius < 0 && b.DY < 0 {
		b.DY = -b.DY
		return true
	}
	if b.Y+b.Radius > e.arena.Height && b.DY > 0 {
		b.DY = -b.DY
		return true
	}
	return false
}

func (e *Engine) collide(p *Paddle, side Side, prevX float64) bool {
	b := e.ball
	if !p.overlaps(b) && !p.crossedBy(b, prevX, side) {
		return false
	}

	//擊中點相對球拍中心，-1是上緣，1是下緣
	norm := (b.Y - p.center()) / (p.Height / 2)
	norm = math.Max(-1, math.Min(1, norm))
	angle := norm * e.tuning.MaxBounceAngle * math.Pi / 180

	dir := 1.0
	if side == SideRight {
		dir = -1
	}
	b.DX = dir * math.Abs(b.DX) * e.tuning.HitMultiplier
	b.DY = e.baseDY() * math.Sin(angle)

	//貼齊球拍表面，同一個tick不會重複判定
	if side == SideLeft {
		b.X = p.X + p.Width + b.Radius
	} else {
		b.X = p.X - b.Radius
	}

	logger.Log.Debug(fmt.Sprintf(logger.PaddleHitMsg, PlayerName(side, e.vsComputer), e.matchId, b.DX, b.DY))
	logger.Log.Debug(fmt.Sprintf(logger.BattleStateMsg, e.matchId, BattlePayload(e.State())))
	return true
}

func (e *Engine) checkScore() Event {
	if e.ball.X < 0 {
		return e.award(e.right, SideRight)
	}
	if e.ball.X > e.arena.Width {
		return e.award(e.left, SideLeft)
	}
	return 0
}

func (e *Engine) award(p *Paddle, side Side) Event {
	p.Score++

	ev := EventLeftPoint
	if side == SideRight {
		ev = EventRightPoint
	}
	name := PlayerName(side, e.vsComputer)

	if p.Score >= e.tuning.WinningScore {
		e.state = GameOver
		e.winner = side
		logger.Log.Info(fmt.Sprintf(logger.GameOverMsg, e.matchId, name, GameOverPayload(e.State())))
		return ev | EventGameOver
	}

	e.resetBall()
	logger.Log.Info(fmt.Sprintf(logger.PointScoredMsg, name, e.matchId, ScorePayload(e.State())))
	return ev
}

// resetBall 球回到中心，兩個軸各自隨機決定方向
func (e *Engine) resetBall() {
	b := e.ball
	b.X = e.arena.Width / 2
	b.Y = e.arena.Height / 2
	b.DX = randomSign(e.random) * e.baseDX()
	b.DY = randomSign(e.random) * e.baseDY()
}

func (e *Engine) baseDX() float64 {
	return e.arena.Width * e.tuning.BallSpeed
}

func (e *Engine) baseDY() float64 {
	return e.arena.Height * e.tuning.BallSpeed
}

func (e *Engine) MatchState() MatchState {
	return e.state
}

func (e *Engine) State() Snapshot {
	winnerName := ""
	if e.state == GameOver {
		winnerName = PlayerName(e.winner, e.vsComputer)
	}

	return Snapshot{
		MatchId: e.matchId,
		Arena:   e.arena,
		Left:    paddleState(e.left),
		Right:   paddleState(e.right),
		Ball: BallState{
			X: e.ball.X, Y: e.ball.Y,
			DX: e.ball.DX, DY: e.ball.DY,
			Radius: e.ball.Radius,
		},
		Match:      e.state,
		Winner:     e.winner,
		WinnerName: winnerName,
		VsComputer: e.vsComputer,
	}
}
