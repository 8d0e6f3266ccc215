package core

type MatchState int

const (
	Idle MatchState = iota
	Running
	GameOver
)

func (m MatchState) String() string {
	switch m {
	case Running:
		return "Running"
	case GameOver:
		return "GameOver"
	default:
		return "Idle"
	}
}

type PaddleState struct {
	X, Y          float64
	Width, Height float64
	VelY          float64
	Score         int
	Computer      bool
}

type BallState struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// Snapshot 給畫面用的唯讀狀態
type Snapshot struct {
	MatchId    string
	Arena      Arena
	Left       PaddleState
	Right      PaddleState
	Ball       BallState
	Match      MatchState
	Winner     Side
	WinnerName string
	VsComputer bool
}

func paddleState(p *Paddle) PaddleState {
	return PaddleState{
		X: p.X, Y: p.Y,
		Width: p.Width, Height: p.Height,
		VelY:     p.VelY,
		Score:    p.Score,
		Computer: p.Computer,
	}
}

// PlayerName 顯示用的玩家名稱
func PlayerName(side Side, vsComputer bool) string {
	switch side {
	case SideLeft:
		return "Player 1"
	case SideRight:
		if vsComputer {
			return "Computer"
		}
		return "Player 2"
	default:
		return ""
	}
}
