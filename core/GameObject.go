package core

// Side 球拍所在的一側
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Direction 球拍這一個tick想移動的方向
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

// resolveDirection 上下同時按住時以上為準
func resolveDirection(pressedUp, pressedDown bool) Direction {
	if pressedUp {
		return DirUp
	}
	if pressedDown {
		return DirDown
	}
	return DirNone
}

type Arena struct {
	Width, Height float64
}

type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	VelY          float64 // 上一個tick實際移動的量
	Input         Direction
	Score         int
	Computer      bool
}

func (p *Paddle) center() float64 {
	return p.Y + p.Height/2
}

func (p *Paddle) moveBy(dy float64, arenaHeight float64) {
	before := p.Y
	p.Y += dy
	p.clamp(arenaHeight)
	p.VelY = p.Y - before
}

func (p *Paddle) clamp(arenaHeight float64) {
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y+p.Height > arenaHeight {
		p.Y = arenaHeight - p.Height
	}
}

// overlaps 用球的外接正方形跟球拍做AABB判斷
func (p *Paddle) overlaps(b *Ball) bool {
	return b.X+b.Radius > p.X &&
		b.X-b.Radius < p.X+p.Width &&
		b.Y+b.Radius > p.Y &&
		b.Y-b.Radius < p.Y+p.Height
}

// crossedBy 這一個tick球的前緣越過球拍表面，速度快到整顆穿過去也算
func (p *Paddle) crossedBy(b *Ball, prevX float64, side Side) bool {
	if b.Y+b.Radius <= p.Y || b.Y-b.Radius >= p.Y+p.Height {
		return false
	}
	if side == SideLeft {
		face := p.X + p.Width
		return b.DX < 0 && prevX-b.Radius >= face && b.X-b.Radius < face
	}
	face := p.X
	return b.DX > 0 && prevX+b.Radius <= face && b.X+b.Radius > face
}

type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

func (b *Ball) move() {
	b.X += b.DX
	b.Y += b.DY
}
