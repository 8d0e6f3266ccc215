package client

import (
	"PingPong/core"
	"math"
	"strconv"

	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"
)

const BallSymbol = 0x25CF       // 球符號
const PaddleSymbol = 0x2588     // 球拍符號
const CenterLineSymbol = 0x2590 // 中線符號

var menuLines = []string{
	"PING PONG",
	"",
	"1  Two players",
	"2  Vs computer",
	"q  Quit",
	"",
	"w/s  left paddle    Up/Down  right paddle",
}

func gameOverLines(winner string) []string {
	return []string{
		winner + " Wins!",
		"",
		"r  Play again",
		"m  Main menu",
		"q  Quit",
	}
}

func (c *Client) draw() {
	c.screen.Clear()

	switch c.scene {
	case SceneMenu:
		c.drawLines(menuLines)

	case SceneBattle:
		c.drawField(c.engine.State())

	case SceneGameOver:
		s := c.engine.State()
		c.drawField(s)
		c.drawLines(gameOverLines(s.WinnerName))
	}

	c.screen.Show()
}

func (c *Client) drawField(s core.Snapshot) {
	width, height := c.screen.Size()
	palette := c.options.Palette

	//中線
	for row := 0; row < height; row += 2 {
		c.screen.SetContent(width/2, row, CenterLineSymbol, nil, palette.Text)
	}

	//分數更新
	c.drawLetters(width/4, 1, strconv.Itoa(s.Left.Score))
	c.drawLetters((width/4)*3, 1, strconv.Itoa(s.Right.Score))

	//兩個球拍
	c.drawPaddle(s.Left)
	c.drawPaddle(s.Right)

	//球
	c.screen.SetContent(int(math.Floor(s.Ball.X)), int(math.Floor(s.Ball.Y)), BallSymbol, nil, palette.Ball)
}

func (c *Client) drawPaddle(p core.PaddleState) {
	colFrom, colTo := cellSpan(p.X, p.Width)
	rowFrom, rowTo := cellSpan(p.Y, p.Height)
	c.fill(rowFrom, colFrom, rowTo-rowFrom, colTo-colFrom, PaddleSymbol, c.options.Palette.Paddle)
}

// cellSpan 把連續座標換成[from, to)的格子範圍，至少一格
func cellSpan(start, size float64) (int, int) {
	from := int(math.Floor(start))
	to := int(math.Ceil(start + size))
	if to <= from {
		to = from + 1
	}
	return from, to
}

func (c *Client) fill(row, col, height, width int, ch rune, style tcell.Style) {
	for r := 0; r < height; r++ {
		for cl := 0; cl < width; cl++ {
			c.screen.SetContent(col+cl, row+r, ch, nil, style)
		}
	}
}

func (c *Client) drawLetters(x int, y int, word string) {
	letterNum := len(word)
	totalLen := letterNum*letterWidth + (letterNum - 1)
	startX := x - totalLen/2

	for i, letter := range word {
		offsetX := startX + i*(letterWidth+1)
		for _, cell := range getCellsFromChar(letter) {
			c.screen.SetContent(offsetX+cell[0], y+cell[1], PaddleSymbol, nil, c.options.Palette.Text)
		}
	}
}

// drawLines 文字置中，寬度用runewidth計算
func (c *Client) drawLines(lines []string) {
	width, height := c.screen.Size()
	row := height/2 - len(lines)/2

	for i, line := range lines {
		x := (width - runewidth.StringWidth(line)) / 2
		for _, r := range line {
			c.screen.SetContent(x, row+i, r, nil, c.options.Palette.Text)
			x += runewidth.RuneWidth(r)
		}
	}
}
