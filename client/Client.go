package client

import (
	"PingPong/core"
	"PingPong/logger"
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell"
)

type Scene int

const (
	SceneMenu Scene = iota
	SceneBattle
	SceneGameOver
)

// Client 終端機畫面，負責把按鍵轉成球拍輸入、每個tick呼叫Step並畫出狀態
type Client struct {
	screen  tcell.Screen
	engine  *core.Engine
	options Options
	keys    *KeyState
	now     func() time.Time

	scene      Scene
	vsComputer bool
	quit       bool

	events  chan tcell.Event
	tunings chan core.Tuning
	done    chan struct{}
}

// New screen必須已經Init
func New(screen tcell.Screen, engine *core.Engine, options Options) *Client {
	return &Client{
		screen:  screen,
		engine:  engine,
		options: options,
		keys:    NewKeyState(options.HoldInterval),
		now:     time.Now,
		scene:   SceneMenu,
		events:  make(chan tcell.Event),
		tunings: make(chan core.Tuning, 1),
		done:    make(chan struct{}),
	}
}

func (c *Client) Scene() Scene {
	return c.scene
}

// StartMatch 跳過選單直接開始
func (c *Client) StartMatch(vsComputer bool) error {
	if err := c.engine.StartMatch(vsComputer); err != nil {
		return err
	}
	c.vsComputer = vsComputer
	c.keys.Reset()
	c.scene = SceneBattle
	return nil
}

// Reload 可以從其他goroutine呼叫，新參數在下一個tick之前套用
func (c *Client) Reload(t core.Tuning) {
	select {
	case <-c.tunings:
	default:
	}
	c.tunings <- t
}

func (c *Client) Run(ctx context.Context) error {
	defer close(c.done)

	w, h := c.screen.Size()
	if err := c.resize(w, h); err != nil {
		return err
	}

	//建立一個goroutine去監聽鍵盤的事件
	go c.pollEvents()

	ticker := time.NewTicker(c.options.FrameInterval)
	defer ticker.Stop()

	c.draw()
	for !c.quit {
		//新的參數比按鍵跟tick先處理
		select {
		case t := <-c.tunings:
			c.applyTuning(t)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			return nil

		case ev := <-c.events:
			c.handleEvent(ev)

		case t := <-c.tunings:
			c.applyTuning(t)

		case <-ticker.C:
			c.frame()
		}
	}

	logger.Log.Info(logger.ClientQuitMsg)
	return nil
}

func (c *Client) applyTuning(t core.Tuning) {
	if err := c.engine.SetTuning(t); err != nil {
		logger.Log.Warn(err.Error())
	}
}

func (c *Client) pollEvents() {
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case c.events <- ev:
		case <-c.done:
			return
		}
	}
}

// frame 一個tick：套用按鍵、推進模擬、重畫
func (c *Client) frame() {
	if c.scene == SceneBattle {
		now := c.now()
		c.engine.SetPaddleInput(core.SideLeft, c.keys.Pressed(KeyLeftUp, now), c.keys.Pressed(KeyLeftDown, now))
		c.engine.SetPaddleInput(core.SideRight, c.keys.Pressed(KeyRightUp, now), c.keys.Pressed(KeyRightDown, now))

		if ev := c.engine.Step(); ev.Has(core.EventGameOver) {
			c.scene = SceneGameOver
		}
	}
	c.draw()
}

func (c *Client) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		c.screen.Sync()
		if err := c.resize(w, h); err != nil {
			logger.Log.Warn(err.Error())
		}
		c.draw()

	case *tcell.EventKey:
		c.handleKey(ev)
	}
}

func (c *Client) resize(w, h int) error {
	logger.Log.Debug(fmt.Sprintf(logger.ScreenResizeMsg, w, h))
	return c.engine.Configure(float64(w), float64(h))
}

func (c *Client) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		c.quit = true
		return
	}

	switch c.scene {
	case SceneMenu:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
			c.quit = true
		case ev.Rune() == '1':
			c.startFromKey(false)
		case ev.Rune() == '2':
			c.startFromKey(true)
		}

	case SceneBattle:
		now := c.now()
		switch {
		case ev.Key() == tcell.KeyUp:
			c.keys.Press(KeyRightUp, now)
		case ev.Key() == tcell.KeyDown:
			c.keys.Press(KeyRightDown, now)
		case ev.Key() == tcell.KeyEscape:
			c.toMenu()
		case ev.Rune() == 'w':
			c.keys.Press(KeyLeftUp, now)
		case ev.Rune() == 's':
			c.keys.Press(KeyLeftDown, now)
		case ev.Rune() == 'q':
			c.quit = true
		}

	case SceneGameOver:
		switch {
		case ev.Rune() == 'r':
			c.startFromKey(c.vsComputer)
		case ev.Rune() == 'm' || ev.Key() == tcell.KeyEscape:
			c.toMenu()
		case ev.Rune() == 'q':
			c.quit = true
		}
	}
}

func (c *Client) startFromKey(vsComputer bool) {
	if err := c.StartMatch(vsComputer); err != nil {
		logger.Log.Error(err.Error())
	}
}

func (c *Client) toMenu() {
	c.engine.Stop()
	c.keys.Reset()
	c.scene = SceneMenu
}
