package main

import (
	"PingPong/client"
	"PingPong/core"
	"PingPong/logger"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	env := pflag.String("env", os.Getenv("PONG_ENV"), "properties環境名稱，預設dev")
	dir := pflag.String("properties", "./properties", "properties檔案所在的資料夾")
	seed := pflag.Int64("seed", 0, "發球方向的亂數seed，0代表用目前時間")
	vsComputer := pflag.Bool("vs-computer", false, "跳過選單直接對戰電腦")
	pflag.Parse()

	if err := start(*dir, *env, *seed, *vsComputer); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func start(dir, env string, seed int64, vsComputer bool) error {
	fs := afero.NewOsFs()
	if err := logger.Log.Init(fs, dir); err != nil {
		return err
	}
	defer logger.Log.Close()

	v, err := core.OpenProperties(fs, dir, env)
	if err != nil {
		return err
	}
	tuning, err := core.LoadTuning(v)
	if err != nil {
		return err
	}
	options, err := client.LoadOptions(v)
	if err != nil {
		return err
	}
	engine, err := core.NewEngine(tuning, core.NewRandom(seed))
	if err != nil {
		return err
	}

	screen, err := initScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	c := client.New(screen, engine, options)
	watchTuning(v, env, c)

	if vsComputer {
		w, h := screen.Size()
		if err := engine.Configure(float64(w), float64(h)); err != nil {
			return err
		}
		if err := c.StartMatch(true); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.Run(ctx)
}

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()
	return screen, nil
}

// watchTuning properties檔案變更時重新載入參數，交給畫面迴圈在tick之間套用
func watchTuning(v *viper.Viper, env string, c *client.Client) {
	v.OnConfigChange(func(e fsnotify.Event) {
		tuning, err := core.LoadTuning(v)
		if err != nil {
			logger.Log.Warn(fmt.Sprintf(logger.TuningReloadFailedMsg, env, err))
			return
		}
		c.Reload(tuning)
		logger.Log.Info(fmt.Sprintf(logger.TuningReloadMsg, env))
	})
	v.WatchConfig()
}
