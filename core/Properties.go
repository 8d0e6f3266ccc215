package core

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const DefaultEnv = "dev"

// OpenProperties 讀取 dir/<env>.properties，缺少的key用DefaultTuning補上
func OpenProperties(fs afero.Fs, dir, env string) (*viper.Viper, error) {
	if env == "" {
		env = DefaultEnv
	}

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName(env)
	v.SetConfigType("properties")
	v.AddConfigPath(dir)
	setTuningDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read properties %s: %w", env, err)
	}
	return v, nil
}

func setTuningDefaults(v *viper.Viper) {
	d := DefaultTuning()
	v.SetDefault("winningScore", d.WinningScore)
	v.SetDefault("ballSpeed", d.BallSpeed)
	v.SetDefault("ballRadius", d.BallRadius)
	v.SetDefault("hitMultiplier", d.HitMultiplier)
	v.SetDefault("maxBounceAngle", d.MaxBounceAngle)
	v.SetDefault("paddleWidth", d.PaddleWidth)
	v.SetDefault("paddleHeight", d.PaddleHeight)
	v.SetDefault("paddleSpeed", d.PaddleSpeed)
	v.SetDefault("paddleOffset", d.PaddleOffset)
	v.SetDefault("computerGain", d.ComputerGain)
	v.SetDefault("computerDeadband", d.ComputerDeadband)
}

// LoadTuning 把properties轉成Tuning並檢查數值
func LoadTuning(v *viper.Viper) (Tuning, error) {
	var t Tuning
	var err error

	if t.WinningScore, err = cast.ToIntE(v.Get("winningScore")); err != nil {
		return Tuning{}, fmt.Errorf("%w: winningScore: %v", ErrInvalidTuning, err)
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"ballSpeed", &t.BallSpeed},
		{"ballRadius", &t.BallRadius},
		{"hitMultiplier", &t.HitMultiplier},
		{"maxBounceAngle", &t.MaxBounceAngle},
		{"paddleWidth", &t.PaddleWidth},
		{"paddleHeight", &t.PaddleHeight},
		{"paddleSpeed", &t.PaddleSpeed},
		{"paddleOffset", &t.PaddleOffset},
		{"computerGain", &t.ComputerGain},
		{"computerDeadband", &t.ComputerDeadband},
	}
	for _, f := range floats {
		if *f.dst, err = cast.ToFloat64E(v.Get(f.key)); err != nil {
			return Tuning{}, fmt.Errorf("%w: %s: %v", ErrInvalidTuning, f.key, err)
		}
	}

	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}
