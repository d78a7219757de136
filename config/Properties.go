package config

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const DefaultEnv = "local"

type Properties struct {
	FrameInterval time.Duration
	CellWidth     float64 // 每一欄代表的球場寬度
	MaxArenaWidth float64
	ArenaMargin   float64
	BestScoreFile string
	LoggerPath    string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("FRAME_INTERVAL", "16ms")
	v.SetDefault("CELL_WIDTH", 8)
	v.SetDefault("MAX_ARENA_WIDTH", 600)
	v.SetDefault("ARENA_MARGIN", 40)
	v.SetDefault("BEST_SCORE_FILE", "padel_best.properties")
	v.SetDefault("LOGGER_PATH", "./")
}

// ReadProperties loads properties/<env>.properties under root. An empty env
// means DefaultEnv.
func ReadProperties(root, env string) (Properties, error) {
	if env == "" {
		env = DefaultEnv
	}

	v := viper.New()
	v.SetConfigName(fmt.Sprintf("%s/%s", "properties", env))
	v.SetConfigType("properties")
	v.AddConfigPath(root)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Properties{}, fmt.Errorf("read %s properties: %w", env, err)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Properties, error) {
	frame, err := cast.ToDurationE(v.Get("FRAME_INTERVAL"))
	if err != nil {
		return Properties{}, fmt.Errorf("FRAME_INTERVAL: %w", err)
	}
	if frame <= 0 {
		return Properties{}, fmt.Errorf("FRAME_INTERVAL must be positive, got %s", frame)
	}

	cellWidth := cast.ToFloat64(v.Get("CELL_WIDTH"))
	if cellWidth <= 0 {
		return Properties{}, fmt.Errorf("CELL_WIDTH must be positive, got %v", v.Get("CELL_WIDTH"))
	}

	maxWidth := cast.ToFloat64(v.Get("MAX_ARENA_WIDTH"))
	if maxWidth <= 0 {
		return Properties{}, fmt.Errorf("MAX_ARENA_WIDTH must be positive, got %v", v.Get("MAX_ARENA_WIDTH"))
	}

	return Properties{
		FrameInterval: frame,
		CellWidth:     cellWidth,
		MaxArenaWidth: maxWidth,
		ArenaMargin:   cast.ToFloat64(v.Get("ARENA_MARGIN")),
		BestScoreFile: cast.ToString(v.Get("BEST_SCORE_FILE")),
		LoggerPath:    cast.ToString(v.Get("LOGGER_PATH")),
	}, nil
}
