package store

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const bestScoreKey = "bestScore"

// PropertiesStore keeps the best score in a one-key .properties file.
type PropertiesStore struct {
	path string
	v    *viper.Viper
}

func NewPropertiesStore(path string) *PropertiesStore {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("properties")
	return &PropertiesStore{path: path, v: v}
}

// Load returns 0 when the file does not exist yet.
func (s *PropertiesStore) Load() (int, error) {
	if err := s.v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read best score %s: %w", s.path, err)
	}

	best, err := cast.ToIntE(s.v.Get(bestScoreKey))
	if err != nil {
		return 0, fmt.Errorf("parse best score %s: %w", s.path, err)
	}
	if best < 0 {
		return 0, nil
	}
	return best, nil
}

func (s *PropertiesStore) Save(score int) error {
	s.v.Set(bestScoreKey, score)
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write best score %s: %w", s.path, err)
	}
	return nil
}

// Memory keeps the best score for the lifetime of the process.
type Memory struct {
	Best  int
	Saves int
}

func (m *Memory) Load() (int, error) {
	return m.Best, nil
}

func (m *Memory) Save(score int) error {
	m.Best = score
	m.Saves++
	return nil
}
