package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvTuning  = "DRAGON_TUNING"
	EnvEnemies = "DRAGON_ENEMIES"
	EnvAssets  = "DRAGON_ASSETS"
	EnvSeed    = "DRAGON_SEED"
	EnvMute    = "DRAGON_MUTE"
	EnvPprof   = "DRAGON_PPROF"
)

// Env — настройки запуска, прочитанные из окружения.
type Env struct {
	TuningPath  string
	EnemiesPath string
	AssetsDir   string
	Seed        int64
	Mute        bool
	PprofAddr   string
}

// LoadEnv подгружает переменные из .env, если файл есть.
func LoadEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	log.Println("Loaded environment from .env")
	return nil
}

// FromEnv читает настройки запуска. Некорректные числа заменяются значениями по умолчанию.
func FromEnv() Env {
	e := Env{
		TuningPath:  os.Getenv(EnvTuning),
		EnemiesPath: os.Getenv(EnvEnemies),
		AssetsDir:   os.Getenv(EnvAssets),
		PprofAddr:   os.Getenv(EnvPprof),
	}
	if e.AssetsDir == "" {
		e.AssetsDir = "assets"
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("Ignoring %s=%q: %v", EnvSeed, v, err)
		} else {
			e.Seed = seed
		}
	}
	if v := os.Getenv(EnvMute); v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("Ignoring %s=%q: %v", EnvMute, v, err)
		} else {
			e.Mute = mute
		}
	}
	return e
}
