package config

import (
	"os"
	"strconv"

	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// details of the game and its backends.
var (
	Width        = getEnvInt("SNAKE_WIDTH", 20)
	Height       = getEnvInt("SNAKE_HEIGHT", 20)
	Difficulty   = getEnvString("SNAKE_DIFFICULTY", "medium")
	ScoreBackend = getEnvString("SNAKE_SCORES_BACKEND", "file")
	ScoreArgs    = getEnvString("SNAKE_SCORES_ARGS", "")
	MaxOpenConns = getEnvInt("MAX_OPEN_CONNS", 5)
	MaxIdleConns = getEnvInt("MAX_IDLE_CONNS", 2)
	SocketRate   = rate.Limit(getEnvInt("SNAKE_SOCKET_FPS", 30))
	SocketBurst  = getEnvInt("SNAKE_SOCKET_BURST", 5)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvString(varName string, defaults string) string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	return val
}
