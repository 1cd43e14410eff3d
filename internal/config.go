package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host             string        `env:"HOST,default=0.0.0.0"`
	Port             int           `env:"PORT,default=8080"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO"`
	CharReplacement  string        `env:"CHARACTER_REPLACEMENT,default=*"`
	MaxContentLength int           `env:"MAX_CONTENT_LENGTH,default=4000"`
	LimitEntries     *int          `env:"LIMIT_ENTRIES"`
	SearchLimit      int           `env:"SEARCH_LIMIT,default=10"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
