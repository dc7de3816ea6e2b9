package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load читает .env (если он есть) и применяет флаги командной строки
// поверх переменных окружения.
func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	var port string
	flag.StringVar(&port, "port", "", "HTTP port, overrides PORT from the environment")
	flag.Parse()

	if port != "" {
		if err := os.Setenv("PORT", port); err != nil {
			return fmt.Errorf("override PORT: %w", err)
		}
	}
	return nil
}
