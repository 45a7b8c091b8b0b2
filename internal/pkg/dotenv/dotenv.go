package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подгружает path, если файл существует, затем применяет флаг -port
// к переменной portEnv. Уже выставленные переменные окружения не перезаписываются.
// Возвращает true, если файл был прочитан.
func Load(path, portEnv string) (bool, error) {
	loaded, err := loadFile(path)
	if err != nil {
		return false, err
	}

	err = overridePort(os.Args[1:], portEnv)
	if err != nil {
		return loaded, err
	}
	return loaded, nil
}

func loadFile(path string) (bool, error) {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	err = godotenv.Load(path)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", path, err)
	}
	return true, nil
}

func overridePort(args []string, portEnv string) error {
	flags := flag.NewFlagSet("restaurant-admin", flag.ContinueOnError)

	var portFlag string
	flags.StringVar(&portFlag, "port", "", fmt.Sprintf("Server port (overrides %s environment variable)", portEnv))

	err := flags.Parse(args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if portFlag != "" {
		err := os.Setenv(portEnv, portFlag)
		if err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", portEnv, err)
		}
	}
	return nil
}
