package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "BOOKINDEX"

	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"

	DefaultEnv = EnvDev
)

type Environment string

func (e Environment) Validate() error {
	if e != EnvDev && e != EnvProd {
		return errors.New("environment must be either dev or prod")
	}

	return nil
}

type Config struct {
	Environment Environment `split_words:"true" default:"dev"`

	DatasetPath string `split_words:"true" default:"books.csv"`
	SelfCheck   bool   `split_words:"true" default:"true"`
}

// Load reads the optional .env file at path into the process environment
// and fills a Config from BOOKINDEX_* variables. An empty path tries ".env"
// in the working directory and ignores it if missing.
func Load(path string) (Config, error) {
	if err := loadDotEnv(path); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	if err := cfg.Environment.Validate(); err != nil {
		return Config{}, fmt.Errorf("environment validation: %w", err)
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load config file %s: %w", path, err)
		}

		return nil
	}

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}
