package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"

	EnvDev  = "dev"
	EnvProd = "prod"
)

type Config struct {
	Port          int           `mapstructure:"PORT"`
	Env           string        `mapstructure:"ENV"`
	Store         string        `mapstructure:"STORE"`
	Mongo_uri     string        `mapstructure:"MONGO_URI"`
	Mongo_timeout time.Duration `mapstructure:"MONGO_TIMEOUT"`
	Db_user       string        `mapstructure:"DB_USER"`
	Db_pass       string        `mapstructure:"DB_PASS"`
	Db_host       string        `mapstructure:"DB_HOST"`
	Db_name       string        `mapstructure:"DB_NAME"`
	Cors_origins  string        `mapstructure:"CORS_ORIGINS"`
}

var defaults = map[string]any{
	"PORT":          5000,
	"ENV":           EnvDev,
	"STORE":         StoreMongo,
	"MONGO_URI":     "",
	"MONGO_TIMEOUT": "10s",
	"DB_USER":       "",
	"DB_PASS":       "",
	"DB_HOST":       "cluster0.sjr78.mongodb.net",
	"DB_NAME":       "asSunnahPathagar",
	"CORS_ORIGINS":  "*",
}

// Load reads an optional .env file into the environment and unmarshals the
// environment into a Config. Files that do not exist are ignored.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading in config: %w", err)
	}

	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %v", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}

	if c.Env != EnvDev && c.Env != EnvProd {
		return fmt.Errorf("environment can only be dev or prod")
	}

	if c.Store != StoreMongo && c.Store != StoreMemory {
		return fmt.Errorf("store can only be mongo or memory")
	}

	if c.Store == StoreMongo && c.Db_name == "" {
		return fmt.Errorf("db name is required for the mongo store")
	}

	return nil
}

// MongoURI prefers MONGO_URI and otherwise builds an Atlas SRV uri from the
// DB_USER/DB_PASS credentials.
func (c *Config) MongoURI() string {
	if c.Mongo_uri != "" {
		return c.Mongo_uri
	}

	if c.Db_user == "" {
		return "mongodb://localhost:27017"
	}

	return fmt.Sprintf(
		"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(c.Db_user),
		url.QueryEscape(c.Db_pass),
		c.Db_host,
	)
}

func (c *Config) CorsOrigins() []string {
	var origins []string

	for _, o := range strings.Split(c.Cors_origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	if len(origins) == 0 {
		return []string{"*"}
	}

	return origins
}
