package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `yaml:"env" env:"DEARLY_ENV" env-default:"local"`
	DSN      string         `yaml:"dsn" env:"DEARLY_DSN" env-required:"true"`
	HTTP     HTTPConfig     `yaml:"http"`
	Auth     AuthConfig     `yaml:"auth"`
	Redis    RedisConf      `yaml:"redis"`
	Throttle ThrottleConfig `yaml:"throttle"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"DEARLY_HTTP_HOST"`
	Port            string        `yaml:"port" env:"DEARLY_HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	AllowOrigins    []string      `yaml:"allow_origins" env:"DEARLY_ALLOW_ORIGINS" env-default:"*"`
}

type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret" env:"DEARLY_JWT_SECRET" env-required:"true"`
	CookieSecret  string        `yaml:"cookie_secret" env:"DEARLY_COOKIE_SECRET" env-required:"true"`
	AccessTTL     time.Duration `yaml:"access_ttl" env-default:"15m"`
	RefreshTTL    time.Duration `yaml:"refresh_ttl" env-default:"168h"`
	SecureCookies bool          `yaml:"secure_cookies" env-default:"false"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"DEARLY_REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password" env:"DEARLY_REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env-default:"0"`
}

type ThrottleConfig struct {
	SignInAttempts int           `yaml:"signin_attempts" env-default:"5"`
	SignInWindow   time.Duration `yaml:"signin_window" env-default:"15m"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	cfg, err := LoadPath(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

// LoadPath reads the YAML file at configPath and applies environment overrides.
func LoadPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, &os.PathError{Op: "config", Path: configPath, Err: os.ErrNotExist}
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
