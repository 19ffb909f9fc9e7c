package config

import (
	"flag"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env           string     `yaml:"env" env-default:"local"`
	DSN           string     `yaml:"dsn" env-required:"true"`
	TemplatesDir  string     `yaml:"templates_dir" env-default:"web/templates"`
	SessionSecret string     `yaml:"session_secret" env:"SESSION_SECRET" env-default:"change-me"`
	HTTP          HTTPConfig `yaml:"http"`
}

type HTTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port" env-default:"8080"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
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
