package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const DefaultAppID = 730
const DefaultContextID = "2"

type Config struct {
	ServiceName string `yaml:"serviceName"`
	AppVersion  string `yaml:"appVersion"`

	Server struct {
		Mode   string `yaml:"mode"`
		Scheme string `yaml:"scheme"`
		Domain string `yaml:"domain"`
		Port   int    `yaml:"port"`
	} `yaml:"server"`

	Steam struct {
		APIKey string `yaml:"apiKey"`
	} `yaml:"steam"`

	CORS struct {
		Origins []string `yaml:"origins"`
	} `yaml:"cors"`

	Jaeger Jaeger `yaml:"jaeger"`
}

type Jaeger struct {
	Sampler struct {
		Type  string  `yaml:"type"`
		Param float64 `yaml:"param"`
	} `yaml:"sampler"`
	Reporter struct {
		LogSpans           bool   `yaml:"log_spans"`
		LocalAgentHostPort string `yaml:"local_agent_host_port"`
	} `yaml:"reporter"`
}

// MustLoad reads the yaml config at path and applies environment
// overrides. Environment wins over file values so deployments can keep
// the API key out of the repository.
func MustLoad(path string) *Config {
	_ = godotenv.Load()

	conf := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		panic("failed to read config: " + err.Error())
	}

	if err = yaml.Unmarshal(data, conf); err != nil {
		panic("failed to parse config: " + err.Error())
	}

	if v := os.Getenv("STEAM_API_KEY"); v != "" {
		conf.Steam.APIKey = v
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		conf.CORS.Origins = strings.Split(v, ",")
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			conf.Server.Port = port
		}
	}

	if conf.Server.Port == 0 {
		conf.Server.Port = 8080
	}
	if conf.Server.Mode == "" {
		conf.Server.Mode = "dev"
	}
	if conf.ServiceName == "" {
		conf.ServiceName = "steam-market-rest-api"
	}

	return conf
}
