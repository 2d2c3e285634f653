package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	AI      AIConfig      `yaml:"ai"`
	Storage StorageConfig `yaml:"storage"`
	Kafka   KafkaConfig   `yaml:"kafka"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// AIConfig 는 글쓰기 보조 provider 선택과 provider 별 설정을 정의한다.
// API 키는 config.yaml 이 아니라 환경변수에서만 읽는다.
type AIConfig struct {
	// Provider 는 openai / anthropic / gemini / mock 중 하나다. 기본값은 mock.
	Provider string `yaml:"provider"`

	OpenAI    ProviderConfig `yaml:"openai"`
	Anthropic ProviderConfig `yaml:"anthropic"`
	Gemini    ProviderConfig `yaml:"gemini"`

	// MockDelayMs 는 mock provider 가 UI 테스트용으로 흉내내는 응답 지연이다.
	MockDelayMs int `yaml:"mock_delay_ms"`
}

type ProviderConfig struct {
	APIKey string `yaml:"-"`
	Model  string `yaml:"model"`
}

// StorageConfig 는 포스트 저장 백엔드를 명시적으로 선택한다.
// driver 가 "mongo" 이고 URI/database 가 모두 있으면 호스팅 백엔드,
// 그 외에는 로컬 파일 백엔드를 사용한다.
type StorageConfig struct {
	Driver string      `yaml:"driver"`
	Mongo  MongoConfig `yaml:"mongo"`
	Local  LocalConfig `yaml:"local"`
}

type MongoConfig struct {
	URI      string `yaml:"-"`
	Database string `yaml:"database"`
}

type LocalConfig struct {
	Path string `yaml:"path"`
}

type KafkaConfig struct {
	BootstrapServers string `yaml:"-"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyEnv(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// applyEnv 는 비밀값과 배포 환경별 값을 환경변수에서 보강한다.
func applyEnv(c *AppConfig) {
	if v := os.Getenv("AI_PROVIDER"); v != "" {
		c.AI.Provider = v
	}
	c.AI.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		c.AI.OpenAI.Model = v
	}
	c.AI.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	if v := os.Getenv("ANTHROPIC_MODEL"); v != "" {
		c.AI.Anthropic.Model = v
	}
	c.AI.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.AI.Gemini.Model = v
	}

	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = v
	}
	c.Storage.Mongo.URI = os.Getenv("MONGODB_URI")
	if v := os.Getenv("MONGODB_DATABASE"); v != "" {
		c.Storage.Mongo.Database = v
	}
	c.Kafka.BootstrapServers = os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
