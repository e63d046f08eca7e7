// Package config предоставляет структуры и функции для загрузки конфига.
//
// Базовые настройки сервера читаются один раз при старте: из YAML-файла,
// если задан CONFIG_PATH, иначе из переменных окружения. Две настройки
// симуляции (искусственная задержка и вероятность отказа оформления)
// перечитываются из окружения на каждый запрос, без кэширования на
// процесс, чтобы их можно было менять на живом сервере во время тестов.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env        string `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	// RateLimitRPS включает лимитер запросов, 0 — выключен.
	RateLimitRPS   float64 `yaml:"rate_limit_rps" env:"RATE_LIMIT_RPS" env-default:"0"`
	RateLimitBurst int     `yaml:"rate_limit_burst" env:"RATE_LIMIT_BURST" env-default:"3"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":3456"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// MustLoad загружает конфиг и завершает процесс при ошибке.
func MustLoad() *Config {
	var cfg Config
	configPath := os.Getenv("CONFIG_PATH")
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("file: %s - does not exist", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("cannot read config: %s", err)
		}
		return &cfg
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"RateLimitRPS: %g\n"+
			"RateLimitBurst: %d\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.RateLimitRPS,
		c.RateLimitBurst,
	)
}

// Имена переменных окружения, перечитываемых на каждый запрос.
const (
	delayEnv    = "APP_DELAY_MS"
	failRateEnv = "APP_CHECKOUT_FAIL_RATE"
)

// RequestDelay возвращает искусственную задержку обработки запроса.
// Значение читается из окружения при каждом вызове; пустое или
// некорректное значение означает отсутствие задержки.
func RequestDelay() time.Duration {
	raw := os.Getenv(delayEnv)
	if raw == "" {
		return 0
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// CheckoutFailRate возвращает вероятность отказа оформления заказа.
// Значение читается из окружения при каждом вызове; границы [0, 1]
// не применяются здесь, их обрезает инжектор отказов.
func CheckoutFailRate() float64 {
	raw := os.Getenv(failRateEnv)
	if raw == "" {
		return 0
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return rate
}
