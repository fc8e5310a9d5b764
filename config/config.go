package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port           int
	LogDevelopment bool
	MaxProcesses   int
	MaxTime        int
	UnitIdleSteps  bool
	CacheEnabled   bool
	CacheMaxCost   int64
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once.
// SJF_* environment variables, optionally from a .env file, override it.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("./")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads the configuration found in path, falling back to defaults when
// no config file exists there.
func Load(path string) (*SchedulerConfig, error) {
	// a missing .env is fine, the variables may come from the environment
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.SetEnvPrefix("sjf")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 9095)
	v.SetDefault("log.development", false)
	v.SetDefault("scheduler.max_processes", 1000)
	v.SetDefault("scheduler.max_time", 1000000)
	v.SetDefault("scheduler.unit_idle_steps", false)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.max_cost", 1<<20)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &SchedulerConfig{
		Port:           v.GetInt("port"),
		LogDevelopment: v.GetBool("log.development"),
		MaxProcesses:   v.GetInt("scheduler.max_processes"),
		MaxTime:        v.GetInt("scheduler.max_time"),
		UnitIdleSteps:  v.GetBool("scheduler.unit_idle_steps"),
		CacheEnabled:   v.GetBool("cache.enabled"),
		CacheMaxCost:   v.GetInt64("cache.max_cost"),
	}, nil
}
