package main

import (
	"fmt"
	"github.com/hawell/seedfinder/configs"
	"github.com/hawell/seedfinder/internal/logger"
	"github.com/hawell/seedfinder/internal/search"
	"github.com/hawell/seedfinder/internal/targets"
	jsoniter "github.com/json-iterator/go"
	"log"
	"os"
)

type Config struct {
	Targets targets.Config `json:"targets"`
	Search  search.Config  `json:"search"`
	Log     logger.Config  `json:"log"`
	Color   bool           `json:"color"`
}

func DefaultConfig() Config {
	return Config{
		Targets: targets.DefaultConfig(),
		Search:  search.DefaultConfig(),
		Log:     logger.DefaultConfig(),
		Color:   true,
	}
}

func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	configFile, err := os.Open(path)
	if err != nil {
		log.Printf("[ERROR] cannot load file %s : %s", path, err)
		log.Printf("[INFO] loading default config")
		return &config, err
	}
	defer configFile.Close()
	decoder := jsoniter.NewDecoder(configFile)
	decoder.DisallowUnknownFields()
	err = decoder.Decode(&config)
	if err != nil {
		log.Printf("[ERROR] cannot load json file")
		log.Printf("[INFO] loading default config")
		config = DefaultConfig()
		return &config, err
	}
	if err = config.Search.Validate(); err != nil {
		log.Printf("[ERROR] invalid search config : %s", err)
		log.Printf("[INFO] loading default config")
		config = DefaultConfig()
		return &config, err
	}
	return &config, nil
}

func GenerateConfig(path string) error {
	data, err := jsoniter.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func Verify(configFile string) {
	fmt.Println("Starting Config Verification")

	msg := fmt.Sprintf("loading config file : %s", configFile)
	config, err := LoadConfig(configFile)
	configs.PrintResult(msg, err)

	config.Log.Verify()
	config.Targets.Verify()
	config.Search.Verify()
}
