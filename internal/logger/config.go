package logger

import (
	"errors"
	"fmt"
	"github.com/hawell/seedfinder/configs"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level       string `json:"level"`
	Destination string `json:"destination"`
	Encoding    string `json:"encoding"`
}

func DefaultConfig() Config {
	return Config{
		Level:       "warn",
		Destination: "stderr",
		Encoding:    "console",
	}
}

func (c Config) Verify() {
	fmt.Println("checking log...")
	msg := fmt.Sprintf("checking log level : %s", c.Level)
	level := zapcore.InfoLevel
	err := level.UnmarshalText([]byte(c.Level))
	configs.PrintResult(msg, err)
	msg = fmt.Sprintf("checking log encoding : %s", c.Encoding)
	err = nil
	if c.Encoding != "json" && c.Encoding != "console" {
		err = errors.New("invalid encoding")
	}
	configs.PrintResult(msg, err)
	msg = fmt.Sprintf("checking whether %s is available", c.Destination)
	_, err = NewLogger(&c)
	configs.PrintResult(msg, err)
}
