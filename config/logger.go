package config

import (
	"github.com/spf13/viper"
)

// Logger logger config struct
type Logger struct {
	Level      int    `json:"level" yaml:"level"`
	Format     string `json:"format" yaml:"format"`
	Output     string `json:"output" yaml:"output"`
	OutputFile string `json:"output_file" yaml:"output_file"`
	MaxSize    int    `json:"max_size" yaml:"max_size"`       // megabytes
	MaxAge     int    `json:"max_age" yaml:"max_age"`         // days
	MaxBackups int    `json:"max_backups" yaml:"max_backups"` // files
}

func getLoggerConfig(v *viper.Viper) *Logger {
	return &Logger{
		Level:      v.GetInt("logger.level"),
		Format:     v.GetString("logger.format"),
		Output:     v.GetString("logger.output"),
		OutputFile: v.GetString("logger.output_file"),
		MaxSize:    getIntOrDefault(v, "logger.max_size", 100),
		MaxAge:     getIntOrDefault(v, "logger.max_age", 7),
		MaxBackups: getIntOrDefault(v, "logger.max_backups", 3),
	}
}
