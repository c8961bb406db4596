package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var envWithDefaultRe = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandEnvWithDefaults расширяет переменные окружения с поддержкой дефолтных значений
// Формат: ${VAR:-default}
func expandEnvWithDefaults(s string) string {
	return envWithDefaultRe.ReplaceAllStringFunc(s, func(match string) string {
		// Извлекаем имя переменной и значение по умолчанию
		matches := envWithDefaultRe.FindStringSubmatch(match)
		if len(matches) < 2 {
			return match
		}

		varName := matches[1]
		defaultValue := ""
		if len(matches) > 2 {
			defaultValue = matches[2]
		}

		// Если переменная не установлена, используем значение по умолчанию
		value := os.Getenv(varName)
		if value == "" {
			return defaultValue
		}
		return value
	})
}

// InitConfig читает конфигурационный файл и возвращает экземпляр конфигурации.
// Значения из defaults используются для отсутствующих ключей и когда файла нет совсем.
func InitConfig[C any](configFile string, defaults map[string]any) (*C, error) {
	v := viper.New()
	for k, value := range defaults {
		v.SetDefault(k, value)
	}

	if configFile != "" {
		_, err := os.Stat(configFile)
		switch {
		case err == nil:
			ext := strings.TrimLeft(filepath.Ext(configFile), ".")
			v.SetConfigFile(configFile)
			v.SetConfigType(ext)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("v.ReadInConfig: %w", err)
			}
		case errors.Is(err, fs.ErrNotExist):
			// Файла нет - работаем на значениях по умолчанию
		default:
			return nil, fmt.Errorf("os.Stat: %w", err)
		}
	}

	// Заменяем переменные окружения формата ${VAR:-default} на их значения
	for _, k := range v.AllKeys() {
		value := v.GetString(k)
		if value == "" {
			continue
		}
		expanded := expandEnvWithDefaults(value)

		// Если значение выглядит как число или boolean, устанавливаем его с правильным типом
		if expanded == "true" || expanded == "false" {
			boolValue, _ := strconv.ParseBool(expanded)
			v.Set(k, boolValue)
		} else if intValue, err := strconv.Atoi(expanded); err == nil {
			v.Set(k, intValue)
		} else {
			v.Set(k, expanded)
		}
	}

	cfg := new(C)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}

	return cfg, nil
}

// Load читает конфигурацию приложения
func Load(configFile string) (*Config, error) {
	return InitConfig[Config](configFile, Defaults)
}
