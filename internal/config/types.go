package config

import "path/filepath"

// ConfigLogger настройки логирования
type ConfigLogger struct {
	Level string `mapstructure:"level"`
}

// ConfigStorage настройки файлов книг
type ConfigStorage struct {
	Dir             string `mapstructure:"dir"`
	AddressBookFile string `mapstructure:"address_book_file"`
	NotebookFile    string `mapstructure:"notebook_file"`
}

// AddressBookPath полный путь к файлу адресной книги
func (c *ConfigStorage) AddressBookPath() string {
	return filepath.Join(c.Dir, c.AddressBookFile)
}

// NotebookPath полный путь к файлу книги заметок
func (c *ConfigStorage) NotebookPath() string {
	return filepath.Join(c.Dir, c.NotebookFile)
}

// ConfigAssistant настройки интерактивного режима
type ConfigAssistant struct {
	BirthdayWindowDays int `mapstructure:"birthday_window_days"`
	PageSize           int `mapstructure:"page_size"`
}

// Config основная структура конфигурации
type Config struct {
	Logger    *ConfigLogger    `mapstructure:"logger"`
	Storage   *ConfigStorage   `mapstructure:"storage"`
	Assistant *ConfigAssistant `mapstructure:"assistant"`
}

// Defaults значения по умолчанию, используются когда файла конфигурации нет
var Defaults = map[string]any{
	"logger.level":                   "info",
	"storage.dir":                    ".",
	"storage.address_book_file":      "my_book.json",
	"storage.notebook_file":          "notebook.json",
	"assistant.birthday_window_days": 7,
	"assistant.page_size":            10,
}
