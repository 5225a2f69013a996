package config

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"time"

	"metalfolio/bot"
	m "metalfolio/internal/model"
	"metalfolio/scrape"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var configByte []byte

type SourceEntry struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	URL        string `yaml:"url"`
	Metal      string `yaml:"metal"`
	Product    string `yaml:"product"`
	PriceUnit  string `yaml:"price-unit"`
	Multiplier int64  `yaml:"multiplier"`
}

type Config struct {
	Log string `yaml:"log"`
	App struct {
		Port int `yaml:"port"`
	} `yaml:"app"`
	Storage struct {
		Dir string `yaml:"dir"`
	} `yaml:"storage"`
	Scrape struct {
		Timeout string `yaml:"timeout"`
	} `yaml:"scrape"`
	Telegram struct {
		ChatId string `yaml:"chatId"`
		Token  string `yaml:"token"`
	} `yaml:"telegram"`
	Sources []SourceEntry `yaml:"sources"`
}

func NewConfig() (*Config, error) {

	var ConfigInfo Config = Config{}

	err := yaml.Unmarshal(configByte, &ConfigInfo)
	if err != nil {
		return nil, err
	}

	if len(ConfigInfo.Sources) == 0 {
		return nil, errors.New("no sources configured")
	}

	return &ConfigInfo, nil
}

func (c Config) LogLevel() (zerolog.Level, error) {

	level, err := zerolog.ParseLevel(c.Log)
	if err != nil {
		return zerolog.InfoLevel, err // fall back to Info
	}

	return level, nil
}

// BotConfig returns nil when telegram is not configured; the notifier is
// optional.
func (c Config) BotConfig() (*bot.TeleBotConfig, error) {

	if c.Telegram.Token == "" {
		return nil, nil
	}

	chatId, err := strconv.ParseInt(c.Telegram.ChatId, 10, 64)
	if err != nil {
		return nil, err
	}

	return &bot.TeleBotConfig{
		Token:  c.Telegram.Token,
		ChatId: chatId,
	}, nil
}

// SourceConfigs converts the retailer table into scraper configs,
// rejecting entries with unknown metals or units.
func (c Config) SourceConfigs() ([]scrape.SourceConfig, error) {

	confs := make([]scrape.SourceConfig, 0, len(c.Sources))
	for _, entry := range c.Sources {
		metal, err := m.ToMetal(entry.Metal)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", entry.ID, err)
		}
		unit, err := m.ToUnit(entry.PriceUnit)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", entry.ID, err)
		}
		if entry.Multiplier <= 0 {
			return nil, fmt.Errorf("source %s: non-positive multiplier %d", entry.ID, entry.Multiplier)
		}

		confs = append(confs, scrape.SourceConfig{
			ID:         entry.ID,
			Name:       entry.Name,
			URL:        entry.URL,
			Metal:      metal,
			Product:    entry.Product,
			PriceUnit:  unit,
			Multiplier: entry.Multiplier,
		})
	}
	return confs, nil
}

func (c Config) ScrapeTimeout() (time.Duration, error) {

	if c.Scrape.Timeout == "" {
		return 8 * time.Second, nil
	}
	return time.ParseDuration(c.Scrape.Timeout)
}
