package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"spellcheck/hashtable"
)

// Config is read from an optional yaml file and then from the environment
type Config struct {
	Dictionary string `yaml:"dictionary" env:"SPELL_DICTIONARY" env-default:"dictionary.txt"`
	Capacity   int    `yaml:"capacity" env:"SPELL_CAPACITY" env-default:"1000"`
	HashFunc   string `yaml:"hash_func" env:"SPELL_HASH_FUNC" env-default:"weighted"`
	Address    string `yaml:"address" env:"SPELL_ADDRESS" env-default:":8080"`
	LogLevel   string `yaml:"log_level" env:"SPELL_LOG_LEVEL" env-default:"info"`
	Watch      bool   `yaml:"watch" env:"SPELL_WATCH" env-default:"false"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "read env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.Dictionary == "" {
		result = multierror.Append(result, errors.New("dictionary path is empty"))
	}
	if c.Capacity <= 0 {
		result = multierror.Append(result, fmt.Errorf("capacity must be positive, got %d", c.Capacity))
	}
	if _, ok := hashtable.HashFuncByName(c.HashFunc); !ok {
		result = multierror.Append(result, fmt.Errorf("unknown hash function %q", c.HashFunc))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// NewTable creates an empty table as configured. The config must be valid.
func (c *Config) NewTable() *hashtable.HashTable {
	f, ok := hashtable.HashFuncByName(c.HashFunc)
	if !ok {
		panic("Invalid hash function " + c.HashFunc)
	}
	return hashtable.New(c.Capacity, hashtable.WithHashFunc(f))
}
