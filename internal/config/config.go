package config

import (
	"strings"

	"github.com/gostonefire/inventoryindex"
	"github.com/gostonefire/inventoryindex/hashfunc"
	"github.com/gostonefire/inventoryindex/internal/hash"
	"github.com/gostonefire/inventoryindex/invterr"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ConfigName - Base name of the config file looked up in the working directory
const ConfigName = "inventory"

// ConfigType - Format of the config file
const ConfigType = "yaml"

// EnvPrefix - Prefix of environment variables overriding config keys, e.g. INVENTORY_CAPACITY
const EnvPrefix = "INVENTORY"

// Config keys
const (
	KeyCapacity = "capacity"
	KeyHash     = "hash"
	KeyLogLevel = "log_level"
	KeyItems    = "items"
)

// DefaultCapacity - Number of index slots used if nothing else is configured
const DefaultCapacity int64 = 16

// DefaultHash - Hash algorithm used if nothing else is configured
const DefaultHash = hash.Jenkins

// DefaultLogLevel - Log level used if nothing else is configured
const DefaultLogLevel = "info"

// ItemConf - Item definition as written in the config file
type ItemConf struct {
	Name   string  `mapstructure:"name"`
	Value  int     `mapstructure:"value"`
	Rarity string  `mapstructure:"rarity"`
	Weight float64 `mapstructure:"weight"`
}

// Config - Resolved and validated configuration
//   - Capacity is the fixed number of index slots
//   - Hash is the name of the hash algorithm, hash.Jenkins or hash.CRC32
//   - LogLevel is the parsed log level
//   - Items is the catalog of item definitions that can be added by name
type Config struct {
	Capacity int64
	Hash     string
	LogLevel log.Level
	Items    []inventory.Item
}

// New - Returns a viper instance with defaults, environment binding and config file location set up.
// Flags can be bound to it before calling Load.
//   - path is an explicit config file, if empty inventory.yaml is looked up in the working directory
func New(path string) *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyCapacity, DefaultCapacity)
	v.SetDefault(KeyHash, DefaultHash)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType(ConfigType)
		v.AddConfigPath(".")
	}

	return v
}

// Load - Reads the config file if there is one and returns the validated configuration.
// A config file missing from the working directory is not an error, an explicit one that can not be read is.
//
// It returns:
//   - cfg is the resolved configuration
//   - err is of type invterr.InvalidArgument for invalid values, or a standard error if the file can not be read
func Load(v *viper.Viper) (cfg Config, err error) {
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			err = errors.Wrap(err, "read config")
			return
		}
		err = nil
	}

	cfg.Capacity = v.GetInt64(KeyCapacity)
	if cfg.Capacity <= 0 {
		err = invalid("capacity must be higher than 0 (zero), got %d", cfg.Capacity)
		return
	}

	cfg.Hash = strings.ToLower(v.GetString(KeyHash))
	if _, err = hash.New(cfg.Hash, cfg.Capacity); err != nil {
		err = invalid("%s", err)
		return
	}

	if cfg.LogLevel, err = log.ParseLevel(v.GetString(KeyLogLevel)); err != nil {
		err = invalid("%s", err)
		return
	}

	if !v.IsSet(KeyItems) {
		cfg.Items = inventory.DefaultItems()
		return
	}

	var items []ItemConf
	if err = v.UnmarshalKey(KeyItems, &items); err != nil {
		err = errors.Wrap(err, "decode items")
		return
	}
	if cfg.Items, err = toItems(items); err != nil {
		return
	}

	return
}

// HashAlgorithm - Returns the configured hash algorithm, nil for the internal Jenkins one-at-a-time algorithm
func (C Config) HashAlgorithm() (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	if C.Hash == hash.Jenkins || C.Hash == "" {
		return
	}

	return hash.New(C.Hash, C.Capacity)
}

// Item - Returns the configured item definition with the given name, case-insensitive
func (C Config) Item(name string) (item inventory.Item, ok bool) {
	for _, i := range C.Items {
		if strings.EqualFold(i.Name, name) {
			return i, true
		}
	}

	return
}

// toItems - Converts and validates item definitions from the config file
func toItems(confs []ItemConf) (items []inventory.Item, err error) {
	seen := make(map[string]bool, len(confs))
	items = make([]inventory.Item, 0, len(confs))

	for _, c := range confs {
		var item inventory.Item
		item.Name, item.Value, item.Weight = c.Name, c.Value, c.Weight
		if item.Rarity, err = inventory.ParseRarity(c.Rarity); err != nil {
			err = errors.Wrapf(err, "item %q", c.Name)
			return
		}
		if err = item.Validate(); err != nil {
			return
		}

		key := strings.ToLower(item.Name)
		if seen[key] {
			err = invalid("item %q is defined more than once", item.Name)
			return
		}
		seen[key] = true
		items = append(items, item)
	}

	return
}

func invalid(format string, args ...any) error {
	return errors.Wrap(invterr.NewInvalidArgument(format, args...), "invalid config")
}
