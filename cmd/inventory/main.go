package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/gostonefire/inventoryindex"
	"github.com/gostonefire/inventoryindex/internal/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// GlobalOptions - Flags shared by all commands
type GlobalOptions struct {
	ConfigFile string
	Capacity   int64
	Hash       string
	LogLevel   string
}

var globalOptions GlobalOptions

// cfg and logger are set up before any command runs
var (
	cfg    config.Config
	logger log.FieldLogger = log.StandardLogger()
)

// cmdRoot is the base command when no other command has been specified.
var cmdRoot = &cobra.Command{
	Use:   "inventory",
	Short: "Hash indexed item inventory",
	Long: `
inventory keeps item quantities in a fixed capacity hash index over an ordered
list, and sorts the list by value, rarity, weight, quantity or insertion order
while every item stays reachable by name.
`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	DisableAutoGenTag: true,

	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	f := cmdRoot.PersistentFlags()
	f.StringVar(&globalOptions.ConfigFile, "config", "", "config file (default: ./inventory.yaml)")
	f.Int64Var(&globalOptions.Capacity, "capacity", config.DefaultCapacity, "number of index slots")
	f.StringVar(&globalOptions.Hash, "hash", config.DefaultHash, "hash algorithm, jenkins or crc32")
	f.StringVar(&globalOptions.LogLevel, "log-level", config.DefaultLogLevel, "log level")
}

// setup - Loads configuration with flags taking precedence and configures logging
func setup(cmd *cobra.Command, _ []string) (err error) {
	v := config.New(globalOptions.ConfigFile)
	f := cmd.Flags()
	for key, flag := range map[string]string{
		config.KeyCapacity: "capacity",
		config.KeyHash:     "hash",
		config.KeyLogLevel: "log-level",
	} {
		if err = v.BindPFlag(key, f.Lookup(flag)); err != nil {
			return errors.Wrapf(err, "bind flag %s", flag)
		}
	}

	if cfg, err = config.Load(v); err != nil {
		return
	}

	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(cfg.LogLevel)

	runID, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "generate run id")
	}
	logger = log.WithField("run", runID.String())
	logger.WithFields(log.Fields{"capacity": cfg.Capacity, "hash": cfg.Hash, "items": len(cfg.Items)}).Debug("configuration loaded")

	return
}

// newInventory - Returns an empty inventory as configured
func newInventory() (inv *inventory.Inventory, err error) {
	ha, err := cfg.HashAlgorithm()
	if err != nil {
		return
	}

	inv, info, err := inventory.NewInventory(inventory.Conf{Capacity: cfg.Capacity, HashAlgorithm: ha, Logger: logger})
	if err != nil {
		return
	}
	logger.WithFields(log.Fields{"capacity": info.Capacity, "internal_hash": info.InternalAlgorithm}).Debug("inventory created")

	return
}

func main() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
