package main

import (
	"fmt"
	"io/ioutil"
	"path"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/antobinary/bbb-pads/bolt"
	"github.com/antobinary/bbb-pads/etherpad"
	"github.com/antobinary/bbb-pads/log"
	"github.com/antobinary/bbb-pads/registry/inmem"
	"github.com/antobinary/bbb-pads/registry/services"
	"github.com/antobinary/bbb-pads/sender"
)

var (
	// flags
	env        string
	configFile string

	// logger
	logger log.Logger

	// configuration
	cfg Configuration

	// drivers
	boltDriver *bolt.Driver

	// bus
	eventBus *sender.Bus

	// services
	registryService *services.Registry
)

type Configuration struct {
	HTTP struct {
		Addr string `toml:"addr"`
	} `toml:"http"`
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
	Etherpad struct {
		URL    string `toml:"url"`
		APIKey string `toml:"api_key"`
	} `toml:"etherpad"`
	Sessions struct {
		TTL string `toml:"ttl"`
	} `toml:"sessions"`
	Webhook struct {
		URL string `toml:"url"`
	} `toml:"webhook"`
}

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "environment")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file")
}

var RootCmd = cobra.Command{
	Use:   "bbb-pads",
	Short: "Keep shared meeting pads in sync with Etherpad",
	Long:  "Keep shared meeting pads in sync with Etherpad",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = log.New(env)

		if configFile == "" {
			configFile = path.Join("configuration", fmt.Sprintf("config.%s.toml", env))
		}

		// Load configuration
		cfgData, err := ioutil.ReadFile(configFile)
		if err != nil {
			logger.Fatal("error reading configuration:", err)
		}

		err = toml.Unmarshal(cfgData, &cfg)
		if err != nil {
			logger.Fatal("error unmarshalling configuration:", err)
		}

		// Create drivers
		boltDriver = &bolt.Driver{}
		if err := boltDriver.Open(cfg.Bolt.Store); err != nil {
			logger.Fatal("could not open bolt:", err)
		}
		mapper := &bolt.Mapper{Driver: boltDriver}

		// Create clients
		api := etherpad.NewClient(nil, cfg.Etherpad.URL, cfg.Etherpad.APIKey)

		// Create senders
		eventBus = sender.NewBus()
		senders := sender.Multi{eventBus}
		if cfg.Webhook.URL != "" {
			senders = append(senders, sender.NewWebhook(nil, cfg.Webhook.URL, logger))
		}

		// Create services
		registryService = services.NewRegistry(inmem.NewStore(), api, mapper, senders, logger)
		if cfg.Sessions.TTL != "" {
			ttl, err := time.ParseDuration(cfg.Sessions.TTL)
			if err != nil {
				logger.Fatal("invalid session ttl:", err)
			}
			registryService.SetSessionTTL(ttl)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		boltDriver.Close()
	},
}
