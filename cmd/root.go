package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/peer-interview/internal/candidates"
	"github.com/spigell/peer-interview/internal/logger"
	"github.com/spigell/peer-interview/internal/matching"
	"github.com/spigell/peer-interview/internal/server"
)

const (
	app       = "peer-interview"
	envPrefix = "PEER_INTERVIEW"
)

type Config struct {
	Candidates *candidates.Config `mapstructure:"candidates"`
	Matching   *matching.Config   `mapstructure:"matching"`
	Server     *server.Config     `mapstructure:"server"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:          app,
		Short:        "peer-interview finds a peer for a mock interview by job target, timezone and availability",
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is peer-interview.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("candidates-source", "", "candidate pool source: fixture, file or postgres")
	rootCmd.PersistentFlags().String("candidates-file", "", "candidate pool document for the file source")
	rootCmd.PersistentFlags().StringP("exclude-file", "e", "", "json file with candidates that must never be matched")
	rootCmd.PersistentFlags().Duration("delay", matching.DefaultDelay, "simulated lookup latency")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("candidates.source", rootCmd.PersistentFlags().Lookup("candidates-source"))
	viper.BindPFlag("candidates.file", rootCmd.PersistentFlags().Lookup("candidates-file"))
	viper.BindPFlag("matching.exclude-file", rootCmd.PersistentFlags().Lookup("exclude-file"))
	viper.BindPFlag("matching.delay", rootCmd.PersistentFlags().Lookup("delay"))

	viper.SetDefault("candidates.source", candidates.SourceFixture)
}

func initConfig() {
	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// The config file is optional unless given explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}
	if config == nil {
		config = &Config{}
	}

	return config, nil
}

type deps struct {
	logger  *zap.Logger
	config  *Config
	repo    candidates.Repository
	matcher *matching.Service
}

func (d *deps) Close() {
	d.repo.Close()
	_ = d.logger.Sync()
}

// bootstrap builds what every command needs. Failures are fatal.
func bootstrap(ctx context.Context) *deps {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	repo, err := candidates.New(ctx, config.Candidates, logger)
	if err != nil {
		logger.Fatal("preparing the candidate pool",
			zap.Error(err),
			zap.String("hint", "check the candidates section of the configuration file"),
		)
	}

	return &deps{
		logger:  logger,
		config:  config,
		repo:    repo,
		matcher: matching.New(repo, config.Matching, logger),
	}
}
