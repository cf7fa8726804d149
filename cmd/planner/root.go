package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/trip-planner/travel-planner/internal/adapter/provider/tavily"
	"github.com/trip-planner/travel-planner/internal/domain"
	"github.com/trip-planner/travel-planner/internal/infrastructure/logger"
)

// Settings keys. Each can come from a flag, the environment or the config file.
const (
	keyAPIKey  = "api_key"
	keyBaseURL = "base_url"
	keyTimeout = "timeout"
	keyPrefs   = "prefs"
	keyVerbose = "verbose"
)

// app holds state shared by the subcommands of one root command.
type app struct {
	v   *viper.Viper
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logger.Nop()}

	root := &cobra.Command{
		Use:   "planner",
		Short: "Validate trip preferences and search for attractions and hotels",
		Long: `planner reads a trip preferences file (YAML or JSON), validates it, and
searches the web for attractions and hotels at the destination.

The Tavily API key is read from --api-key, $TAVILY_API_KEY, $PLANNER_API_KEY
or the api_key entry of the config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default: ./planner.yaml or ~/.config/travel-planner/planner.yaml)")
	pf.String("prefs", "", "trip preferences file (YAML or JSON)")
	pf.String("api-key", "", "Tavily API key")
	pf.String("base-url", tavily.DefaultBaseURL, "Tavily API base URL")
	pf.Duration("timeout", tavily.DefaultTimeout, "search request timeout")
	pf.BoolP("verbose", "v", false, "log search diagnostics to stderr")

	root.AddCommand(
		newValidateCmd(a),
		newAttractionsCmd(a),
		newHotelsCmd(a),
	)
	return root
}

// init binds flags, environment and config file into the app's viper instance.
func (a *app) init(cmd *cobra.Command) error {
	flags := cmd.Flags()
	for key, flag := range map[string]string{
		keyAPIKey:  "api-key",
		keyBaseURL: "base-url",
		keyTimeout: "timeout",
		keyPrefs:   "prefs",
		keyVerbose: "verbose",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	a.v.SetEnvPrefix("PLANNER")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindEnv(keyAPIKey, "PLANNER_API_KEY", "TAVILY_API_KEY"); err != nil {
		return err
	}

	cfgFile, _ := flags.GetString("config")
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.SetConfigName("planner")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "travel-planner"))
		}
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	a.log = logger.NewCLI(cmd.ErrOrStderr(), a.v.GetBool(keyVerbose))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug().Str("file", used).Msg("Using config file")
	}
	return nil
}

// loadPreferences reads and validates the --prefs file.
func (a *app) loadPreferences() (domain.TripPreferences, error) {
	path := a.v.GetString(keyPrefs)
	if path == "" {
		return domain.TripPreferences{}, errors.New("--prefs is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.TripPreferences{}, fmt.Errorf("read preferences: %w", err)
	}

	var in domain.TripInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return domain.TripPreferences{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return domain.ValidateTripInput(in)
}

// searchClient builds the Tavily client from the bound settings.
func (a *app) searchClient() (*tavily.Adapter, error) {
	client, err := tavily.NewAdapter(a.v.GetString(keyAPIKey),
		tavily.WithBaseURL(a.v.GetString(keyBaseURL)),
		tavily.WithTimeout(a.v.GetDuration(keyTimeout)),
		tavily.WithLogger(a.log.WithProvider(tavily.ProviderName).Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("%w (set --api-key or TAVILY_API_KEY)", err)
	}
	return client, nil
}
