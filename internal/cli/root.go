package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/uisx-labs/uisx/internal/branding"
	"github.com/uisx-labs/uisx/internal/config"
	"github.com/uisx-labs/uisx/internal/logging"
	"github.com/uisx-labs/uisx/internal/registry"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	appFlag       string
	overrideFlags []string
	logLevelFlag  string
	noCacheFlag   bool

	logger = logging.Nop()
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&appFlag, "app", "", "Base app layer directory")
	pf.StringSliceVar(&overrideFlags, "override", nil, "Override layer directory, lowest first (repeatable)")
	pf.StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
	pf.BoolVar(&noCacheFlag, "no-cache", false, "Load every layer from disk, ignoring the layer cache")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` resolves the extensions of a web app across a stack of layers.

The base app is overridden by each --override layer in order. An override
layer supersedes the extensions of the stack below it that share a name
and type, and adds the ones that are new.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		pf := cmd.Root().PersistentFlags()
		for key, flag := range map[string]string{
			config.KeyApp:       "app",
			config.KeyOverrides: "override",
			config.KeyLogLevel:  "log-level",
		} {
			if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
				return fmt.Errorf("binding flag --%s: %w", flag, err)
			}
		}

		l, err := logging.New(config.Get(config.KeyLogLevel), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// configuredLayers returns the layer stack from flags, environment and the
// config file, in that order of precedence.
func configuredLayers() ([]registry.Layer, error) {
	app := config.Get(config.KeyApp)
	if app == "" {
		return nil, errors.New("no app layer: pass --app or run `" + branding.CLIName() + " config set app <dir>`")
	}
	layers := []registry.Layer{{BasePath: app}}
	for _, dir := range config.GetStringSlice(config.KeyOverrides) {
		layers = append(layers, registry.Layer{BasePath: dir})
	}
	return layers, nil
}

// resolve loads and folds the configured layer stack.
func resolve(cmd *cobra.Command) (*registry.Resolution, error) {
	layers, err := configuredLayers()
	if err != nil {
		return nil, err
	}

	opts := []registry.Option{registry.WithLogger(logger)}
	if config.GetBool(config.KeyCache) && !noCacheFlag {
		opts = append(opts, registry.WithCache(filepath.Join(config.Dir(), registry.CacheFileName)))
	}
	logger.Debug("resolving layers", zap.Int("layers", len(layers)))

	res, err := registry.New(opts...).Resolve(cmd.Context(), layers)
	if err != nil {
		return nil, fmt.Errorf("resolving layers: %w", err)
	}
	return res, nil
}
