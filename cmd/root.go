package cmd

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/packwiz/cursepack/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string
var verbosity int

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cursepack",
	Short: "A command line tool for creating CurseForge modpack manifests",
	// Receives whatever cobra couldn't match to a subcommand
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetupLogger(verbosity, cmd.ErrOrStderr())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No command given! Use one of new, modloader or add (see --help).")
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command %q! Use one of new, modloader or add (see --help).\n", args[0])
		}
		return errUsage
	},
}

// errUsage is returned after a usage message has already been printed
var errUsage = errors.New("invalid usage")

// Execute starts the root command for cursepack
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if err != errUsage {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Add adds a new command as a subcommand to cursepack
func Add(newCommand *cobra.Command) {
	rootCmd.AddCommand(newCommand)
}

// BindFlag binds a flag to a viper key, so it can be set from the config file and environment too
func BindFlag(key string, flag *pflag.Flag) {
	_ = viper.BindPFlag(key, flag)
}

// ManifestFile returns the path of the manifest to operate on
func ManifestFile() string {
	return viper.GetString("manifest-file")
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("manifest-file", "manifest.json", "The modpack manifest file to use")
	BindFlag("manifest-file", rootCmd.PersistentFlags().Lookup("manifest-file"))

	rootCmd.PersistentFlags().BoolP("non-interactive", "y", false, "Don't prompt; accept default values")
	BindFlag("non-interactive", rootCmd.PersistentFlags().Lookup("non-interactive"))

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Log more details (repeat for more)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cursepack.toml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".cursepack" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".cursepack")
	}

	// e.g. CURSEPACK_MANIFEST_FILE
	viper.SetEnvPrefix("cursepack")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
