package cli

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
)

var (
	cfgFile string
	verbose bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pagelint",
		Short:         "Audit a live web page against a compliance checklist",
		Long:          "pagelint fetches a page, evaluates it against a checklist of content, markup and header requirements, scores compliance, and can patch a stored copy of the page with safe, idempotent fixes.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pagelint.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cobra.OnInitialize(initConfig)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAuditCmd())
	cmd.AddCommand(newFixCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// initConfig reads the config file and environment, seeding defaults for the
// fetch and checklist settings.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".pagelint")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("PAGELINT")
	viper.AutomaticEnv()

	// Missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()

	viper.SetDefault("fetch.timeout", "12s")
	viper.SetDefault("fetch.user_agent", "")
	viper.SetDefault("checklist.path", "")
	viper.SetDefault("history.enabled", true)

	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}
