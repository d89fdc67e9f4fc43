package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "2.2.0"
)

var rootCmd = &cobra.Command{
	Use:     "grandinstall",
	Short:   "Provision and seed a storefront document database",
	Version: Version,
	Long: `grandinstall prepares a fresh MongoDB database for a new storefront
instance: it creates the collections and indexes, stamps the schema version,
and loads the reference data (stores, languages, currencies, countries,
customer groups, message templates and more). With --sample-data it also
loads a demonstration catalog of categories, brands and products.

The command is meant to run exactly once per database; a second run against
an installed database fails fast.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./grandinstall.config.json)")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("grandinstall.config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		// config file is optional; env vars and flags cover everything
	}
}
