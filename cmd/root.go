/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/ceq/equilibrium"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ceq",
	Short: "Chemical equilibrium of CHON combustion products",
	Long: `
Computes the equilibrium composition and thermodynamic state of the products of
a fuel and oxidizer mixture at a given equivalence ratio, for adiabatic (HP),
isothermal (TP), constant volume (UV) and isothermal constant volume (TV)
problems.

Solver settings come from flags, from a config file (--config, default
$HOME/.ceq.yaml) or from environment variables named CEQ_<setting>.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
			profiler = nil
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Solver settings shared by every command
var options = []struct {
	name, usage string
	defaultVal  interface{}
}{
	{
		name:       "maxAttempts",
		usage:      "number of restarts from a new random seed before giving up",
		defaultVal: equilibrium.DefaultMaxAttempts,
	},
	{
		name:       "maxIterations",
		usage:      "Newton iterations per attempt, 0 selects 50 at constant pressure and 100 at constant volume",
		defaultVal: 0,
	},
	{
		name:       "seed",
		usage:      "random seed for starting points, 0 draws a new one per solve",
		defaultVal: "0",
	},
	{
		name:       "logLevel",
		usage:      "log level: panic, fatal, error, warn, info, debug or trace",
		defaultVal: "info",
	},
	{
		name:       "profile",
		usage:      "write a cpu or mem profile to the current directory",
		defaultVal: "",
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	set := rootCmd.PersistentFlags()
	set.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ceq.yaml)")
	for _, option := range options {
		switch v := option.defaultVal.(type) {
		case string:
			set.String(option.name, v, option.usage)
		case int:
			set.Int(option.name, v, option.usage)
		default:
			panic("invalid option type")
		}
		if err := viper.BindPFlag(option.name, set.Lookup(option.name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err == nil {
			// Search config in home directory with name ".ceq" (without extension).
			viper.AddConfigPath(home)
			viper.SetConfigName(".ceq")
		}
	}
	viper.SetEnvPrefix("CEQ")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logrus.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	} else if cfgFile != "" {
		logrus.WithError(err).Warn("unable to read config file")
	}
}

func setup(cmd *cobra.Command, args []string) (err error) {
	var level logrus.Level
	if level, err = logrus.ParseLevel(viper.GetString("logLevel")); err != nil {
		return
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(cmd.ErrOrStderr())
	switch mode := viper.GetString("profile"); mode {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return fmt.Errorf("unknown profile mode %q, use cpu or mem", mode)
	}
	return
}

// newSolver builds a solver from the bound settings.
func newSolver() (s *equilibrium.Solver, err error) {
	var cfg equilibrium.Config
	if cfg.MaxAttempts, err = cast.ToIntE(viper.Get("maxAttempts")); err != nil {
		return nil, fmt.Errorf("maxAttempts: %w", err)
	}
	if cfg.MaxIterations, err = cast.ToIntE(viper.Get("maxIterations")); err != nil {
		return nil, fmt.Errorf("maxIterations: %w", err)
	}
	if cfg.Seed, err = cast.ToUint64E(viper.Get("seed")); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	s = equilibrium.NewSolver(cfg)
	s.Log = logrus.StandardLogger()
	return
}

