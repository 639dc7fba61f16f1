// Command bcnum is a fixed-scale decimal calculator.
//
//	bcnum eval --scale 2 -- 19.99 mul 3 mul:if=true 0.90 sub 5
//	bcnum cmp --scale 2 1.00 1.0001
//
// Negative numbers must follow "--", otherwise they are read as flags.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/govalues/bcnum"
)

type app struct {
	v       *viper.Viper
	log     *zap.Logger
	cfgFile string
}

var defCfgFilePaths = []string{".", filepath.Join("$HOME", ".bcnum")}

const cfgFileName = "bcnum"

func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v, log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "bcnum",
		Short:         "fixed-scale decimal calculator",
		Long:          "bcnum evaluates chains of decimal operations truncated to a fixed scale.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	v.SetDefault("scale", bcnum.DefaultScale)
	v.SetDefault("verbose", false)
	v.SetEnvPrefix("BCNUM")
	v.AutomaticEnv()

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./bcnum.toml or $HOME/.bcnum/bcnum.toml)")
	flags.Int("scale", bcnum.DefaultScale, "number of digits after the decimal point")
	flags.Bool("verbose", false, "log every step")
	_ = v.BindPFlag("scale", flags.Lookup("scale"))
	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))

	root.AddCommand(a.newEvalCmd(), a.newCmpCmd())
	return root
}

func (a *app) loadConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName(cfgFileName)
		for _, dirPath := range defCfgFilePaths {
			a.v.AddConfigPath(dirPath)
		}
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "viper load config file failed")
	}
	return nil
}

func (a *app) initLogger() error {
	var (
		log *zap.Logger
		err error
	)
	if a.v.GetBool("verbose") {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	a.log = log
	if f := a.v.ConfigFileUsed(); f != "" {
		a.log.Debug("config loaded", zap.String("fpath", f))
	}
	return nil
}

func (a *app) scale() (int, error) {
	s := a.v.GetInt("scale")
	if s < 0 || s > bcnum.MaxScale {
		return 0, errors.Wrapf(bcnum.ErrScaleRange, "scale %v", s)
	}
	return s, nil
}

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
