/*
 * This file is part of pairing-logic.
 *
 * pairing-logic is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * pairing-logic is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with pairing-logic.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mitchellh/go-homedir"
	"github.com/nuts-foundation/pairing-logic/api"
	"github.com/nuts-foundation/pairing-logic/engine"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

const confInterface = "interface"
const confPort = "port"
const confVerbosity = "verbosity"

var e = engine.NewPairingLogicEngine()
var rootCmd = e.Cmd

var cfgFile string

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the pairing logic api server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.Configure(); err != nil {
				return err
			}
			if err := e.Start(); err != nil {
				return err
			}
			defer e.Shutdown()

			server := newServer()
			addr := fmt.Sprintf("%s:%d", viper.GetString(confInterface), viper.GetInt(confPort))
			go func() {
				if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
					server.Logger.Fatal(err)
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			<-quit

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(ctx)
		},
	}

	cmd.Flags().String(confInterface, "localhost", "Server interface binding")
	cmd.Flags().IntP(confPort, "p", 1324, "Server listen port")
	viper.BindPFlag(confPort, cmd.Flags().Lookup(confPort))
	viper.BindPFlag(confInterface, cmd.Flags().Lookup(confInterface))

	return cmd
}

// newServer returns the echo server with the engine routes, verification routes throttled per client when configured
func newServer() *echo.Echo {
	server := echo.New()
	server.HideBanner = true
	server.Use(middleware.Logger())
	if limit := viper.GetFloat64(engine.ConfRateLimit); limit > 0 {
		server.Use(api.RateLimit(rate.Limit(limit), viper.GetInt(engine.ConfRateBurst), api.VerificationPaths...))
	}
	e.Routes(server)
	return server
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pairing-logic.yaml)")
	rootCmd.PersistentFlags().StringP(confVerbosity, "v", "info", "Log level (trace, debug, info, warn, error)")
	viper.BindPFlag(confVerbosity, rootCmd.PersistentFlags().Lookup(confVerbosity))
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
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".pairing-logic" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".pairing-logic")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	level, err := logrus.ParseLevel(viper.GetString(confVerbosity))
	if err != nil {
		logrus.WithError(err).Warn("invalid verbosity, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
