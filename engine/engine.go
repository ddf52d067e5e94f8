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

package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/deepmap/oapi-codegen/pkg/runtime"
	"github.com/nuts-foundation/pairing-logic/api"
	"github.com/nuts-foundation/pairing-logic/pkg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Engine bundles the commands, lifecycle hooks and routes of the pairing logic.
type Engine struct {
	Name      string
	Cmd       *cobra.Command
	Configure func() error
	Start     func() error
	Shutdown  func() error
	Routes    func(router runtime.EchoRouter)
}

// NewPairingLogicEngine returns the engine around the process wide PairingLogic.
func NewPairingLogicEngine() *Engine {
	pl := pkg.PairingLogicInstance()

	root := cmd(pl)
	if err := BindFlags(viper.GetViper(), root.PersistentFlags()); err != nil {
		logrus.WithError(err).Error("could not bind pairing logic flags")
	}

	return &Engine{
		Name: "PairingLogic",
		Cmd:  root,
		Configure: func() error {
			config, err := LoadConfig(viper.GetViper())
			if err != nil {
				return err
			}
			pl.Config = config
			return nil
		},
		Start:    pl.Start,
		Shutdown: pl.Shutdown,
		Routes: func(router runtime.EchoRouter) {
			api.RegisterHandlers(router, &api.Wrapper{Pl: pl})
		},
	}
}

func cmd(pl *pkg.PairingLogic) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairing-logic",
		Short: "pairing logic commands",
	}
	cmd.PersistentFlags().AddFlagSet(FlagSet())

	// run starts the engine for a single operator command
	run := func(f func(ctx context.Context, args []string) (interface{}, error)) func(*cobra.Command, []string) error {
		return func(c *cobra.Command, args []string) error {
			config, err := LoadConfig(viper.GetViper())
			if err != nil {
				return err
			}
			pl.Config = config
			if err := pl.Start(); err != nil {
				return err
			}
			defer pl.Shutdown()

			result, err := f(context.Background(), args)
			if err != nil {
				return err
			}
			if result == nil {
				return nil
			}
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), string(out))
			return nil
		}
	}

	datasetCmd := &cobra.Command{
		Use:   "dataset",
		Short: "dataset maintenance commands",
	}
	datasetCmd.AddCommand(&cobra.Command{
		Use:   "provision [dataset_id]",
		Short: "Create a planned dataset, or return an existing one to planned",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, args []string) (interface{}, error) {
			err := pl.Disconnect(ctx, args[0])
			if errors.Is(err, pkg.ErrNotFound) {
				err = pkg.ProvisionDataset(pl.Store, args[0], pkg.StatusPlanned)
			}
			if err != nil {
				return nil, err
			}
			return pl.GetDataset(ctx, args[0])
		}),
	})
	datasetCmd.AddCommand(&cobra.Command{
		Use:   "status [dataset_id]",
		Short: "Show the connection status of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, args []string) (interface{}, error) {
			return pl.GetDataset(ctx, args[0])
		}),
	})
	datasetCmd.AddCommand(&cobra.Command{
		Use:   "disconnect [dataset_id]",
		Short: "Return a dataset to planned so a device has to pair again",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, args []string) (interface{}, error) {
			if err := pl.Disconnect(ctx, args[0]); err != nil {
				return nil, err
			}
			return pl.GetDataset(ctx, args[0])
		}),
	})
	cmd.AddCommand(datasetCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "researcher-tokens [project_key]",
		Short: "Issue researcher tokens for all approved requests of a project",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, args []string) (interface{}, error) {
			return pl.CreateResearcherTokens(ctx, args[0])
		}),
	})

	return cmd
}
