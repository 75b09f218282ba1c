// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/polyfit/interpolator/pkg/defaults"
	"github.com/polyfit/interpolator/pkg/engine"
	"github.com/polyfit/interpolator/pkg/interpolation"
	"github.com/polyfit/interpolator/pkg/session"
)

func (a *app) interpolateCmd() *cli.Command {
	return &cli.Command{
		Name:  "interpolate",
		Usage: "Interpolate a point set on the math engine",
		Description: `Read and validate a point set, load it into the math engine, evaluate
the interpolation command, and report the command, the resulting formula,
and a deep link to a query service for the formula. The output is an
Interpolation document with kind, apiVersion, and metadata fields.

The engine is reached through its HTTP bridge (--engine or ENGINE_URL).`,
		Flags: []cli.Flag{
			pointsFlag(),
			inputFormatFlag(),
			nameFlag(),
			toleranceFlag(),
			&cli.StringFlag{
				Name:    "engine",
				Usage:   "base URL of the engine bridge",
				Sources: cli.EnvVars(engine.EnvEngineURL),
			},
			&cli.StringFlag{
				Name:  "link-base",
				Value: interpolation.DefaultDeepLinkBase,
				Usage: "base URL of the formula deep link",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.CLIInterpolateTimeout,
				Usage: "overall time limit",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			engineURL := cmd.String("engine")
			if engineURL == "" {
				return fmt.Errorf("no engine configured, set --engine or %s", engine.EnvEngineURL)
			}

			points, err := a.readPoints(ctx, cmd)
			if err != nil {
				return err
			}

			opts, err := builderOptions(cmd)
			if err != nil {
				return err
			}

			// reject bad input before contacting the engine
			if _, err := interpolation.NewBuilder(opts...).Build(points); err != nil {
				return err
			}

			eng, err := a.newEngine(engineURL)
			if err != nil {
				return err
			}
			s := session.New(eng,
				session.WithBuilderOptions(opts...),
				session.WithDeepLinkBase(cmd.String("link-base")),
				session.WithPoints(points),
			)

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			stop := startProgress(a.stderr, "Interpolating on "+engineURL+"...")
			if err := s.Sync(ctx); err != nil {
				stop()
				return err
			}
			res, err := s.Interpolate(ctx)
			stop()
			if err != nil {
				return err
			}

			w := a.newWriter(cmd, outFormat)
			defer func() {
				if err := w.Close(); err != nil {
					slog.Warn("failed to close output", "error", err)
				}
			}()

			return w.Serialize(ctx, session.NewReport(res, len(points), version))
		},
	}
}
