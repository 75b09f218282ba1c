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

	"github.com/urfave/cli/v3"

	"github.com/polyfit/interpolator/pkg/interpolation"
)

func (a *app) commandCmd() *cli.Command {
	return &cli.Command{
		Name:  "command",
		Usage: "Validate a point set and print the interpolation command",
		Description: `Read a point set, a JSON or YAML array of {"x": .., "y": ..} objects,
validate it, and print the engine command that defines the interpolating
polynomial, e.g.

  f(x) = Polynomial({(0,0),(1,2)})

At least two points are required and no two points may share an
x-coordinate within the tolerance.`,
		Flags: []cli.Flag{
			pointsFlag(),
			inputFormatFlag(),
			nameFlag(),
			toleranceFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			points, err := a.readPoints(ctx, cmd)
			if err != nil {
				return err
			}

			opts, err := builderOptions(cmd)
			if err != nil {
				return err
			}

			req, err := interpolation.NewBuilder(opts...).Build(points)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.stdout, req.Command)
			return nil
		},
	}
}
