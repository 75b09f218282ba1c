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

	appversion "github.com/polyfit/interpolator/pkg/version"
)

// compare exit codes
const (
	compareHolds    = 0
	compareFails    = 1
	compareBadInput = 2
)

func (a *app) compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two four-part versions",
		ArgsUsage: "A B",
		Description: `Compare versions A and B, each written as major.minor.patch.subpatch, with
the given operator at the given precision. Prints true or false.

Exit status is 0 when the comparison holds, 1 when it does not, and 2 on
invalid input.

  interpolator compare 5.0.545.0 5.0.587.0 --precision minor --op =`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "precision",
				Value: string(appversion.DefaultPrecision),
				Usage: "number of leading components compared (minor, patch)",
			},
			&cli.StringFlag{
				Name:  "op",
				Value: string(appversion.OpEqual),
				Usage: "comparison operator (<, <=, =, >=, >)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return cli.Exit(fmt.Sprintf("Error: expected 2 versions, got %d", cmd.NArg()), compareBadInput)
			}

			va, err := appversion.Parse(cmd.Args().Get(0))
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), compareBadInput)
			}
			vb, err := appversion.Parse(cmd.Args().Get(1))
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), compareBadInput)
			}
			p, err := appversion.ParsePrecision(cmd.String("precision"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), compareBadInput)
			}
			op, err := appversion.ParseOperator(cmd.String("op"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), compareBadInput)
			}

			ok, err := appversion.Compare(va, vb, p, op)
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), compareBadInput)
			}

			fmt.Fprintln(a.stdout, ok)
			if !ok {
				return cli.Exit("", compareFails)
			}
			return nil
		},
	}
}
