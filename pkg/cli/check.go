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
)

func (a *app) checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check whether the pinned GeoGebra Apps version is the latest release",
		Description: `Look up the latest GeoGebra Apps bundle and compare its version with the
pinned one at minor precision. Prints the used version, the latest version,
and a verdict.

Exit status is 0 when the pinned version is current and 1 when it is
outdated or the lookup fails.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			stop := startProgress(a.stderr, "Looking up the latest release...")
			res, err := a.checker.Check(ctx)
			stop()
			if err != nil {
				slog.Debug("freshness check failed", "error", err)
				return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
			}

			lines := res.Lines()
			for _, l := range lines[:len(lines)-1] {
				fmt.Fprintln(a.stdout, l)
			}

			if !res.Current {
				fmt.Fprintln(a.stderr, res.Verdict())
				return cli.Exit("", 1)
			}

			fmt.Fprintln(a.stdout, res.Verdict())
			return nil
		},
	}
}
