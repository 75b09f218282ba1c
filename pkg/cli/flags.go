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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/polyfit/interpolator/pkg/interpolation"
	"github.com/polyfit/interpolator/pkg/serializer"
)

// Flags are built per command so parsed state never leaks between runs.

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func pointsFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "points",
		Aliases: []string{"p"},
		Usage:   "point set file or http(s) URL, JSON or YAML by extension; '-' or empty reads stdin",
	}
}

func inputFormatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "input-format",
		Value: string(serializer.FormatJSON),
		Usage: "format of a point set read from stdin (json, yaml)",
	}
}

func nameFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Value:   interpolation.DefaultFunctionName,
		Usage:   "name of the interpolating function",
	}
}

func toleranceFlag() *cli.FloatFlag {
	return &cli.FloatFlag{
		Name:    "tolerance",
		Value:   interpolation.DefaultTolerance,
		Usage:   "points whose x-coordinates differ by at most this are rejected",
		Sources: cli.EnvVars(interpolation.EnvTolerance),
	}
}

// parseOutputFormat returns the --format value or an error if it is unsupported.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}

// readPoints loads the point set named by --points, or stdin.
func (a *app) readPoints(ctx context.Context, cmd *cli.Command) ([]interpolation.Point, error) {
	path := strings.TrimSpace(cmd.String("points"))
	if path != "" && path != "-" {
		return interpolation.LoadPoints(ctx, path)
	}

	f := serializer.Format(cmd.String("input-format"))
	if f != serializer.FormatJSON && f != serializer.FormatYAML {
		return nil, fmt.Errorf("unsupported input format: %q", f)
	}
	return interpolation.DecodePoints(a.stdin, f)
}

// builderOptions collects --name and --tolerance.
func builderOptions(cmd *cli.Command) ([]interpolation.Option, error) {
	tol := cmd.Float("tolerance")
	if tol < 0 {
		return nil, fmt.Errorf("tolerance must not be negative: %v", tol)
	}
	return []interpolation.Option{
		interpolation.WithTolerance(tol),
		interpolation.WithFunctionName(cmd.String("name")),
	}, nil
}

// newWriter writes to --output, or the command's stdout when unset.
func (a *app) newWriter(cmd *cli.Command, format serializer.Format) *serializer.Writer {
	if out := strings.TrimSpace(cmd.String("output")); out != "" {
		return serializer.NewFileWriterOrStdout(format, out)
	}
	return serializer.NewWriter(format, a.stdout)
}
