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

package interpolation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/polyfit/interpolator/pkg/errors"
	"github.com/polyfit/interpolator/pkg/serializer"
)

// MarshalPoints encodes points in the persisted format: a JSON array
// indented with tabs. A nil slice is written as an empty array.
func MarshalPoints(points []Point) ([]byte, error) {
	if points == nil {
		points = []Point{}
	}
	data, err := json.MarshalIndent(points, "", "\t")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "points cannot be serialized", err)
	}
	return data, nil
}

// UnmarshalPoints decodes the persisted format. Any failure is returned as
// ErrCodeMalformedData wrapping the decoder error.
func UnmarshalPoints(data []byte) ([]Point, error) {
	return DecodePoints(bytes.NewReader(data), serializer.FormatJSON)
}

// DecodePoints decodes a point array from r in the given format (JSON or YAML).
// Any failure is returned as ErrCodeMalformedData wrapping the decoder error.
func DecodePoints(r io.Reader, format serializer.Format) ([]Point, error) {
	reader, err := serializer.NewReader(format, r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedData, "unsupported point set format", err)
	}
	return decodeFrom(reader)
}

// LoadPoints reads a point set from a file path or http(s) URL, with the
// format taken from the extension. A source that cannot be opened is
// ErrCodeNotFound; undecodable content is ErrCodeMalformedData.
func LoadPoints(ctx context.Context, path string) ([]Point, error) {
	reader, err := serializer.NewFileReaderAuto(ctx, path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "failed to open point set", err,
			map[string]any{"path": path})
	}
	defer reader.Close()

	return decodeFrom(reader)
}

func decodeFrom(reader *serializer.Reader) ([]Point, error) {
	var points []Point
	if err := reader.Deserialize(&points); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedData, "malformed point set", err)
	}
	if points == nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedData, "malformed point set",
			fmt.Errorf("expected an array of points"))
	}
	return points, nil
}
