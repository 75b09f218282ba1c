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

// Package errors provides structured errors with stable codes.
//
// Codes are part of the public API: HTTP handlers map them to status codes
// and the CLI maps them to exit codes. Use New or Wrap to create errors and
// CodeOf or HasCode to classify them:
//
//	if errors.HasCode(err, errors.ErrCodeInsufficientPoints) {
//	    // ask the user for more points
//	}
package errors
