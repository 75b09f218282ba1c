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

// Package engine is the client side of the external math engine that solves
// interpolation commands.
//
// The engine owns a set of named objects (points, functions, ...). This
// package defines the Engine interface over that object model, helpers that
// read points and formulas back from it, and Client, an HTTP implementation
// that talks to an engine bridge:
//
//	POST   /eval            {"command": "f(x) = Polynomial({(0,0),(1,2)})"}
//	GET    /objects         {"objects": [{"name": "f", "type": "function", "value": "f(x) = 2x"}]}
//	DELETE /objects/{name}
//
// Non-2xx responses surface as ENGINE_ERROR structured errors.
package engine
