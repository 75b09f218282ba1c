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

// Package session holds an interactive interpolation session: an ordered
// point set and the engine that solves it.
//
// A Session is an explicit handle; create as many as needed. It is not safe
// for concurrent mutation, matching the one-action-at-a-time model of an
// interactive front end.
//
//	s := session.New(eng)
//	s.Add(interpolation.Point{X: 0, Y: 0})
//	s.Add(interpolation.Point{X: 1, Y: 2})
//	res, err := s.Interpolate(ctx)
//	// res.Formula is what the engine returned, res.Link opens it in the query service
//
// Validation failures never reach the engine, and a failed Load leaves the
// current point set untouched.
package session
