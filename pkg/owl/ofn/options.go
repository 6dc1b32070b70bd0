// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ofn

// DEFAULT_MAX_DEPTH bounds the nesting of class expressions, data ranges and
// annotations.
const DEFAULT_MAX_DEPTH uint = 256

// DEFAULT_MAX_INPUT_SIZE bounds the size of a document in bytes (64 MiB).
const DEFAULT_MAX_INPUT_SIZE uint = 64 * 1024 * 1024

// Options holds the limits applied whilst parsing.
type Options struct {
	// Maximum nesting depth.
	MaxDepth uint
	// Maximum input size (in bytes).
	MaxInputSize uint
}

// DefaultOptions returns the default parsing limits.
func DefaultOptions() Options {
	return Options{DEFAULT_MAX_DEPTH, DEFAULT_MAX_INPUT_SIZE}
}

// Option adjusts the parsing limits.
type Option func(*Options)

// WithMaxDepth sets the maximum nesting depth.
func WithMaxDepth(depth uint) Option {
	return func(o *Options) { o.MaxDepth = depth }
}

// WithMaxInputSize sets the maximum input size, in bytes.
func WithMaxInputSize(size uint) Option {
	return func(o *Options) { o.MaxInputSize = size }
}

// WithOptions replaces all limits at once.
func WithOptions(options Options) Option {
	return func(o *Options) { *o = options }
}

func buildOptions(opts []Option) Options {
	options := DefaultOptions()
	//
	for _, opt := range opts {
		opt(&options)
	}
	//
	return options
}
