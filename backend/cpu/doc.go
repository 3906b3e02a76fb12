// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU compute backend.
//
// This is the only backend in the library: an optimizer step is a synchronous,
// single-threaded pass over externally owned buffers, so there is no device
// transfer or kernel dispatch to hide.
package cpu
