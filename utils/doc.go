// SPDX-License-Identifier: EPL-2.0

// Package utils holds small numeric helpers shared by the decoders and the
// audio pipeline.
package utils
