// SPDX-License-Identifier: EPL-2.0

package window

import "errors"

var (
	// ErrUnknownWindow is returned by ByName for names that are not registered.
	ErrUnknownWindow = errors.New("unknown window function")
)
