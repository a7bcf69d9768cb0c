// SPDX-License-Identifier: MPL-2.0

// Package types defines small value types shared by the wca packages and the
// CLI. It imports only the standard library.
package types
