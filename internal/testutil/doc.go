// SPDX-License-Identifier: MPL-2.0

// Package testutil holds file helpers shared by the wca test suites.
package testutil
