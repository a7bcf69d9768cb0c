// SPDX-License-Identifier: MPL-2.0

// Package executor runs verified programs.
//
// Commands run strictly in program order on the caller's goroutine. The first
// routine failure stops the program and is returned as a *RoutineFailedError
// carrying the command index and phrase.
package executor
