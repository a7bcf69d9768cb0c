// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the wca command-line interface.
//
// The root command treats its positional arguments as a token vector and
// hands it to the aggregator, so `wca .echo hi prefix:>` runs the .echo
// command. Flags are only recognized before the first token. The check and
// config subcommands inspect a dictionary file and the configuration.
package cmd
