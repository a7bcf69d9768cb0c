// SPDX-License-Identifier: MPL-2.0

// Package config loads the wca CLI configuration using Viper with CUE as the
// file format.
//
// The file is looked up at an explicit path, then <user config dir>/wca/config.cue
// (XDG_CONFIG_HOME on Linux), then ./config.cue. A missing file is not an
// error; defaults apply. Every file is validated against the embedded
// config_schema.cue before it is merged, and WCA_* environment variables
// override file values (e.g. WCA_UI_VERBOSE, WCA_LOG_LEVEL).
package config
