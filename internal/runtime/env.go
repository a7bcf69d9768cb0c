// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"strconv"
	"strings"

	"github.com/invowk/wca/pkg/value"
)

// buildRoutineEnv layers the call variables over the host environment:
//  1. host environment, minus per-call WCA_* variables
//  2. WCA_PHRASE, WCA_SUBJECT_COUNT, WCA_SUBJECT_<i>
//  3. WCA_PROP_<NAME>, in property order
func buildRoutineEnv(host []string, phrase string, args value.Args, props value.Props) map[string]string {
	env := make(map[string]string, len(host)+len(args)+props.Len()+2)
	for _, entry := range FilterWCAEnvVars(host) {
		name, val, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = val
	}

	env[EnvPhrase] = phrase
	env[EnvSubjectCount] = strconv.Itoa(len(args))
	for i, s := range args.Strings() {
		env[EnvSubjectPrefix+strconv.Itoa(i)] = s
	}
	for _, name := range props.Keys() {
		v, _ := props.Get(name)
		env[PropEnvName(name)] = v.String()
	}
	return env
}

// PropEnvName returns the variable holding property name, e.g.
// "dry-run" becomes WCA_PROP_DRY_RUN.
func PropEnvName(name string) string {
	return EnvPropPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
