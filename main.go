// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/invowk/wca/cmd/wca"

func main() {
	cmd.Execute()
}
