/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/mchmarny/semver/pkg/cli"

func main() {
	cli.Execute()
}
