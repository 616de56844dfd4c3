/*
Copyright (c) 2026, the aza-pg authors. All rights reserved.
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/azadata/aza-pg/pkg/cli"

func main() {
	cli.Execute()
}
