/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package main

import "nvdriver/cmd"

func main() {
	cmd.Execute()
}
