//go:build !windows

/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package sysinfo

import (
	"nvdriver/sysinfo/hardware"
)

func hardwareSource() (hardware.Source, error) {
	return nil, errUnsupported()
}
