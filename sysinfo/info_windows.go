/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package sysinfo

import (
	"nvdriver/sysinfo/hardware"
	hardware2 "nvdriver/windows/hardware"
)

func hardwareSource() (hardware.Source, error) {
	return hardware2.NewWmiSource(), nil
}
