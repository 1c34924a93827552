//go:build windows

/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package internal

import (
	"golang.org/x/sys/windows"
)

var (
	VistaOrGreater     bool
	Windows10OrGreater bool
	BuildNumber        uint32
)

func isWindowsVersionOrGreater(currentMajor, currentMinor, major, minor uint32) bool {
	return currentMajor > major || (currentMajor == major && currentMinor >= minor)
}

func init() {
	// GetVersion lies to unmanifested binaries, RtlGetVersion does not
	ver := windows.RtlGetVersion()
	Windows10OrGreater = isWindowsVersionOrGreater(ver.MajorVersion, ver.MinorVersion, 10, 0)
	VistaOrGreater = isWindowsVersionOrGreater(ver.MajorVersion, ver.MinorVersion, 6, 0)
	BuildNumber = ver.BuildNumber
}
