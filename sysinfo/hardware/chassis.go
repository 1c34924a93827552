/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package hardware

import (
	set "github.com/deckarep/golang-set/v2"
)

// DMTF SMBIOS system enclosure types that describe portable machines.
const (
	ChassisDesktop     uint16 = 3
	ChassisPortable    uint16 = 8
	ChassisLaptop      uint16 = 9
	ChassisNotebook    uint16 = 10
	ChassisSubNotebook uint16 = 14
)

var portableChassis = set.NewThreadUnsafeSet(
	ChassisPortable,
	ChassisLaptop,
	ChassisNotebook,
	ChassisSubNotebook,
)

// Enclosure is the chassis description reported by one system enclosure.
type Enclosure struct {
	ChassisTypes []uint16
}

func IsPortableChassis(code uint16) bool {
	return portableChassis.Contains(code)
}

// IsPortable reports whether any of the given chassis codes is a notebook class code.
func IsPortable(codes []uint16) bool {
	for _, c := range codes {
		if IsPortableChassis(c) {
			return true
		}
	}
	return false
}
