/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package sysinfo

import (
	"fmt"
	"runtime"

	"nvdriver/sysinfo/hardware"
)

// Inspector returns a hardware inspector backed by the platform source.
// On unsupported platforms every query fails.
func Inspector() *hardware.Inspector {
	src, err := hardwareSource()
	if err != nil {
		return hardware.NewInspector(unsupported{err: err})
	}
	return hardware.NewInspector(src)
}

type unsupported struct {
	err error
}

func (u unsupported) VideoControllers() ([]hardware.VideoController, error) {
	return nil, u.err
}

func (u unsupported) Enclosures() ([]hardware.Enclosure, error) {
	return nil, u.err
}

func errUnsupported() error {
	return fmt.Errorf("unsupported os %q", runtime.GOOS)
}
