//go:build windows

/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package hardware

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"nvdriver/sysinfo/hardware"
	"nvdriver/windows/internal"
)

// WmiSource reads the display adapters and enclosures through WMI.
type WmiSource struct{}

func NewWmiSource() WmiSource {
	zap.S().Debugw("windows host",
		"build", internal.BuildNumber,
		"windows10_or_greater", internal.Windows10OrGreater)
	return WmiSource{}
}

func (WmiSource) VideoControllers() ([]hardware.VideoController, error) {
	if !internal.VistaOrGreater {
		return nil, errors.New("wmi: gpu query requires vista or greater")
	}
	q, err := internal.QueryWmiGraphicsCards()
	if err != nil {
		return nil, err
	}
	controllers := make([]hardware.VideoController, 0, len(q))
	for _, v := range q {
		controllers = append(controllers, hardware.VideoController{
			Caption:       v.Caption,
			DriverVersion: v.DriverVersion,
		})
	}
	return controllers, nil
}

func (WmiSource) Enclosures() ([]hardware.Enclosure, error) {
	q, err := internal.QueryWmiSystemEnclosures()
	if err != nil {
		return nil, err
	}
	enclosures := make([]hardware.Enclosure, 0, len(q))
	for _, v := range q {
		enclosures = append(enclosures, hardware.Enclosure{ChassisTypes: chassisCodes(v.ChassisTypes)})
	}
	return enclosures, nil
}

// chassisCodes drops values outside the SMBIOS uint16 range.
func chassisCodes(raw []int32) []uint16 {
	codes := make([]uint16, 0, len(raw))
	for _, c := range raw {
		if c < 0 || c > math.MaxUint16 {
			continue
		}
		codes = append(codes, uint16(c))
	}
	return codes
}
