/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package hardware

import (
	"go.uber.org/zap"

	"nvdriver/fault"
)

// Source is the OS collaborator that enumerates display adapters and
// system enclosures.
type Source interface {
	VideoControllers() ([]VideoController, error)
	Enclosures() ([]Enclosure, error)
}

type Inspector struct {
	source Source
}

func NewInspector(source Source) *Inspector {
	return &Inspector{source: source}
}

// GraphicsCards returns the NVIDIA adapters of the host. A failed query
// yields no cards and a fault.KindHardwareQuery error.
func (i *Inspector) GraphicsCards() ([]GraphicsCard, error) {
	q, err := i.source.VideoControllers()
	if err != nil {
		return nil, fault.New(fault.KindHardwareQuery, "detect graphics cards", err)
	}
	return NVIDIACards(q), nil
}

// IsNotebook reports whether any system enclosure declares a portable
// chassis. It answers false whenever the enclosures cannot be read.
func (i *Inspector) IsNotebook() (bool, error) {
	enclosures, err := i.source.Enclosures()
	if err != nil {
		return false, fault.New(fault.KindHardwareQuery, "detect system enclosure", err)
	}
	for _, e := range enclosures {
		if len(e.ChassisTypes) == 0 {
			continue
		}
		zap.S().Infow("detected chassis types", "chassis_types", e.ChassisTypes)
		if IsPortable(e.ChassisTypes) {
			return true, nil
		}
	}
	return false, nil
}
