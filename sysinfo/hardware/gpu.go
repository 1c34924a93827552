/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package hardware

import (
	"strings"
)

const nvidiaMarker = "NVIDIA"

// VideoController is one raw record of the OS display adapter inventory.
type VideoController struct {
	Caption, DriverVersion string
}

type GraphicsCard struct {
	name, driverVersion string
}

func (g GraphicsCard) Name() string {
	return g.name
}

func (g GraphicsCard) DriverVersion() string {
	return g.driverVersion
}

func NewGraphicsCard(name, driverVersion string) GraphicsCard {
	return GraphicsCard{
		name:          strings.TrimSpace(name),
		driverVersion: strings.TrimSpace(driverVersion),
	}
}

// NVIDIACards keeps the controllers whose caption mentions NVIDIA, in
// inventory order. The match is case-sensitive.
func NVIDIACards(controllers []VideoController) []GraphicsCard {
	gpus := make([]GraphicsCard, 0)
	for _, v := range controllers {
		if !strings.Contains(v.Caption, nvidiaMarker) {
			continue
		}
		gpus = append(gpus, NewGraphicsCard(v.Caption, v.DriverVersion))
	}
	return gpus
}
