//go:build windows

/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package internal

import (
	"fmt"

	"github.com/yusufpapurcu/wmi"
)

const (
	VideoController = "Win32_VideoController"
	SystemEnclosure = "Win32_SystemEnclosure"
)

func queryClass[T any](class string) ([]T, error) {
	var res []T
	q := wmi.CreateQuery(&res, "", class)
	err := wmi.Query(q, &res)
	if err != nil {
		return nil, wrapErrors(class, err)
	}
	return res, nil
}

func wrapErrors(class string, err error) error {
	if err != nil {
		return fmt.Errorf("wmi: failed to execute query for class %q: %w", class, err)
	}
	return nil
}

type Win32VideoController struct {
	Caption, DriverVersion string
}

// ChassisTypes is uint16[] in CIM but arrives over automation as VT_I4.
type Win32SystemEnclosure struct {
	ChassisTypes []int32
}

func QueryWmiGraphicsCards() ([]Win32VideoController, error) {
	return queryClass[Win32VideoController](VideoController)
}

func QueryWmiSystemEnclosures() ([]Win32SystemEnclosure, error) {
	return queryClass[Win32SystemEnclosure](SystemEnclosure)
}
