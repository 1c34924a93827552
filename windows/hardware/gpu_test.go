//go:build windows

/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChassisCodes(t *testing.T) {
	tests := []struct {
		name     string
		raw      []int32
		expected []uint16
	}{
		{name: "nil", raw: nil, expected: []uint16{}},
		{name: "desktop", raw: []int32{3}, expected: []uint16{3}},
		{name: "notebook", raw: []int32{10}, expected: []uint16{10}},
		{name: "several", raw: []int32{3, 9, 14}, expected: []uint16{3, 9, 14}},
		{name: "upper bound", raw: []int32{65535}, expected: []uint16{65535}},
		{name: "out of range", raw: []int32{-1, 65536, 8}, expected: []uint16{8}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, chassisCodes(test.raw))
		})
	}
}
