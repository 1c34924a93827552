/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package util

import (
	"strings"
)

func Separator() string {
	return strings.Repeat("-", SeparatorWidth)
}
