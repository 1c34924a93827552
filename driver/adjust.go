/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package driver

import (
	"regexp"
	"strconv"
	"strings"

	"nvdriver/fault"
)

const localeSuffix = "/en-us"

// a single trailing newline is tolerated, as hrefs are taken verbatim
var trailingIDRegex = regexp.MustCompile(`(\d+)/en-us\n?$`)

// AdjustForDesktop points a driver link at the desktop package, which the
// vendor numbers one below the notebook package. The trailing number is
// parsed and the first occurrence of "<n>/en-us" anywhere in the link is
// rewritten to "<n-1>/en-us". Links without a trailing "<digits>/en-us" are
// returned unchanged together with a fault.KindURLPattern error.
func AdjustForDesktop(link string) (string, error) {
	matches := trailingIDRegex.FindStringSubmatch(link)
	if matches == nil {
		return link, fault.Newf(fault.KindURLPattern, "adjust driver link", "unexpected url format %q", link)
	}
	id, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return link, fault.New(fault.KindURLPattern, "adjust driver link", err)
	}
	old := strconv.FormatInt(id, 10) + localeSuffix
	adjusted := strconv.FormatInt(id-1, 10) + localeSuffix
	return strings.Replace(link, old, adjusted, 1), nil
}
