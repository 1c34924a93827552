/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package driver

import (
	"net/url"
)

const DefaultEndpoint = "https://www.nvidia.com/Download/processFind.aspx"

// Query holds the lookup parameters understood by the vendor's processFind page.
type Query struct {
	ProductSeriesID string
	ProductFamilyID string
	OSID            string
	LanguageID      string
	WHQL            string
	Locale          string
	CTK             string
	QNFSLB          string
	DTCID           string
}

// DefaultQuery selects a single product family on 64-bit Windows 10,
// independent of the detected card.
func DefaultQuery() Query {
	return Query{
		ProductSeriesID: "123",
		ProductFamilyID: "939",
		OSID:            "57",
		LanguageID:      "1",
		WHQL:            "",
		Locale:          "fr-eu",
		CTK:             "0",
		QNFSLB:          "00",
		DTCID:           "1",
	}
}

func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("psid", q.ProductSeriesID)
	v.Set("pfid", q.ProductFamilyID)
	v.Set("osid", q.OSID)
	v.Set("lid", q.LanguageID)
	v.Set("whql", q.WHQL)
	v.Set("lang", q.Locale)
	v.Set("ctk", q.CTK)
	v.Set("qnfslb", q.QNFSLB)
	v.Set("dtcid", q.DTCID)
	return v
}
