/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package driver

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"nvdriver/fault"
)

const driverResultMarker = "driverResult"

// FindDriverLink returns the href of the first anchor, in document order,
// whose href contains "driverResult".
func FindDriverLink(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fault.New(fault.KindParse, "parse driver page", err)
	}
	if href, ok := firstDriverAnchor(doc); ok {
		return href, nil
	}
	return "", fault.Newf(fault.KindNoMatch, "find driver link", "could not find the latest driver link")
}

func firstDriverAnchor(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		if href, ok := attr(n, "href"); ok && strings.Contains(href, driverResultMarker) {
			return href, true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if href, ok := firstDriverAnchor(c); ok {
			return href, true
		}
	}
	return "", false
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
