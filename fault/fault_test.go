/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	base := errors.New("connection reset")
	err := fmt.Errorf("fetch: %w", New(KindNetwork, "driver.fetch", base))

	assert.Equal(t, KindNetwork, KindOf(err))
	assert.True(t, Is(err, KindNetwork))
	assert.False(t, Is(err, KindParse))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, KindUnknown, KindOf(base))
	assert.False(t, Is(nil, KindUnknown))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "driver.find: no_match", New(KindNoMatch, "driver.find", nil).Error())
	assert.Equal(t, "wmi: boom", Newf(KindHardwareQuery, "wmi", "boom").Error())
	assert.Equal(t, "unknown", Kind(42).String())
}
