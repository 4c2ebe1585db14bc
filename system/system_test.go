// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscription(t *testing.T) {
	n := 0
	s := NewSubscription(func() { n++ })
	s.Unsubscribe()
	s.Unsubscribe()
	assert.Equal(t, 1, n)
}
