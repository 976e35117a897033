// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/NachoPal/polkadot-bulletin-chain/background"
)

type ticker struct {
	ticks   uint64
	stopped bool
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	delay := args.(time.Duration)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(delay):
			atomic.AddUint64(&state.ticks, 1)
		}
	}
	state.stopped = true
}

func TestStartStop(t *testing.T) {
	workers := []*ticker{{}, {}, {}}

	processes := background.Processes{}
	for _, w := range workers {
		processes = append(processes, w)
	}

	p := background.Start(processes, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	for i, w := range workers {
		assert.True(t, w.stopped, "worker: %d did not stop", i)
		assert.NotEqual(t, uint64(0), atomic.LoadUint64(&w.ticks), "worker: %d never ran", i)
	}
}

func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop()
}

func TestStartNothing(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}
