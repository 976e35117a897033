// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package producer

import (
	"time"
)

// Run - produce a block on every tick until shutdown
func (p *Producer) Run(args interface{}, shutdown <-chan struct{}) {

	log := p.log

	ticker := time.NewTicker(time.Duration(p.config.BlockInterval) * time.Second)
	defer ticker.Stop()

	log.Info("starting…")
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case now := <-ticker.C:
			_, err := p.ProduceBlock(now)
			if nil != err {
				log.Errorf("produce block error: %s", err)
			}
		}
	}
	log.Info("stopped")
}
