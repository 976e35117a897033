// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/NachoPal/polkadot-bulletin-chain/background"
	"github.com/NachoPal/polkadot-bulletin-chain/bulletin"
	"github.com/NachoPal/polkadot-bulletin-chain/datastore"
	"github.com/NachoPal/polkadot-bulletin-chain/producer"
	"github.com/NachoPal/polkadot-bulletin-chain/prover"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc"
	"github.com/NachoPal/polkadot-bulletin-chain/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	log.Infof("database: %q", theConfiguration.Database)
	log.Infof("authorizer: %s", theConfiguration.Bulletin.Authorizer)
	log.Debugf("%s = %#v", "Bulletin", theConfiguration.Bulletin)
	log.Debugf("%s = %#v", "Producer", theConfiguration.Producer)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	data := datastore.New(logger.New("datastore"), storage.Pool.Blobs, storage.Pool.BlockBlobs)

	log.Info("initialise bulletin")
	engine, err := bulletin.New(
		logger.New("bulletin"),
		theConfiguration.Bulletin,
		bulletin.Handles{
			Transactions:   storage.Pool.Transactions,
			ChunkCount:     storage.Pool.ChunkCount,
			Authorizations: storage.Pool.Authorizations,
			Expiries:       storage.Pool.Expiries,
		},
		data,
	)
	if nil != err {
		log.Criticalf("bulletin initialise error: %s", err)
		exitwithstatus.Message("bulletin initialise error: %s", err)
	}

	log.Info("initialise producer")
	blockProducer, err := producer.New(
		logger.New("producer"),
		theConfiguration.Producer,
		engine,
		prover.New(logger.New("prover"), engine, data),
		storage.Pool.Headers,
		storage.NewDBTransaction,
	)
	if nil != err {
		log.Criticalf("producer initialise error: %s", err)
		exitwithstatus.Message("producer initialise error: %s", err)
	}

	processes := background.Start(background.Processes{blockProducer}, nil)
	defer processes.Stop()

	// start up the rpc background processes
	err = loadCertificates(theConfiguration)
	if nil != err {
		log.Criticalf("rpc certificate error: %s", err)
		exitwithstatus.Message("rpc certificate error: %s", err)
	}
	err = rpc.Initialise(
		&theConfiguration.ClientRPC,
		&theConfiguration.HttpsRPC,
		version,
		blockProducer,
		theConfiguration.Bulletin.MaxTransactionSize,
	)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
