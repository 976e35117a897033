// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS key pairs for the RPC listener
package certificate

import (
	"crypto/tls"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Fingerprint - SHA3-256 of a DER encoded certificate
type Fingerprint [32]byte

// Get - load a PEM certificate and key into a TLS configuration and
// return the fingerprint of the leaf certificate
func Get(log *logger.L, name, certificate, key string) (*tls.Config, Fingerprint, error) {
	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s: failed to load keypair: %s", name, err)
		return nil, Fingerprint{}, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{keyPair},
		MinVersion:   tls.VersionTLS12,
	}

	return tlsConfiguration, Compute(keyPair.Certificate[0]), nil
}

// Compute - fingerprint of a DER certificate
//
// openssl x509 -outform DER -in bulletind-rpc.crt | sha3sum -a 256
func Compute(der []byte) Fingerprint {
	return sha3.Sum256(der)
}
