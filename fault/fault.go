// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised          = ExistsError("already initialised")
	ArithmeticOverflow          = InvalidError("arithmetic overflow")
	BadContext                  = ProcessError("call outside of block execution")
	BadOrigin                   = InvalidError("bad origin")
	CannotDecodeAccount         = InvalidError("cannot decode account")
	CannotDecodeSeed            = InvalidError("cannot decode seed")
	CertificateFileExists       = ExistsError("certificate file already exists")
	ChecksumMismatch            = ProcessError("checksum mismatch")
	DataNotHeld                 = NotFoundError("data is not held by this node")
	DatabaseIsNotSet            = ProcessError("database is not set")
	DoubleCheck                 = ProcessError("double proof check in the block")
	DuplicateRequest            = ExistsError("duplicate request")
	EmptyTransaction            = InvalidError("attempting to store empty transaction")
	InvalidBlockHeaderSize      = LengthError("invalid block header size")
	InvalidBlockHeaderTimestamp = InvalidError("invalid block header timestamp")
	InvalidBlockHeaderVersion   = InvalidError("invalid block header version")
	InvalidChunkIndex           = InvalidError("chunk index out of range")
	InvalidCount                = InvalidError("invalid count")
	InvalidDigest               = LengthError("invalid digest")
	InvalidIPAddress            = InvalidError("invalid IP address")
	InvalidKeyLength            = InvalidError("invalid key length")
	InvalidKeyType              = InvalidError("invalid key type")
	InvalidPeriod               = InvalidError("period must not be zero")
	InvalidPortNumber           = InvalidError("invalid port number")
	InvalidProof                = InvalidError("proof failed verification")
	InvalidReceiptExpiry        = InvalidError("receipt expiry shorter than replay window")
	InvalidScope                = InvalidError("invalid authorization scope")
	InvalidSeedHeader           = InvalidError("invalid seed header")
	InvalidSeedLength           = InvalidError("invalid seed length")
	InvalidSignature            = InvalidError("invalid signature")
	InvalidStructPointer        = InvalidError("invalid struct pointer")
	InvalidTimestamp            = InvalidError("request timestamp outside of allowed window")
	KeyFileExists               = ExistsError("key file already exists")
	LimitMustNotBeZero          = InvalidError("limit must not be zero")
	MissingAuthorizer           = InvalidError("authorizer account is required")
	MissingParameters           = InvalidError("missing parameters")
	MissingPrivateKey           = InvalidError("private key is required")
	MissingStateData            = NotFoundError("unable to verify proof because state data is missing")
	NotAuthorized               = InvalidError("not authorized to store the given data")
	NotInitialised              = NotFoundError("not initialised")
	NotPublicKey                = RecordError("not a public key")
	NotTransactionPack          = RecordError("not a transaction pack")
	ProofNotChecked             = ProcessError("storage proof must be checked once in the block")
	QueueFull                   = ProcessError("call queue is full")
	RateLimiting                = ProcessError("rate limiting")
	RecordTruncated             = LengthError("record is truncated")
	RenewedNotFound             = NotFoundError("renewed extrinsic is not found")
	TooManyAuthorizations       = ProcessError("cannot add any new authorizations")
	TooManyTransactions         = ProcessError("too many transactions in the block")
	TransactionAlreadyInUse     = ProcessError("database transaction already in use")
	TransactionNotFound         = NotFoundError("transaction not found")
	TransactionTooLarge         = LengthError("transaction is too large")
	UnexpectedProof             = ProcessError("proof was not expected in this block")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
