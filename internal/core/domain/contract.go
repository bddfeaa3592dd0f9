package domain

import "errors"

// Contract statuses. Contracts are stored embedded in the owning user's
// document (see ContractEntry); there is no top-level contract collection.
const (
	ContractActive  = "active"
	ContractExpired = "expired"
)

var ErrContractNotFound = errors.New("contract not found")
var ErrContractCorrupted = errors.New("contract file failed integrity check")
var ErrFileNotFound = errors.New("file not found")
