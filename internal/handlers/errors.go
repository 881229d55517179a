package handlers

import "errors"

var (
	// common error code
	ErrInvalidForm  = errors.New("INVALID_FORM")
	ErrMissingParam = errors.New("MISSING_PARAM")
	ErrTemplate     = errors.New("TEMPLATE_ERROR")
	ErrCSRF         = errors.New("CSRF_FAILED")

	// backend error code
	ErrBackend = errors.New("BACKEND_UNAVAILABLE")

	// fragment error code
	ErrUnknownContainer = errors.New("UNKNOWN_CONTAINER")

	// nft error code
	ErrNFTNotFound = errors.New("NFT_NOT_FOUND")
)
