package domain

import "errors"

// ErrNotFound is returned by ledger and service functions when the requested
// resource does not exist (e.g. no calculation has been submitted yet).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. non-positive passenger count or nights).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnknownLocation is returned when a trip or stay references a location
// that is not in the fixed location registry. The whole calculation is
// rejected — a missing city must never silently become a zero distance,
// because that would understate the reported emissions.
// Handlers should map this to HTTP 422.
var ErrUnknownLocation = errors.New("unknown location")

// ErrUnknownFactor is returned when a transport mode, travel class, hotel
// tier, or meal category has no entry in the emission-factor tables.
// The enumerations are closed sets, so hitting this from the HTTP surface
// means the input boundary let a bad key through.
// Handlers should map this to HTTP 422.
var ErrUnknownFactor = errors.New("unknown emission factor")
