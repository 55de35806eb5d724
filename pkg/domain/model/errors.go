package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for report ingestion
var (
	ErrMalformedReport     = goerr.New("malformed report")
	ErrUnsupportedFormat   = goerr.New("unsupported report format")
	ErrInvalidSourceConfig = goerr.New("invalid source configuration")
)
