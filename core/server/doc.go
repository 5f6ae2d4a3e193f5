// Package server holds the HTTP server configuration.
//
// The start command exposes the run history and integrity checks over HTTP.
// This package defines the listen address and the API key protecting it.
//
// # Usage
//
//	if err := cfg.Server.Validate(); err != nil {
//	    return err
//	}
//	app.Listen(cfg.Server.Address())
package server
