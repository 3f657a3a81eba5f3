// Package http implements the HTTP transport of the bootstrap server.
//
// It wires the chi router, the handlers that serve the wallet init config,
// canister gateway URLs and build information, and the middleware chain
// applied to every request: panic recovery, trace ids, access logging and
// gzip compression. The init config route additionally negotiates the
// response locale from Accept-Language.
//
// Service errors are mapped to status codes in errors_mapper.go and written
// as plain-text bodies using the app.Msg* constants.
package http
