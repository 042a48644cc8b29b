// Package server runs the contract node's transport servers.
//
// HTTP serves the REST API, gRPC serves the health protocol. Both are
// started together and stopped together when the run context ends or either
// of them fails.
package server
