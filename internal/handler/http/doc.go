// Package http is the REST transport of the contract node.
//
// Reads of contract slots and wallet login are public. Writes require a
// bearer token issued by POST /api/wallet/connect and are attributed to the
// wallet address carried in that token.
package http
