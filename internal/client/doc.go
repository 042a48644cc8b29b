// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive marketplace client runtime.
//
// It opens the local wallet keystore, connects the contract node transport,
// builds the client services and runs the terminal UI until the user quits.
package client
