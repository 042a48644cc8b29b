// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks marketplace input before it reaches storage.
//
// [ContractValidator] guards writes arriving at the contract node: key shape,
// JSON payloads for artisan records and the key index. [ArtisanValidator]
// checks the client's "add artisan" form before anything is encrypted or
// signed.
package validators

import "context"

// Validator checks v and returns the first rule it breaks. Optional field
// names narrow the check to those fields.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
