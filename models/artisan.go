// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category values accepted for an artisan listing. CategoryAll is a filter
// value only and is never stored on a record.
const (
	CategoryAll       = "all"
	CategoryPottery   = "pottery"
	CategoryJewelry   = "jewelry"
	CategoryTextile   = "textile"
	CategoryWoodwork  = "woodwork"
	CategoryMetalwork = "metalwork"
)

// Categories lists the filter values in display order, starting with
// [CategoryAll].
var Categories = []string{
	CategoryAll,
	CategoryPottery,
	CategoryJewelry,
	CategoryTextile,
	CategoryWoodwork,
	CategoryMetalwork,
}

// ListingCategories lists the categories a new artisan can be created with.
var ListingCategories = Categories[1:]

// Artisan represents a single marketplace listing as held by the client.
//
// The record is reconstructed from contract storage: ID comes from the
// registry index, every other field from the JSON blob stored under the
// derived record key.
type Artisan struct {
	// ID is the client-generated identifier "<unix-millis>-<random suffix>".
	ID string `json:"id"`

	// Name is the display name of the artisan.
	Name string `json:"name"`

	// Category is one of the listing categories (e.g. "pottery").
	Category string `json:"category"`

	// Location is free text and may be empty.
	Location string `json:"location"`

	// EncryptedRating is the opaque "FHE-" wrapped rating blob.
	EncryptedRating CipheredBlob `json:"encryptedRating"`

	// EncryptedStyle is the opaque "FHE-" wrapped style blob.
	EncryptedStyle CipheredBlob `json:"encryptedStyle"`

	// Owner is the wallet address that submitted the listing.
	Owner string `json:"owner"`
}

// ArtisanPayload is the exact JSON shape persisted on the contract under
// "artisan_{id}". The identifier is not part of the payload.
type ArtisanPayload struct {
	Name     string       `json:"name"`
	Category string       `json:"category"`
	Location string       `json:"location"`
	Rating   CipheredBlob `json:"rating"`
	Style    CipheredBlob `json:"style"`
	Owner    string       `json:"owner"`
}

// ToArtisan attaches id to the payload and returns the client-side record.
func (p ArtisanPayload) ToArtisan(id string) Artisan {
	return Artisan{
		ID:              id,
		Name:            p.Name,
		Category:        p.Category,
		Location:        p.Location,
		EncryptedRating: p.Rating,
		EncryptedStyle:  p.Style,
		Owner:           p.Owner,
	}
}

// ArtisanInput carries the values typed into the "add artisan" form.
// Name, Category and Style are required; Location is optional.
type ArtisanInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Location string `json:"location"`
	Style    string `json:"style"`
}

// ArtisanFilter describes the list narrowing applied by the marketplace view.
type ArtisanFilter struct {
	// Search is matched case-insensitively against name or location.
	Search string

	// Category is matched exactly unless it equals [CategoryAll] or is empty.
	Category string
}

// CipheredBlob is an opaque, nominally encrypted value. The client never
// interprets it beyond the reversible "FHE-" wrapping.
type CipheredBlob string
