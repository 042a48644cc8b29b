// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/artisan-market/models"
)

// FHEPrefix tags every confidential field value.
const FHEPrefix = "FHE-"

// MarshalJSON encodes v the way JSON.stringify does: no HTML escaping of
// '&', '<' and '>' and no trailing newline. Registry records and FHE
// payloads must use it so their bytes match what browsers write.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

type fheEncoder struct{}

// NewFHEEncoder returns the [FHEEncoder] used for artisan style and rating.
func NewFHEEncoder() FHEEncoder {
	return fheEncoder{}
}

func (fheEncoder) EncryptJSON(v any) (models.CipheredBlob, error) {
	plaintext, err := MarshalJSON(v)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}

	return models.CipheredBlob(FHEPrefix + base64.StdEncoding.EncodeToString(plaintext)), nil
}

func (fheEncoder) EncryptRaw(s string) models.CipheredBlob {
	return models.CipheredBlob(FHEPrefix + base64.StdEncoding.EncodeToString([]byte(s)))
}

func (fheEncoder) Decrypt(blob models.CipheredBlob) ([]byte, error) {
	encoded, ok := strings.CutPrefix(string(blob), FHEPrefix)
	if !ok {
		return nil, ErrNotFHEBlob
	}

	plaintext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	return plaintext, nil
}

func (e fheEncoder) DecryptJSON(blob models.CipheredBlob, target any) error {
	plaintext, err := e.Decrypt(blob)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}
