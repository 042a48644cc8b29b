// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/artisan-market/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectContractDataQuery(t *testing.T) {
	tests := []struct {
		name        string
		dialect     Dialect
		placeholder string
	}{
		{name: "postgres uses dollar placeholders", dialect: DialectPostgres, placeholder: "data_key = $1"},
		{name: "sqlite uses question placeholders", dialect: DialectSQLite, placeholder: "data_key = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectContractDataQuery(tt.dialect, "artisan_keys")
			require.NoError(t, err)

			assert.Equal(t, []any{"artisan_keys"}, args)
			assert.Contains(t, query, tt.placeholder)

			q := strings.ToLower(query)
			assert.Contains(t, q, "from contract_data")
			for _, c := range contractDataColumns {
				assert.Contains(t, q, c)
			}
		})
	}
}

func Test_buildUpsertContractDataQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	entry := models.DataEntry{
		Key:       "artisan_1",
		Value:     []byte(`{"name":"A"}`),
		UpdatedBy: "0xabc",
		TxHash:    "0xhash",
		Version:   3,
	}

	query, args, err := buildUpsertContractDataQuery(DialectPostgres, entry, now, 2)
	require.NoError(t, err)

	require.Len(t, args, 7)
	assert.Equal(t, "artisan_1", args[0])
	assert.Equal(t, []byte(`{"name":"A"}`), args[1])
	assert.Equal(t, int64(3), args[4])
	assert.Equal(t, now, args[5])
	assert.Equal(t, int64(2), args[6])

	assert.True(t, strings.HasPrefix(query, "INSERT INTO contract_data"))
	assert.Contains(t, query, "ON CONFLICT (data_key) DO UPDATE")
	assert.Contains(t, query, "WHERE contract_data.version = $7")
	assert.NotContains(t, query, "?")
}

func Test_buildUpsertContractDataQuery_SQLite(t *testing.T) {
	query, args, err := buildUpsertContractDataQuery(DialectSQLite, models.DataEntry{Key: "k"}, time.Now(), 0)
	require.NoError(t, err)

	assert.Len(t, args, 7)
	assert.Equal(t, 7, strings.Count(query, "?"))
	assert.NotContains(t, query, "$")
}
