package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/artisan-market/models"
)

func TestEncryptJSON_StyleString(t *testing.T) {
	blob, err := NewFHEEncoder().EncryptJSON("Hand-thrown stoneware")

	require.NoError(t, err)
	// base64 of "\"Hand-thrown stoneware\""
	assert.Equal(t, models.CipheredBlob("FHE-IkhhbmQtdGhyb3duIHN0b25ld2FyZSI="), blob)
}

func TestEncryptJSON_KeepsHTMLCharacters(t *testing.T) {
	blob, err := NewFHEEncoder().EncryptJSON("Wood & <Clay>")

	require.NoError(t, err)
	// base64 of "\"Wood & <Clay>\"", as JSON.stringify + btoa produce it
	assert.Equal(t, models.CipheredBlob("FHE-Ildvb2QgJiA8Q2xheT4i"), blob)
}

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "html characters", in: "a&b<c>", want: `"a&b<c>"`},
		{name: "index", in: []string{"1-a", "2-b"}, want: `["1-a","2-b"]`},
		{name: "empty index", in: []string{}, want: `[]`},
		{
			name: "record",
			in:   models.ArtisanPayload{Name: "R&D <Studio>", Category: "pottery"},
			want: `"name":"R&D <Studio>"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalJSON(tt.in)
			require.NoError(t, err)
			assert.NotContains(t, string(got), "\n")
			assert.Contains(t, string(got), tt.want)
		})
	}
}

func TestMarshalJSON_Unsupported(t *testing.T) {
	_, err := MarshalJSON(make(chan int))
	assert.Error(t, err)
}

func TestEncryptRaw_Rating(t *testing.T) {
	assert.Equal(t, models.CipheredBlob("FHE-NQ=="), NewFHEEncoder().EncryptRaw("5"))
}

func TestDecrypt(t *testing.T) {
	enc := NewFHEEncoder()

	tests := []struct {
		name    string
		blob    models.CipheredBlob
		want    string
		wantErr error
	}{
		{name: "raw rating", blob: "FHE-NQ==", want: "5"},
		{name: "json string", blob: "FHE-ImJsdWUi", want: `"blue"`},
		{name: "missing prefix", blob: "NQ==", wantErr: ErrNotFHEBlob},
		{name: "empty", blob: "", wantErr: ErrNotFHEBlob},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := enc.Decrypt(tt.blob)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestDecrypt_BadBase64(t *testing.T) {
	_, err := NewFHEEncoder().Decrypt("FHE-%%%")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode base64")
}

func TestDecryptJSON_RoundTripUnicode(t *testing.T) {
	enc := NewFHEEncoder()
	style := "Raku glaze, 釉薬"

	blob, err := enc.EncryptJSON(style)
	require.NoError(t, err)

	var got string
	require.NoError(t, enc.DecryptJSON(blob, &got))
	assert.Equal(t, style, got)
}

func TestDecryptJSON_NotJSON(t *testing.T) {
	var got string
	err := NewFHEEncoder().DecryptJSON("FHE-NQ==", &got)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal data")
}
