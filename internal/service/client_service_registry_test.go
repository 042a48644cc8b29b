package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/artisan-market/internal/app"
	"github.com/MKhiriev/artisan-market/internal/crypto"
	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/internal/mock"
	"github.com/MKhiriev/artisan-market/internal/wallet"
	"github.com/MKhiriev/artisan-market/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testOwner = "0xAbC0000000000000000000000000000000000001"

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func newTestRegistrySvc(t *testing.T, ctrl *gomock.Controller) (
	*clientRegistryService,
	*mock.MockContractReader,
	*mock.MockWalletSession,
	*StatusTracker,
) {
	t.Helper()
	reader := mock.NewMockContractReader(ctrl)
	session := mock.NewMockWalletSession(ctrl)
	status := NewStatusTracker()

	svc := NewClientRegistryService(
		reader,
		session,
		crypto.NewFHEEncoder(),
		fixedID("1718000000000-abc1234"),
		status,
		logger.Nop(),
	).(*clientRegistryService)

	return svc, reader, session, status
}

func recordJSON(t *testing.T, name, category, location string) []byte {
	t.Helper()
	raw, err := json.Marshal(models.ArtisanPayload{
		Name:     name,
		Category: category,
		Location: location,
		Rating:   "FHE-NQ==",
		Style:    "FHE-Im1pbmltYWwi",
		Owner:    testOwner,
	})
	require.NoError(t, err)
	return raw
}

// ── LoadAll ──────────────────────────────────────────────────────────────────

func TestClientRegistryService_LoadAll_ReturnsRecordsInIndexOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, reader, _, _ := newTestRegistrySvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		reader.EXPECT().IsAvailable(ctx).Return(true, nil),
		reader.EXPECT().GetData(ctx, IndexKey).Return([]byte(`["b","a"]`), nil),
		reader.EXPECT().GetData(ctx, "artisan_b").Return(recordJSON(t, "Bea", models.CategoryJewelry, "Lyon"), nil),
		reader.EXPECT().GetData(ctx, "artisan_a").Return(recordJSON(t, "Ann", models.CategoryPottery, "Kyoto"), nil),
	)

	artisans := svc.LoadAll(ctx)

	require.Len(t, artisans, 2)
	assert.Equal(t, "b", artisans[0].ID)
	assert.Equal(t, "Bea", artisans[0].Name)
	assert.Equal(t, "a", artisans[1].ID)
	assert.Equal(t, models.CategoryPottery, artisans[1].Category)
	assert.Equal(t, models.CipheredBlob("FHE-NQ=="), artisans[1].EncryptedRating)
	assert.Equal(t, testOwner, artisans[1].Owner)
}

func TestClientRegistryService_LoadAll_SkipsMalformedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, reader, _, _ := newTestRegistrySvc(t, ctrl)
	ctx := context.Background()

	reader.EXPECT().IsAvailable(ctx).Return(true, nil)
	reader.EXPECT().GetData(ctx, IndexKey).Return([]byte(`["1","2","3"]`), nil)
	reader.EXPECT().GetData(ctx, "artisan_1").Return(recordJSON(t, "One", models.CategoryTextile, ""), nil)
	reader.EXPECT().GetData(ctx, "artisan_2").Return([]byte(`{"name":`), nil)
	reader.EXPECT().GetData(ctx, "artisan_3").Return(recordJSON(t, "Three", models.CategoryTextile, ""), nil)

	artisans := svc.LoadAll(ctx)

	require.Len(t, artisans, 2)
	assert.Equal(t, "1", artisans[0].ID)
	assert.Equal(t, "3", artisans[1].ID)
}

func TestClientRegistryService_LoadAll_SkipsEmptyAndFailingRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, reader, _, _ := newTestRegistrySvc(t, ctrl)
	ctx := context.Background()

	reader.EXPECT().IsAvailable(ctx).Return(true, nil)
	reader.EXPECT().GetData(ctx, IndexKey).Return([]byte(`["x","y","z"]`), nil)
	reader.EXPECT().GetData(ctx, "artisan_x").Return(nil, nil)
	reader.EXPECT().GetData(ctx, "artisan_y").Return(nil, errors.New("connection reset"))
	reader.EXPECT().GetData(ctx, "artisan_z").Return(recordJSON(t, "Zed", models.CategoryWoodwork, "Oslo"), nil)

	artisans := svc.LoadAll(ctx)

	require.Len(t, artisans, 1)
	assert.Equal(t, "z", artisans[0].ID)
}

func TestClientRegistryService_LoadAll_EmptyOrBrokenIndex(t *testing.T) {
	tests := []struct {
		name  string
		index []byte
	}{
		{name: "absent", index: nil},
		{name: "empty array", index: []byte(`[]`)},
		{name: "not json", index: []byte(`artisan_1,artisan_2`)},
		{name: "wrong shape", index: []byte(`{"ids":["1"]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, reader, _, _ := newTestRegistrySvc(t, ctrl)
			ctx := context.Background()

			reader.EXPECT().IsAvailable(ctx).Return(true, nil)
			reader.EXPECT().GetData(ctx, IndexKey).Return(tt.index, nil)

			artisans := svc.LoadAll(ctx)

			assert.NotNil(t, artisans)
			assert.Empty(t, artisans)
		})
	}
}

func TestClientRegistryService_LoadAll_UnavailableContract(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		err       error
	}{
		{name: "reports unavailable", available: false},
		{name: "check fails", err: errors.New("dial tcp: refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, reader, _, _ := newTestRegistrySvc(t, ctrl)
			ctx := context.Background()

			reader.EXPECT().IsAvailable(ctx).Return(tt.available, tt.err)

			artisans := svc.LoadAll(ctx)

			assert.Empty(t, artisans)
		})
	}
}

func TestClientRegistryService_LoadAll_IndexReadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, reader, _, _ := newTestRegistrySvc(t, ctrl)
	ctx := context.Background()

	reader.EXPECT().IsAvailable(ctx).Return(true, nil)
	reader.EXPECT().GetData(ctx, IndexKey).Return(nil, errors.New("timeout"))

	assert.Empty(t, svc.LoadAll(ctx))
}

// ── AddArtisan ───────────────────────────────────────────────────────────────

func TestClientRegistryService_AddArtisan_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session, status := newTestRegistrySvc(t, ctrl)
	signer := mock.NewMockContractSigner(ctrl)
	ctx := context.Background()

	var statuses []models.TransactionStatus
	status.Subscribe(func(s models.TransactionStatus) { statuses = append(statuses, s) })

	session.EXPECT().Signer().Return(signer)
	session.EXPECT().Account().Return(testOwner)

	gomock.InOrder(
		signer.EXPECT().SetData(ctx, "artisan_1718000000000-abc1234", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, value []byte) (models.Transaction, error) {
				var payload models.ArtisanPayload
				require.NoError(t, json.Unmarshal(value, &payload))
				assert.Equal(t, "Hana", payload.Name)
				assert.Equal(t, models.CategoryPottery, payload.Category)
				assert.Equal(t, "Kyoto", payload.Location)
				assert.Equal(t, models.CipheredBlob("FHE-NQ=="), payload.Rating)
				assert.Equal(t, models.CipheredBlob("FHE-IkhhbmQtdGhyb3duIHN0b25ld2FyZSI="), payload.Style)
				assert.Equal(t, testOwner, payload.Owner)
				assert.NotContains(t, string(value), `"id"`)
				return models.Transaction{Hash: "0x01"}, nil
			},
		),
		signer.EXPECT().GetData(ctx, IndexKey).Return([]byte(`["1700000000000-zzzzzzz"]`), nil),
		signer.EXPECT().SetData(ctx, IndexKey, []byte(`["1700000000000-zzzzzzz","1718000000000-abc1234"]`)).
			Return(models.Transaction{Hash: "0x02"}, nil),
	)

	artisan, err := svc.AddArtisan(ctx, models.ArtisanInput{
		Name:     "Hana",
		Category: models.CategoryPottery,
		Location: "Kyoto",
		Style:    "Hand-thrown stoneware",
	})

	require.NoError(t, err)
	assert.Equal(t, "1718000000000-abc1234", artisan.ID)
	assert.Equal(t, testOwner, artisan.Owner)

	require.Len(t, statuses, 2)
	assert.Equal(t, models.TxPending, statuses[0].Status)
	assert.Equal(t, app.UIEncrypting, statuses[0].Message)
	assert.Equal(t, models.TxSuccess, statuses[1].Status)
	assert.Equal(t, app.UIArtisanAdded, statuses[1].Message)
	assert.True(t, status.Current().Visible)
}

func TestClientRegistryService_AddArtisan_MalformedIndexStartsFresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session, _ := newTestRegistrySvc(t, ctrl)
	signer := mock.NewMockContractSigner(ctrl)
	ctx := context.Background()

	session.EXPECT().Signer().Return(signer)
	session.EXPECT().Account().Return(testOwner)
	signer.EXPECT().SetData(ctx, "artisan_1718000000000-abc1234", gomock.Any()).Return(models.Transaction{}, nil)
	signer.EXPECT().GetData(ctx, IndexKey).Return([]byte(`not-json`), nil)
	signer.EXPECT().SetData(ctx, IndexKey, []byte(`["1718000000000-abc1234"]`)).Return(models.Transaction{}, nil)

	_, err := svc.AddArtisan(ctx, models.ArtisanInput{Name: "A", Category: models.CategoryTextile, Style: "s"})
	require.NoError(t, err)
}

func TestClientRegistryService_AddArtisan_WalletNotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session, status := newTestRegistrySvc(t, ctrl)

	session.EXPECT().Signer().Return(nil)

	_, err := svc.AddArtisan(context.Background(), models.ArtisanInput{Name: "A", Category: "pottery", Style: "s"})

	require.ErrorIs(t, err, ErrWalletNotConnected)
	assert.Equal(t, models.HiddenStatus, status.Current())
}

func TestClientRegistryService_AddArtisan_RequiredFieldsMissing(t *testing.T) {
	inputs := []models.ArtisanInput{
		{Category: "pottery", Style: "s"},
		{Name: "A", Style: "s"},
		{Name: "A", Category: "pottery", Location: "Rome"},
	}

	for _, input := range inputs {
		ctrl := gomock.NewController(t)
		svc, _, session, status := newTestRegistrySvc(t, ctrl)
		session.EXPECT().Signer().Return(mock.NewMockContractSigner(ctrl))

		_, err := svc.AddArtisan(context.Background(), input)

		require.ErrorIs(t, err, ErrRequiredFieldsMissing)
		assert.False(t, status.Current().Visible)
	}
}

func TestClientRegistryService_AddArtisan_UserRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session, status := newTestRegistrySvc(t, ctrl)
	signer := mock.NewMockContractSigner(ctrl)
	ctx := context.Background()

	session.EXPECT().Signer().Return(signer)
	session.EXPECT().Account().Return(testOwner)
	signer.EXPECT().SetData(ctx, gomock.Any(), gomock.Any()).
		Return(models.Transaction{}, wallet.ErrUserRejected)

	_, err := svc.AddArtisan(ctx, models.ArtisanInput{Name: "A", Category: "pottery", Style: "s"})

	require.ErrorIs(t, err, wallet.ErrUserRejected)
	current := status.Current()
	assert.Equal(t, models.TxError, current.Status)
	assert.Equal(t, app.UITxRejected, current.Message)
}

func TestClientRegistryService_AddArtisan_IndexWriteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session, status := newTestRegistrySvc(t, ctrl)
	signer := mock.NewMockContractSigner(ctrl)
	ctx := context.Background()
	writeErr := errors.New("service unavailable: storage down")

	session.EXPECT().Signer().Return(signer)
	session.EXPECT().Account().Return(testOwner)
	signer.EXPECT().SetData(ctx, "artisan_1718000000000-abc1234", gomock.Any()).Return(models.Transaction{}, nil)
	signer.EXPECT().GetData(ctx, IndexKey).Return(nil, nil)
	signer.EXPECT().SetData(ctx, IndexKey, gomock.Any()).Return(models.Transaction{}, writeErr)

	_, err := svc.AddArtisan(ctx, models.ArtisanInput{Name: "A", Category: "pottery", Style: "s"})

	require.ErrorIs(t, err, writeErr)
	assert.Equal(t, app.UISubmissionFailed+writeErr.Error(), status.Current().Message)
}

func TestClientRegistryService_AddArtisan_ErrorStatusClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session, status := newTestRegistrySvc(t, ctrl)
	signer := mock.NewMockContractSigner(ctrl)

	var scheduled time.Duration
	var fire func()
	status.afterFunc = func(d time.Duration, f func()) *time.Timer {
		scheduled, fire = d, f
		return time.NewTimer(time.Hour)
	}

	session.EXPECT().Signer().Return(signer)
	session.EXPECT().Account().Return(testOwner)
	signer.EXPECT().SetData(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Transaction{}, errors.New("boom"))

	_, err := svc.AddArtisan(context.Background(), models.ArtisanInput{Name: "A", Category: "pottery", Style: "s"})
	require.Error(t, err)

	assert.Equal(t, ErrorStatusTTL, scheduled)
	require.NotNil(t, fire)
	fire()
	assert.Equal(t, models.HiddenStatus, status.Current())
}

func TestSubmissionErrorMessage(t *testing.T) {
	assert.Equal(t, app.UITxRejected, submissionErrorMessage(errors.New("forbidden: user rejected transaction")))
	assert.Equal(t, "Submission failed: boom", submissionErrorMessage(errors.New("boom")))
}
