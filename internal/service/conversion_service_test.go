package service

import (
	"context"
	"testing"

	"confidential-points-exchange/internal/core/domain"
	"confidential-points-exchange/internal/core/ports"
	"confidential-points-exchange/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type conversionDeps struct {
	accountRepo *mocks.MockAccountRepository
	brandRepo   *mocks.MockBrandRepository
	rateRepo    *mocks.MockRateRepository
	eventRepo   *mocks.MockEventRepository
	transactor  *mocks.MockDBTransactor
	ctrl        *gomock.Controller
}

func newConversionDeps(t *testing.T) conversionDeps {
	ctrl := gomock.NewController(t)
	return conversionDeps{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		brandRepo:   mocks.NewMockBrandRepository(ctrl),
		rateRepo:    mocks.NewMockRateRepository(ctrl),
		eventRepo:   mocks.NewMockEventRepository(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		ctrl:        ctrl,
	}
}

func (d conversionDeps) service() *ConversionServiceImpl {
	return NewConversionService(d.accountRepo, d.brandRepo, d.rateRepo, d.eventRepo, plainEngine{}, d.transactor, zerolog.Nop())
}

func TestConvert_Success(t *testing.T) {
	d := newConversionDeps(t)
	defer d.ctrl.Finish()
	svc := d.service()

	ctx := context.Background()
	ownerID := uuid.New()
	tx := &mockTx{}

	balance, _ := plainEngine{}.Encode(100)
	rateCipher, _ := plainEngine{}.Encode(2)
	account := &domain.Account{OwnerID: ownerID, Balance: balance, Active: true}
	rate := &domain.ExchangeRate{
		Pair:       domain.BrandPair{From: "acme", To: "globex"},
		Rate:       rateCipher,
		RateMirror: 2,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByOwnerForUpdate(ctx, tx, ownerID).Return(account, nil)
	d.brandRepo.EXPECT().Exists(ctx, "acme").Return(true, nil)
	d.brandRepo.EXPECT().Exists(ctx, "globex").Return(true, nil)
	d.rateRepo.EXPECT().GetInTx(ctx, tx, rate.Pair).Return(rate, nil)
	d.accountRepo.EXPECT().UpdateBalance(ctx, tx, ownerID, gomock.Any()).Return(nil)
	d.eventRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)

	result, err := svc.Convert(ctx, ports.ConvertRequest{
		OwnerID:   ownerID,
		FromBrand: "acme",
		ToBrand:   "globex",
		Amount:    50,
	})
	require.NoError(t, err)

	// 100 - 50 + 50*2 = 150
	assert.Equal(t, int64(150), plainValue(t, result.Balance))
}

func TestConvert_AccountNotFound(t *testing.T) {
	d := newConversionDeps(t)
	defer d.ctrl.Finish()
	svc := d.service()

	ctx := context.Background()
	tx := &mockTx{}
	ownerID := uuid.New()

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByOwnerForUpdate(ctx, tx, ownerID).Return(nil, nil)

	_, err := svc.Convert(ctx, ports.ConvertRequest{OwnerID: ownerID, FromBrand: "acme", ToBrand: "globex", Amount: 10})
	assertAppError(t, err, "ACC_002")
}

func TestConvert_InactiveAccount(t *testing.T) {
	d := newConversionDeps(t)
	defer d.ctrl.Finish()
	svc := d.service()

	ctx := context.Background()
	tx := &mockTx{}
	ownerID := uuid.New()
	account := &domain.Account{OwnerID: ownerID, Balance: "100", Active: false}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByOwnerForUpdate(ctx, tx, ownerID).Return(account, nil)

	_, err := svc.Convert(ctx, ports.ConvertRequest{OwnerID: ownerID, FromBrand: "acme", ToBrand: "globex", Amount: 10})
	assertAppError(t, err, "ACC_003")
}

func TestConvert_UnknownBrand(t *testing.T) {
	d := newConversionDeps(t)
	defer d.ctrl.Finish()
	svc := d.service()

	ctx := context.Background()
	tx := &mockTx{}
	ownerID := uuid.New()
	account := &domain.Account{OwnerID: ownerID, Balance: "100", Active: true}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByOwnerForUpdate(ctx, tx, ownerID).Return(account, nil)
	d.brandRepo.EXPECT().Exists(ctx, "acme").Return(true, nil)
	d.brandRepo.EXPECT().Exists(ctx, "unknown").Return(false, nil)

	_, err := svc.Convert(ctx, ports.ConvertRequest{OwnerID: ownerID, FromBrand: "acme", ToBrand: "unknown", Amount: 10})
	assertAppError(t, err, "REG_002")
}

func TestConvert_NonPositiveAmount(t *testing.T) {
	d := newConversionDeps(t)
	defer d.ctrl.Finish()
	svc := d.service()

	ctx := context.Background()
	tx := &mockTx{}
	ownerID := uuid.New()
	account := &domain.Account{OwnerID: ownerID, Balance: "100", Active: true}

	for _, amount := range []int64{0, -5} {
		d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
		d.accountRepo.EXPECT().GetByOwnerForUpdate(ctx, tx, ownerID).Return(account, nil)
		d.brandRepo.EXPECT().Exists(ctx, "acme").Return(true, nil)
		d.brandRepo.EXPECT().Exists(ctx, "globex").Return(true, nil)

		_, err := svc.Convert(ctx, ports.ConvertRequest{OwnerID: ownerID, FromBrand: "acme", ToBrand: "globex", Amount: amount})
		assertAppError(t, err, "ACC_005")
	}
}

func TestConvert_RateNotSet(t *testing.T) {
	d := newConversionDeps(t)
	defer d.ctrl.Finish()
	svc := d.service()

	ctx := context.Background()
	tx := &mockTx{}
	ownerID := uuid.New()
	account := &domain.Account{OwnerID: ownerID, Balance: "100", Active: true}
	pair := domain.BrandPair{From: "acme", To: "globex"}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByOwnerForUpdate(ctx, tx, ownerID).Return(account, nil)
	d.brandRepo.EXPECT().Exists(ctx, "acme").Return(true, nil)
	d.brandRepo.EXPECT().Exists(ctx, "globex").Return(true, nil)
	d.rateRepo.EXPECT().GetInTx(ctx, tx, pair).Return(nil, nil)

	_, err := svc.Convert(ctx, ports.ConvertRequest{OwnerID: ownerID, FromBrand: "acme", ToBrand: "globex", Amount: 10})
	assertAppError(t, err, "REG_003")
}

func TestConvert_ReverseDirectionNeedsOwnRate(t *testing.T) {
	d := newConversionDeps(t)
	defer d.ctrl.Finish()
	svc := d.service()

	ctx := context.Background()
	tx := &mockTx{}
	ownerID := uuid.New()
	account := &domain.Account{OwnerID: ownerID, Balance: "100", Active: true}
	reversed := domain.BrandPair{From: "globex", To: "acme"}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByOwnerForUpdate(ctx, tx, ownerID).Return(account, nil)
	d.brandRepo.EXPECT().Exists(ctx, "globex").Return(true, nil)
	d.brandRepo.EXPECT().Exists(ctx, "acme").Return(true, nil)
	d.rateRepo.EXPECT().GetInTx(ctx, tx, reversed).Return(nil, nil)

	_, err := svc.Convert(ctx, ports.ConvertRequest{OwnerID: ownerID, FromBrand: "globex", ToBrand: "acme", Amount: 10})
	assertAppError(t, err, "REG_003")
}
