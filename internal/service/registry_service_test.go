package service

import (
	"context"
	"testing"

	"confidential-points-exchange/internal/core/domain"
	"confidential-points-exchange/internal/core/ports"
	"confidential-points-exchange/internal/core/ports/mocks"
	"confidential-points-exchange/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type registryDeps struct {
	brandRepo  *mocks.MockBrandRepository
	rateRepo   *mocks.MockRateRepository
	eventRepo  *mocks.MockEventRepository
	accessSvc  *mocks.MockAccessService
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func newRegistryDeps(t *testing.T) registryDeps {
	ctrl := gomock.NewController(t)
	return registryDeps{
		brandRepo:  mocks.NewMockBrandRepository(ctrl),
		rateRepo:   mocks.NewMockRateRepository(ctrl),
		eventRepo:  mocks.NewMockEventRepository(ctrl),
		accessSvc:  mocks.NewMockAccessService(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
}

func (d registryDeps) service() *RegistryServiceImpl {
	return NewRegistryService(d.brandRepo, d.rateRepo, d.eventRepo, d.accessSvc, plainEngine{}, d.transactor, zerolog.Nop())
}

func TestRegisterBrand_Success(t *testing.T) {
	d := newRegistryDeps(t)
	defer d.ctrl.Finish()
	svc := d.service()

	ctx := context.Background()
	tx := &mockTx{}
	callerID := uuid.New()

	d.accessSvc.EXPECT().RequireOwner(ctx, callerID).Return(nil)
	d.brandRepo.EXPECT().Exists(ctx, "acme").Return(false, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.brandRepo.EXPECT().NextPosition(ctx, tx).Return(int64(3), nil)
	d.brandRepo.EXPECT().Insert(ctx, tx, gomock.Any()).Return(nil)
	d.eventRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)

	brand, err := svc.RegisterBrand(ctx, callerID, "  acme  ")
	require.NoError(t, err)
	assert.Equal(t, "acme", brand.ID)
	assert.Equal(t, int64(3), brand.Position)
}

func TestRegisterBrand_NotOwner(t *testing.T) {
	d := newRegistryDeps(t)
	defer d.ctrl.Finish()
	svc := d.service()

	ctx := context.Background()
	callerID := uuid.New()
	d.accessSvc.EXPECT().RequireOwner(ctx, callerID).Return(apperror.ErrUnauthorized())

	_, err := svc.RegisterBrand(ctx, callerID, "acme")
	assertAppError(t, err, "AUTH_001")
}

func TestRegisterBrand_Duplicate(t *testing.T) {
	d := newRegistryDeps(t)
	defer d.ctrl.Finish()
	svc := d.service()

	ctx := context.Background()
	callerID := uuid.New()
	d.accessSvc.EXPECT().RequireOwner(ctx, callerID).Return(nil)
	d.brandRepo.EXPECT().Exists(ctx, "acme").Return(true, nil)

	_, err := svc.RegisterBrand(ctx, callerID, "acme")
	assertAppError(t, err, "REG_001")
}

func TestSetRate_Success(t *testing.T) {
	d := newRegistryDeps(t)
	defer d.ctrl.Finish()
	svc := d.service()

	ctx := context.Background()
	tx := &mockTx{}
	callerID := uuid.New()
	rateCipher, _ := plainEngine{}.Encode(2)

	d.accessSvc.EXPECT().RequireOwner(ctx, callerID).Return(nil)
	d.brandRepo.EXPECT().Exists(ctx, "acme").Return(true, nil)
	d.brandRepo.EXPECT().Exists(ctx, "globex").Return(true, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.rateRepo.EXPECT().Upsert(ctx, tx, gomock.Any()).Return(nil)
	d.eventRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)

	rate, err := svc.SetRate(ctx, callerID, ports.SetRateRequest{
		FromBrand:   "acme",
		ToBrand:     "globex",
		Rate:        rateCipher,
		Attestation: plainAttest(rateCipher),
		RateMirror:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BrandPair{From: "acme", To: "globex"}, rate.Pair)
	assert.Equal(t, int64(2), rate.RateMirror)
}

func TestSetRate_BadAttestation(t *testing.T) {
	d := newRegistryDeps(t)
	defer d.ctrl.Finish()
	svc := d.service()

	ctx := context.Background()
	callerID := uuid.New()
	rateCipher, _ := plainEngine{}.Encode(2)

	d.accessSvc.EXPECT().RequireOwner(ctx, callerID).Return(nil)
	d.brandRepo.EXPECT().Exists(ctx, "acme").Return(true, nil)
	d.brandRepo.EXPECT().Exists(ctx, "globex").Return(true, nil)

	_, err := svc.SetRate(ctx, callerID, ports.SetRateRequest{
		FromBrand:   "acme",
		ToBrand:     "globex",
		Rate:        rateCipher,
		Attestation: []byte("forged"),
		RateMirror:  2,
	})
	assertAppError(t, err, "ATT_001")
}

func TestSetRate_UnknownBrand(t *testing.T) {
	d := newRegistryDeps(t)
	defer d.ctrl.Finish()
	svc := d.service()

	ctx := context.Background()
	callerID := uuid.New()

	d.accessSvc.EXPECT().RequireOwner(ctx, callerID).Return(nil)
	d.brandRepo.EXPECT().Exists(ctx, "acme").Return(false, nil)

	_, err := svc.SetRate(ctx, callerID, ports.SetRateRequest{
		FromBrand: "acme", ToBrand: "globex", Rate: "2", RateMirror: 2,
	})
	assertAppError(t, err, "REG_002")
}

func TestSetRate_ZeroMirrorRejected(t *testing.T) {
	d := newRegistryDeps(t)
	defer d.ctrl.Finish()
	svc := d.service()

	ctx := context.Background()
	callerID := uuid.New()

	d.accessSvc.EXPECT().RequireOwner(ctx, callerID).Return(nil)
	d.brandRepo.EXPECT().Exists(ctx, "acme").Return(true, nil)
	d.brandRepo.EXPECT().Exists(ctx, "globex").Return(true, nil)

	_, err := svc.SetRate(ctx, callerID, ports.SetRateRequest{
		FromBrand: "acme", ToBrand: "globex", Rate: "0", RateMirror: 0,
	})
	assertAppError(t, err, "REQ_001")
}

func TestGetRate_NotConfigured(t *testing.T) {
	d := newRegistryDeps(t)
	defer d.ctrl.Finish()
	svc := d.service()

	ctx := context.Background()
	pair := domain.BrandPair{From: "acme", To: "globex"}
	d.rateRepo.EXPECT().Get(ctx, pair).Return(nil, nil)

	_, err := svc.GetRate(ctx, "acme", "globex")
	assertAppError(t, err, "REG_003")
}
