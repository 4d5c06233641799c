package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"confidential-points-exchange/internal/adapter/http/dto"
	"confidential-points-exchange/internal/adapter/http/middleware"
	"confidential-points-exchange/internal/core/domain"
	"confidential-points-exchange/internal/core/ports"
	"confidential-points-exchange/internal/core/ports/mocks"
	"confidential-points-exchange/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T, method string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		c.Request = httptest.NewRequest(method, "/", bytes.NewReader(raw))
		c.Request.Header.Set("Content-Type", "application/json")
	} else {
		c.Request = httptest.NewRequest(method, "/", nil)
	}
	return c, w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

// --- Auth Handler Tests ---

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	h := NewAuthHandler(mockIdentity)

	participantID := uuid.New()
	mockIdentity.EXPECT().Register(gomock.Any(), "alice", "password123").Return(&domain.Participant{
		ID:        participantID,
		Username:  "alice",
		CreatedAt: time.Now(),
	}, nil)

	c, w := newTestContext(t, http.MethodPost, dto.RegisterRequest{
		Username: "alice",
		Password: "password123",
	})

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, participantID.String(), data["participant_id"])
	assert.Equal(t, "alice", data["username"])
}

func TestRegister_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	h := NewAuthHandler(mockIdentity)

	// Password below the 8 character minimum never reaches the service.
	c, w := newTestContext(t, http.MethodPost, dto.RegisterRequest{
		Username: "alice",
		Password: "short",
	})

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "REQ_001", errorCode(t, w))
}

func TestRegister_UsernameExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	h := NewAuthHandler(mockIdentity)

	mockIdentity.EXPECT().Register(gomock.Any(), "alice", "password123").
		Return(nil, apperror.ErrUsernameExists())

	c, w := newTestContext(t, http.MethodPost, dto.RegisterRequest{
		Username: "alice",
		Password: "password123",
	})

	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "AUTH_004", errorCode(t, w))
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	h := NewAuthHandler(mockIdentity)

	expiry := time.Now().Add(time.Hour)
	mockIdentity.EXPECT().Login(gomock.Any(), "alice", "password123").
		Return("token-abc", expiry, nil)

	c, w := newTestContext(t, http.MethodPost, dto.LoginRequest{
		Username: "alice",
		Password: "password123",
	})

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "token-abc", data["token"])
	assert.Equal(t, expiry.UTC().Format(time.RFC3339), data["expires_at"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	h := NewAuthHandler(mockIdentity)

	mockIdentity.EXPECT().Login(gomock.Any(), "alice", "wrongpassword").
		Return("", time.Time{}, apperror.ErrInvalidCredentials())

	c, w := newTestContext(t, http.MethodPost, dto.LoginRequest{
		Username: "alice",
		Password: "wrongpassword",
	})

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_003", errorCode(t, w))
}

// --- Admin Handler Tests ---

func TestRegisterBrand_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	mockAccess := mocks.NewMockAccessService(ctrl)
	h := NewAdminHandler(mockRegistry, mockAccess)

	ownerID := uuid.New()
	mockRegistry.EXPECT().RegisterBrand(gomock.Any(), ownerID, "acme").Return(&domain.Brand{
		ID:        "acme",
		Position:  0,
		CreatedAt: time.Now(),
	}, nil)

	c, w := newTestContext(t, http.MethodPost, dto.RegisterBrandRequest{BrandID: "acme"})
	c.Set(middleware.CtxParticipantID, ownerID)

	h.RegisterBrand(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "acme", data["brand_id"])
	assert.Equal(t, float64(0), data["position"])
}

func TestRegisterBrand_MissingParticipant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	mockAccess := mocks.NewMockAccessService(ctrl)
	h := NewAdminHandler(mockRegistry, mockAccess)

	c, w := newTestContext(t, http.MethodPost, dto.RegisterBrandRequest{BrandID: "acme"})

	h.RegisterBrand(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_002", errorCode(t, w))
}

func TestRegisterBrand_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	mockAccess := mocks.NewMockAccessService(ctrl)
	h := NewAdminHandler(mockRegistry, mockAccess)

	callerID := uuid.New()
	mockRegistry.EXPECT().RegisterBrand(gomock.Any(), callerID, "acme").
		Return(nil, apperror.ErrUnauthorized())

	c, w := newTestContext(t, http.MethodPost, dto.RegisterBrandRequest{BrandID: "acme"})
	c.Set(middleware.CtxParticipantID, callerID)

	h.RegisterBrand(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "AUTH_001", errorCode(t, w))
}

func TestSetRate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	mockAccess := mocks.NewMockAccessService(ctrl)
	h := NewAdminHandler(mockRegistry, mockAccess)

	ownerID := uuid.New()
	mockRegistry.EXPECT().SetRate(gomock.Any(), ownerID, ports.SetRateRequest{
		FromBrand:   "acme",
		ToBrand:     "globex",
		Rate:        domain.Ciphertext("ct-rate"),
		Attestation: []byte("att"),
		RateMirror:  2,
	}).Return(&domain.ExchangeRate{
		Pair:       domain.BrandPair{From: "acme", To: "globex"},
		Rate:       domain.Ciphertext("ct-rate"),
		RateMirror: 2,
		UpdatedAt:  time.Now(),
	}, nil)

	c, w := newTestContext(t, http.MethodPut, dto.SetRateRequest{
		FromBrand:   "acme",
		ToBrand:     "globex",
		Rate:        "ct-rate",
		Attestation: []byte("att"),
		RateMirror:  2,
	})
	c.Set(middleware.CtxParticipantID, ownerID)

	h.SetRate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "acme", data["from_brand"])
	assert.Equal(t, "globex", data["to_brand"])
	assert.Equal(t, float64(2), data["rate_mirror"])
	// The confidential rate handle never appears in the response.
	assert.NotContains(t, w.Body.String(), "ct-rate")
}

func TestSetRate_UnknownBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	mockAccess := mocks.NewMockAccessService(ctrl)
	h := NewAdminHandler(mockRegistry, mockAccess)

	ownerID := uuid.New()
	mockRegistry.EXPECT().SetRate(gomock.Any(), ownerID, gomock.Any()).
		Return(nil, apperror.ErrBrandPairUnsupported())

	c, w := newTestContext(t, http.MethodPut, dto.SetRateRequest{
		FromBrand:   "acme",
		ToBrand:     "nowhere",
		Rate:        "ct-rate",
		Attestation: []byte("att"),
		RateMirror:  2,
	})
	c.Set(middleware.CtxParticipantID, ownerID)

	h.SetRate(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "REG_002", errorCode(t, w))
}

func TestTransferOwnership_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	mockAccess := mocks.NewMockAccessService(ctrl)
	h := NewAdminHandler(mockRegistry, mockAccess)

	callerID := uuid.New()
	newOwnerID := uuid.New()
	mockAccess.EXPECT().TransferOwnership(gomock.Any(), callerID, newOwnerID).Return(nil)

	c, w := newTestContext(t, http.MethodPost, dto.TransferOwnershipRequest{
		NewOwnerID: newOwnerID.String(),
	})
	c.Set(middleware.CtxParticipantID, callerID)

	h.TransferOwnership(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, newOwnerID.String(), data["new_owner_id"])
}

func TestTransferOwnership_BadUUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	mockAccess := mocks.NewMockAccessService(ctrl)
	h := NewAdminHandler(mockRegistry, mockAccess)

	c, w := newTestContext(t, http.MethodPost, map[string]string{
		"new_owner_id": "not-a-uuid",
	})
	c.Set(middleware.CtxParticipantID, uuid.New())

	h.TransferOwnership(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "REQ_001", errorCode(t, w))
}

// --- Registry Handler Tests ---

func TestListBrands_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	h := NewRegistryHandler(mockRegistry)

	now := time.Now()
	mockRegistry.EXPECT().ListBrands(gomock.Any()).Return([]domain.Brand{
		{ID: "acme", Position: 0, CreatedAt: now},
		{ID: "globex", Position: 1, CreatedAt: now},
	}, nil)

	c, w := newTestContext(t, http.MethodGet, nil)

	h.ListBrands(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	brands := resp["data"].([]interface{})
	require.Len(t, brands, 2)
	first := brands[0].(map[string]interface{})
	assert.Equal(t, "acme", first["brand_id"])
}

func TestGetRate_NotSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	h := NewRegistryHandler(mockRegistry)

	mockRegistry.EXPECT().GetRate(gomock.Any(), "acme", "globex").
		Return(nil, apperror.ErrRateNotSet())

	c, w := newTestContext(t, http.MethodGet, nil)
	c.Params = gin.Params{
		{Key: "from", Value: "acme"},
		{Key: "to", Value: "globex"},
	}

	h.GetRate(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "REG_003", errorCode(t, w))
}

// --- Account Handler Tests ---

func TestCreateAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccount := mocks.NewMockAccountService(ctrl)
	h := NewAccountHandler(mockAccount)

	ownerID := uuid.New()
	now := time.Now()
	mockAccount.EXPECT().Create(gomock.Any(), ports.CreateAccountRequest{
		OwnerID:       ownerID,
		Initial:       domain.Ciphertext("ct-initial"),
		Attestation:   []byte("att"),
		InitialMirror: 100,
	}).Return(&domain.Account{
		OwnerID:       ownerID,
		Balance:       domain.Ciphertext("ct-initial"),
		BalanceMirror: 100,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil)

	c, w := newTestContext(t, http.MethodPost, dto.CreateAccountRequest{
		Initial:       "ct-initial",
		Attestation:   []byte("att"),
		InitialMirror: 100,
	})
	c.Set(middleware.CtxParticipantID, ownerID)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, ownerID.String(), data["owner_id"])
	assert.Equal(t, float64(100), data["balance_mirror"])
	assert.Equal(t, true, data["active"])
	assert.NotContains(t, w.Body.String(), "ct-initial")
}

func TestCreateAccount_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccount := mocks.NewMockAccountService(ctrl)
	h := NewAccountHandler(mockAccount)

	ownerID := uuid.New()
	mockAccount.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrAccountAlreadyExists())

	c, w := newTestContext(t, http.MethodPost, dto.CreateAccountRequest{
		Initial:     "ct-initial",
		Attestation: []byte("att"),
	})
	c.Set(middleware.CtxParticipantID, ownerID)

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ACC_001", errorCode(t, w))
}

func TestGetAccount_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccount := mocks.NewMockAccountService(ctrl)
	h := NewAccountHandler(mockAccount)

	ownerID := uuid.New()
	mockAccount.EXPECT().Get(gomock.Any(), ownerID).
		Return(nil, apperror.ErrAccountNotFound())

	c, w := newTestContext(t, http.MethodGet, nil)
	c.Set(middleware.CtxParticipantID, ownerID)

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ACC_002", errorCode(t, w))
}

func TestDeactivateAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccount := mocks.NewMockAccountService(ctrl)
	h := NewAccountHandler(mockAccount)

	ownerID := uuid.New()
	now := time.Now()
	mockAccount.EXPECT().Deactivate(gomock.Any(), ownerID).Return(&domain.Account{
		OwnerID:       ownerID,
		BalanceMirror: 100,
		Active:        false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil)

	c, w := newTestContext(t, http.MethodPost, nil)
	c.Set(middleware.CtxParticipantID, ownerID)

	h.Deactivate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, false, data["active"])
	assert.Equal(t, float64(100), data["balance_mirror"])
}

// --- Conversion Handler Tests ---

func TestConvert_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConversion := mocks.NewMockConversionService(ctrl)
	h := NewConversionHandler(mockConversion)

	ownerID := uuid.New()
	now := time.Now()
	mockConversion.EXPECT().Convert(gomock.Any(), ports.ConvertRequest{
		OwnerID:   ownerID,
		FromBrand: "acme",
		ToBrand:   "globex",
		Amount:    50,
	}).Return(&domain.Account{
		OwnerID:       ownerID,
		BalanceMirror: 150,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil)

	c, w := newTestContext(t, http.MethodPost, dto.ConvertRequest{
		FromBrand: "acme",
		ToBrand:   "globex",
		Amount:    50,
	})
	c.Set(middleware.CtxParticipantID, ownerID)

	h.Convert(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(150), data["balance_mirror"])
}

func TestConvert_NonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConversion := mocks.NewMockConversionService(ctrl)
	h := NewConversionHandler(mockConversion)

	// Binding rejects amount <= 0 before the service is called.
	c, w := newTestContext(t, http.MethodPost, map[string]interface{}{
		"from_brand": "acme",
		"to_brand":   "globex",
		"amount":     -5,
	})
	c.Set(middleware.CtxParticipantID, uuid.New())

	h.Convert(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "REQ_001", errorCode(t, w))
}

func TestConvert_InactiveAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConversion := mocks.NewMockConversionService(ctrl)
	h := NewConversionHandler(mockConversion)

	ownerID := uuid.New()
	mockConversion.EXPECT().Convert(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrAccountInactive())

	c, w := newTestContext(t, http.MethodPost, dto.ConvertRequest{
		FromBrand: "acme",
		ToBrand:   "globex",
		Amount:    50,
	})
	c.Set(middleware.CtxParticipantID, ownerID)

	h.Convert(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "ACC_003", errorCode(t, w))
}

// --- Oracle Handler Tests ---

func TestRequestDecryption_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockOracleService(ctrl)
	h := NewOracleHandler(mockOracle)

	requesterID := uuid.New()
	recordID := uuid.New()
	now := time.Now()
	mockOracle.EXPECT().
		RequestDecryption(gomock.Any(), requesterID, []domain.Ciphertext{"ct-balance"}).
		Return(&domain.DecryptionRecord{
			ID:          recordID,
			RequesterID: requesterID,
			Handles:     []domain.Ciphertext{"ct-balance"},
			Status:      domain.DecryptionStatusPending,
			CreatedAt:   now,
		}, nil)

	c, w := newTestContext(t, http.MethodPost, dto.RequestDecryptionRequest{
		Handles: []string{"ct-balance"},
	})
	c.Set(middleware.CtxParticipantID, requesterID)

	h.RequestDecryption(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, recordID.String(), data["record_id"])
	assert.Equal(t, "PENDING", data["status"])
	assert.NotContains(t, w.Body.String(), "ct-balance")
}

func TestRequestDecryption_NoHandles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockOracleService(ctrl)
	h := NewOracleHandler(mockOracle)

	c, w := newTestContext(t, http.MethodPost, map[string]interface{}{
		"handles": []string{},
	})
	c.Set(middleware.CtxParticipantID, uuid.New())

	h.RequestDecryption(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "REQ_001", errorCode(t, w))
}

func TestVerifyDecryption_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockOracleService(ctrl)
	h := NewOracleHandler(mockOracle)

	recordID := uuid.New()
	requesterID := uuid.New()
	now := time.Now()
	mockOracle.EXPECT().
		VerifyDecryption(gomock.Any(), recordID, []int64{150}, []byte("proof")).
		Return(&ports.VerifyDecryptionResult{
			Record: &domain.DecryptionRecord{
				ID:          recordID,
				RequesterID: requesterID,
				Status:      domain.DecryptionStatusVerified,
				Values:      []int64{150},
				CreatedAt:   now,
				VerifiedAt:  &now,
			},
		}, nil)

	c, w := newTestContext(t, http.MethodPost, dto.VerifyDecryptionRequest{
		Values: []int64{150},
		Proof:  []byte("proof"),
	})
	c.Params = gin.Params{{Key: "id", Value: recordID.String()}}

	h.VerifyDecryption(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "VERIFIED", data["status"])
	assert.Equal(t, []interface{}{float64(150)}, data["values"])
	_, hasFlag := data["already_verified"]
	assert.False(t, hasFlag)
}

func TestVerifyDecryption_AlreadyVerified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockOracleService(ctrl)
	h := NewOracleHandler(mockOracle)

	recordID := uuid.New()
	requesterID := uuid.New()
	now := time.Now()
	mockOracle.EXPECT().
		VerifyDecryption(gomock.Any(), recordID, []int64{150}, []byte("proof")).
		Return(&ports.VerifyDecryptionResult{
			Record: &domain.DecryptionRecord{
				ID:          recordID,
				RequesterID: requesterID,
				Status:      domain.DecryptionStatusVerified,
				Values:      []int64{150},
				CreatedAt:   now,
				VerifiedAt:  &now,
			},
			AlreadyVerified: true,
		}, nil)

	c, w := newTestContext(t, http.MethodPost, dto.VerifyDecryptionRequest{
		Values: []int64{150},
		Proof:  []byte("proof"),
	})
	c.Params = gin.Params{{Key: "id", Value: recordID.String()}}

	h.VerifyDecryption(c)

	// Replays of a completed verification are success shaped, not errors.
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "VERIFIED", data["status"])
	assert.Equal(t, true, data["already_verified"])
}

func TestVerifyDecryption_InvalidProof(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockOracleService(ctrl)
	h := NewOracleHandler(mockOracle)

	recordID := uuid.New()
	mockOracle.EXPECT().
		VerifyDecryption(gomock.Any(), recordID, []int64{999}, []byte("bad")).
		Return(nil, apperror.ErrInvalidDecryptionProof())

	c, w := newTestContext(t, http.MethodPost, dto.VerifyDecryptionRequest{
		Values: []int64{999},
		Proof:  []byte("bad"),
	})
	c.Params = gin.Params{{Key: "id", Value: recordID.String()}}

	h.VerifyDecryption(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ATT_002", errorCode(t, w))
}

func TestVerifyDecryption_BadRecordID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockOracleService(ctrl)
	h := NewOracleHandler(mockOracle)

	c, w := newTestContext(t, http.MethodPost, dto.VerifyDecryptionRequest{
		Values: []int64{150},
		Proof:  []byte("proof"),
	})
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.VerifyDecryption(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "REQ_001", errorCode(t, w))
}

func TestGetRecord_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockOracleService(ctrl)
	h := NewOracleHandler(mockOracle)

	recordID := uuid.New()
	mockOracle.EXPECT().GetRecord(gomock.Any(), recordID).
		Return(nil, apperror.ErrDecryptionRecordNotFound())

	c, w := newTestContext(t, http.MethodGet, nil)
	c.Params = gin.Params{{Key: "id", Value: recordID.String()}}

	h.GetRecord(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ORC_001", errorCode(t, w))
}

// --- Event Handler Tests ---

func TestListEvents_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := mocks.NewMockEventService(ctrl)
	h := NewEventHandler(mockEvents)

	payload, _ := json.Marshal(map[string]string{"brand_id": "acme"})
	mockEvents.EXPECT().List(gomock.Any(), 0).Return([]domain.LedgerEvent{
		{
			ID:        uuid.New(),
			Type:      domain.EventBrandRegistered,
			Payload:   payload,
			CreatedAt: time.Now(),
		},
	}, nil)

	c, w := newTestContext(t, http.MethodGet, nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	events := resp["data"].([]interface{})
	require.Len(t, events, 1)
	first := events[0].(map[string]interface{})
	assert.Equal(t, string(domain.EventBrandRegistered), first["type"])
	inner := first["payload"].(map[string]interface{})
	assert.Equal(t, "acme", inner["brand_id"])
}
