package services_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/adapters/database/memory"
	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/SscSPs/personal_ledger_app/internal/core/ports/events"
	portssvc "github.com/SscSPs/personal_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/personal_ledger_app/internal/core/services"
	"github.com/SscSPs/personal_ledger_app/internal/dto"
	"github.com/SscSPs/personal_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }
func int64Ptr(i int64) *int64    { return &i }
func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type LedgerEntryServiceTestSuite struct {
	suite.Suite
	mockUserRepo  *MockUserRepository
	mockEntryRepo *MockLedgerEntryRepository
	mockTx        *MockTransactionManager
	mockPublisher *MockEntryEventPublisher
	service       portssvc.LedgerEntrySvcFacade
	ctx           context.Context
	now           time.Time
	owner         *domain.User
}

func (suite *LedgerEntryServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockEntryRepo = new(MockLedgerEntryRepository)
	suite.mockTx = new(MockTransactionManager)
	suite.mockPublisher = new(MockEntryEventPublisher)
	suite.ctx = context.Background()
	suite.now = time.Date(2024, 7, 15, 13, 45, 0, 0, time.UTC)
	suite.owner = &domain.User{UserID: 7, Name: "Owner", Email: "owner@example.com"}

	suite.mockTx.On("WithinTx", mock.Anything).Maybe()

	suite.service = services.NewLedgerEntryService(
		suite.mockEntryRepo,
		services.NewUserService(suite.mockUserRepo),
		services.WithTransactionManager(suite.mockTx),
		services.WithEntryEventPublisher(suite.mockPublisher),
		services.WithClock(func() time.Time { return suite.now }),
	)
}

func (suite *LedgerEntryServiceTestSuite) validRequest() dto.LedgerEntryRequest {
	return dto.LedgerEntryRequest{
		Description: "Salary",
		Month:       intPtr(7),
		Year:        intPtr(2024),
		OwnerID:     int64Ptr(suite.owner.UserID),
		Amount:      decimalPtr("1500.00"),
		Kind:        stringPtr("INCOME"),
	}
}

func (suite *LedgerEntryServiceTestSuite) storedEntry() *domain.LedgerEntry {
	return &domain.LedgerEntry{
		EntryID:          42,
		Description:      "Rent",
		Month:            6,
		Year:             2024,
		Owner:            suite.owner,
		Amount:           decimal.RequireFromString("800"),
		RegistrationDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Kind:             domain.Expense,
		Status:           domain.StatusPending,
	}
}

func (suite *LedgerEntryServiceTestSuite) expectOwner() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.owner.UserID).Return(suite.owner, nil)
}

func (suite *LedgerEntryServiceTestSuite) expectEvent(eventType events.EntryEventType, entryID int64) {
	suite.mockPublisher.On("PublishEntryEvent", mock.Anything, mock.MatchedBy(func(e events.EntryEvent) bool {
		return e.Type == eventType && e.EntryID == entryID && e.OwnerID == suite.owner.UserID && e.EventID != ""
	})).Return(nil).Once()
}

// --- CreateEntry ---

func (suite *LedgerEntryServiceTestSuite) TestCreateEntry_ForcesPendingAndToday() {
	req := suite.validRequest()
	req.Status = stringPtr("SETTLED")

	suite.expectOwner()
	suite.mockEntryRepo.On("InsertEntry", mock.Anything, mock.AnythingOfType("*domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.LedgerEntry).EntryID = 100
		}).
		Return(nil).Once()
	suite.expectEvent(events.EntryCreated, 100)

	created, err := suite.service.CreateEntry(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(100), created.EntryID)
	suite.Equal(domain.StatusPending, created.Status)
	suite.Equal(time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), created.RegistrationDate)
	suite.Equal(suite.owner, created.Owner)
	suite.Equal(domain.Income, created.Kind)
	suite.True(decimal.RequireFromString("1500").Equal(created.Amount))
	suite.mockTx.AssertCalled(suite.T(), "WithinTx", mock.Anything)
	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *LedgerEntryServiceTestSuite) TestCreateEntry_FirstValidationFailureWins() {
	req := suite.validRequest()
	req.Description = "  "
	req.Month = nil
	suite.expectOwner()

	created, err := suite.service.CreateEntry(suite.ctx, req)

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.EqualError(err, "invalid description")
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "InsertEntry", mock.Anything, mock.Anything)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishEntryEvent", mock.Anything, mock.Anything)
}

func (suite *LedgerEntryServiceTestSuite) TestCreateEntry_ValidationMessages() {
	tests := []struct {
		name   string
		mutate func(*dto.LedgerEntryRequest)
		msg    string
	}{
		{"month out of range", func(r *dto.LedgerEntryRequest) { r.Month = intPtr(13) }, "invalid month"},
		{"three digit year", func(r *dto.LedgerEntryRequest) { r.Year = intPtr(999) }, "invalid year"},
		{"no owner", func(r *dto.LedgerEntryRequest) { r.OwnerID = nil }, "owner required"},
		{"zero amount", func(r *dto.LedgerEntryRequest) { r.Amount = decimalPtr("0") }, "amount must be greater than 0"},
		{"no kind", func(r *dto.LedgerEntryRequest) { r.Kind = nil }, "entry kind required"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.expectOwner()
			req := suite.validRequest()
			tt.mutate(&req)

			_, err := suite.service.CreateEntry(suite.ctx, req)

			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.EqualError(err, tt.msg)
			suite.mockEntryRepo.AssertNotCalled(suite.T(), "InsertEntry", mock.Anything, mock.Anything)
		})
	}
}

func (suite *LedgerEntryServiceTestSuite) TestCreateEntry_UnknownOwner() {
	req := suite.validRequest()
	req.OwnerID = int64Ptr(404)
	suite.mockUserRepo.On("FindUserByID", mock.Anything, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateEntry(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.EqualError(err, "user not found with id: 404")
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "InsertEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerEntryServiceTestSuite) TestCreateEntry_UnknownKind() {
	req := suite.validRequest()
	req.Kind = stringPtr("TRANSFER")
	suite.expectOwner()

	_, err := suite.service.CreateEntry(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrBadEnum)
}

func (suite *LedgerEntryServiceTestSuite) TestCreateEntry_StorageErrorPropagates() {
	dbErr := errors.New("insert failed")
	suite.expectOwner()
	suite.mockEntryRepo.On("InsertEntry", mock.Anything, mock.Anything).Return(dbErr).Once()

	_, err := suite.service.CreateEntry(suite.ctx, suite.validRequest())

	suite.ErrorIs(err, dbErr)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishEntryEvent", mock.Anything, mock.Anything)
}

func (suite *LedgerEntryServiceTestSuite) TestCreateEntry_PublishFailureIsNotFatal() {
	suite.expectOwner()
	suite.mockEntryRepo.On("InsertEntry", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPublisher.On("PublishEntryEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	created, err := suite.service.CreateEntry(suite.ctx, suite.validRequest())

	suite.NoError(err)
	suite.NotNil(created)
}

// --- UpdateEntry ---

func (suite *LedgerEntryServiceTestSuite) TestUpdateEntry_ReplacesMutableFields() {
	stored := suite.storedEntry()
	req := suite.validRequest()
	req.Status = stringPtr("SETTLED")

	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, int64(42)).Return(stored, nil).Once()
	suite.expectOwner()
	suite.mockEntryRepo.On("SaveEntry", mock.Anything, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()
	suite.expectEvent(events.EntryUpdated, 42)

	updated, err := suite.service.UpdateEntry(suite.ctx, 42, req)

	suite.Require().NoError(err)
	suite.Equal(int64(42), updated.EntryID)
	suite.Equal("Salary", updated.Description)
	suite.Equal(7, updated.Month)
	suite.Equal(domain.Income, updated.Kind)
	suite.Equal(domain.StatusSettled, updated.Status)
	suite.True(decimal.RequireFromString("1500").Equal(updated.Amount))
	// The registration date stamped on creation survives an update.
	suite.Equal(stored.RegistrationDate, updated.RegistrationDate)
	suite.Equal(suite.now, updated.LastUpdatedAt)
	suite.mockEntryRepo.AssertCalled(suite.T(), "SaveEntry", mock.Anything, *updated)
}

func (suite *LedgerEntryServiceTestSuite) TestUpdateEntry_KeepsStatusWhenOmitted() {
	stored := suite.storedEntry()
	stored.Status = domain.StatusCanceled

	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, int64(42)).Return(stored, nil).Once()
	suite.expectOwner()
	suite.mockEntryRepo.On("SaveEntry", mock.Anything, mock.Anything).Return(nil).Once()
	suite.expectEvent(events.EntryUpdated, 42)

	updated, err := suite.service.UpdateEntry(suite.ctx, 42, suite.validRequest())

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCanceled, updated.Status)
}

func (suite *LedgerEntryServiceTestSuite) TestUpdateEntry_NotFound() {
	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, int64(9)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateEntry(suite.ctx, 9, suite.validRequest())

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.EqualError(err, "no ledger entry found with id: 9")
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerEntryServiceTestSuite) TestUpdateEntry_InvalidReplacementIsNotSaved() {
	req := suite.validRequest()
	req.Amount = decimalPtr("-1")

	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, int64(42)).Return(suite.storedEntry(), nil).Once()
	suite.expectOwner()

	_, err := suite.service.UpdateEntry(suite.ctx, 42, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.EqualError(err, "amount must be greater than 0")
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerEntryServiceTestSuite) TestUpdateEntry_UnknownStatus() {
	req := suite.validRequest()
	req.Status = stringPtr("EFETIVADO")

	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, int64(42)).Return(suite.storedEntry(), nil).Once()
	suite.expectOwner()

	_, err := suite.service.UpdateEntry(suite.ctx, 42, req)

	suite.ErrorIs(err, apperrors.ErrBadEnum)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

// --- DeleteEntry ---

func (suite *LedgerEntryServiceTestSuite) TestDeleteEntry_Success() {
	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, int64(42)).Return(suite.storedEntry(), nil).Once()
	suite.mockEntryRepo.On("DeleteEntryByID", mock.Anything, int64(42)).Return(nil).Once()
	suite.expectEvent(events.EntryDeleted, 42)

	err := suite.service.DeleteEntry(suite.ctx, 42)

	suite.NoError(err)
	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *LedgerEntryServiceTestSuite) TestDeleteEntry_NotFoundPerformsNoMutation() {
	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, int64(9)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEntry(suite.ctx, 9)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "DeleteEntryByID", mock.Anything, mock.Anything)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishEntryEvent", mock.Anything, mock.Anything)
}

// --- UpdateEntryStatus ---

func (suite *LedgerEntryServiceTestSuite) TestUpdateEntryStatus_ChangesOnlyStatus() {
	stored := suite.storedEntry()
	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, int64(42)).Return(stored, nil).Once()

	var saved domain.LedgerEntry
	suite.mockEntryRepo.On("SaveEntry", mock.Anything, mock.AnythingOfType("domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.LedgerEntry)
		}).
		Return(nil).Once()
	suite.expectEvent(events.EntryStatusChanged, 42)

	err := suite.service.UpdateEntryStatus(suite.ctx, 42, "SETTLED")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusSettled, saved.Status)

	expected := *stored
	expected.Status = domain.StatusSettled
	expected.LastUpdatedAt = saved.LastUpdatedAt
	suite.Equal(expected, saved)
}

func (suite *LedgerEntryServiceTestSuite) TestUpdateEntryStatus_AnyToAny() {
	for _, from := range []domain.EntryStatus{domain.StatusPending, domain.StatusSettled, domain.StatusCanceled} {
		for _, to := range []domain.EntryStatus{domain.StatusPending, domain.StatusSettled, domain.StatusCanceled} {
			suite.Run(string(from)+"->"+string(to), func() {
				suite.SetupTest()
				stored := suite.storedEntry()
				stored.Status = from
				suite.mockEntryRepo.On("FindEntryByID", mock.Anything, int64(42)).Return(stored, nil).Once()
				suite.mockEntryRepo.On("SaveEntry", mock.Anything, mock.MatchedBy(func(e domain.LedgerEntry) bool {
					return e.Status == to
				})).Return(nil).Once()
				suite.mockPublisher.On("PublishEntryEvent", mock.Anything, mock.Anything).Return(nil).Once()

				suite.NoError(suite.service.UpdateEntryStatus(suite.ctx, 42, string(to)))
				suite.mockEntryRepo.AssertExpectations(suite.T())
			})
		}
	}
}

func (suite *LedgerEntryServiceTestSuite) TestUpdateEntryStatus_NotFoundNamesID() {
	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.UpdateEntryStatus(suite.ctx, 99, "CANCELED")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "99")
}

func (suite *LedgerEntryServiceTestSuite) TestUpdateEntryStatus_UnknownStatus() {
	err := suite.service.UpdateEntryStatus(suite.ctx, 42, "EFETIVADO")

	suite.ErrorIs(err, apperrors.ErrBadEnum)
	suite.NotErrorIs(err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "FindEntryByID", mock.Anything, mock.Anything)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

// --- GetEntryByID / SearchEntries ---

func (suite *LedgerEntryServiceTestSuite) TestGetEntryByID_NotFound() {
	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, int64(3)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetEntryByID(suite.ctx, 3)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.EqualError(err, "no ledger entry found with id: 3")
}

func (suite *LedgerEntryServiceTestSuite) TestSearchEntries_BuildsSparseFilter() {
	params := dto.SearchEntriesParams{Description: stringPtr("desc"), OwnerID: int64Ptr(7)}
	matches := []domain.LedgerEntry{*suite.storedEntry()}
	suite.expectOwner()

	suite.mockEntryRepo.On("FindMatchingEntries", mock.Anything, mock.MatchedBy(func(f domain.EntryFilter) bool {
		return f.Description != nil && *f.Description == "desc" &&
			f.OwnerID != nil && *f.OwnerID == 7 &&
			f.Month == nil && f.Year == nil && f.Kind == nil && f.Status == nil
	})).Return(matches, nil).Once()

	result, err := suite.service.SearchEntries(suite.ctx, params)

	suite.Require().NoError(err)
	suite.Equal(matches, result)
}

func (suite *LedgerEntryServiceTestSuite) TestSearchEntries_UnknownStatusFilter() {
	_, err := suite.service.SearchEntries(suite.ctx, dto.SearchEntriesParams{Status: stringPtr("DONE")})

	suite.ErrorIs(err, apperrors.ErrBadEnum)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "FindMatchingEntries", mock.Anything, mock.Anything)
}

func (suite *LedgerEntryServiceTestSuite) TestSearchEntries_UnknownOwner() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, int64(999)).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.SearchEntries(suite.ctx, dto.SearchEntriesParams{OwnerID: int64Ptr(999)})

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.EqualError(err, "user not found with id: 999")
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "FindMatchingEntries", mock.Anything, mock.Anything)
}

func (suite *LedgerEntryServiceTestSuite) TestSearchEntries_UnknownOwnerBeforeUnknownStatus() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, int64(999)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SearchEntries(suite.ctx, dto.SearchEntriesParams{OwnerID: int64Ptr(999), Status: stringPtr("DONE")})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerEntryServiceTestSuite) TestSearchEntries_LogsFilterAtDebug() {
	var buf bytes.Buffer
	ctx := middleware.WithLogger(suite.ctx, slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	suite.mockEntryRepo.On("FindMatchingEntries", mock.Anything, domain.EntryFilter{}).Return([]domain.LedgerEntry{}, nil).Once()

	_, err := suite.service.SearchEntries(ctx, dto.SearchEntriesParams{})

	suite.Require().NoError(err)
	suite.Contains(buf.String(), `"level":"DEBUG"`)
	suite.Contains(buf.String(), "Searching ledger entries without constraints")
}

// --- GetOwnerBalance ---

func (suite *LedgerEntryServiceTestSuite) TestGetOwnerBalance_IncomeMinusExpense() {
	suite.expectOwner()
	suite.mockEntryRepo.On("SumAmountByOwnerAndKind", mock.Anything, int64(7), domain.Income).Return(decimalPtr("150"), nil).Once()
	suite.mockEntryRepo.On("SumAmountByOwnerAndKind", mock.Anything, int64(7), domain.Expense).Return(decimalPtr("30"), nil).Once()

	balance, err := suite.service.GetOwnerBalance(suite.ctx, 7)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(120).Equal(balance), "got %s", balance)
}

func (suite *LedgerEntryServiceTestSuite) TestGetOwnerBalance_NoEntriesIsZero() {
	suite.expectOwner()
	suite.mockEntryRepo.On("SumAmountByOwnerAndKind", mock.Anything, int64(7), domain.Income).Return(nil, nil).Once()
	suite.mockEntryRepo.On("SumAmountByOwnerAndKind", mock.Anything, int64(7), domain.Expense).Return(nil, nil).Once()

	balance, err := suite.service.GetOwnerBalance(suite.ctx, 7)

	suite.Require().NoError(err)
	suite.True(balance.IsZero())
}

func (suite *LedgerEntryServiceTestSuite) TestGetOwnerBalance_OnlyExpenses() {
	suite.expectOwner()
	suite.mockEntryRepo.On("SumAmountByOwnerAndKind", mock.Anything, int64(7), domain.Income).Return(nil, nil).Once()
	suite.mockEntryRepo.On("SumAmountByOwnerAndKind", mock.Anything, int64(7), domain.Expense).Return(decimalPtr("12.50"), nil).Once()

	balance, err := suite.service.GetOwnerBalance(suite.ctx, 7)

	suite.Require().NoError(err)
	suite.True(decimal.RequireFromString("-12.5").Equal(balance))
}

func (suite *LedgerEntryServiceTestSuite) TestGetOwnerBalance_UnknownOwner() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetOwnerBalance(suite.ctx, 404)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SumAmountByOwnerAndKind", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerEntryServiceTestSuite))
}

// --- End to end over the memory store ---

func newMemoryServices(t *testing.T) *portssvc.ServiceContainer {
	t.Helper()
	repos := memory.NewRepositoryProvider()
	userSvc := services.NewUserService(repos.UserRepo)
	entrySvc := services.NewLedgerEntryService(repos.EntryRepo, userSvc, services.WithTransactionManager(repos.TxManager))
	return &portssvc.ServiceContainer{User: userSvc, LedgerEntry: entrySvc}
}

func TestLedgerEntryService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryServices(t)

	owner, err := svc.User.RegisterUser(ctx, dto.RegisterUserRequest{Name: "Ana", Email: "ana@example.com", Credential: "pw"})
	require.NoError(t, err)

	created, err := svc.LedgerEntry.CreateEntry(ctx, dto.LedgerEntryRequest{
		Description: "Descrição do mês",
		Month:       intPtr(3),
		Year:        intPtr(2024),
		OwnerID:     int64Ptr(owner.UserID),
		Amount:      decimalPtr("99.90"),
		Kind:        stringPtr("EXPENSE"),
	})
	require.NoError(t, err)
	require.NotZero(t, created.EntryID)

	found, err := svc.LedgerEntry.GetEntryByID(ctx, created.EntryID)
	require.NoError(t, err)
	assert.Equal(t, *created, *found)
	assert.True(t, created.Equal(*found))

	matches, err := svc.LedgerEntry.SearchEntries(ctx, dto.SearchEntriesParams{Description: stringPtr("desc")})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, created.EntryID, matches[0].EntryID)
}

func TestLedgerEntryService_BalanceAcrossAllStatuses(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryServices(t)

	owner, err := svc.User.RegisterUser(ctx, dto.RegisterUserRequest{Name: "Ana", Email: "ana@example.com", Credential: "pw"})
	require.NoError(t, err)

	balance, err := svc.LedgerEntry.GetOwnerBalance(ctx, owner.UserID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	create := func(kind, amount string) *domain.LedgerEntry {
		entry, err := svc.LedgerEntry.CreateEntry(ctx, dto.LedgerEntryRequest{
			Description: kind + " " + amount,
			Month:       intPtr(1),
			Year:        intPtr(2024),
			OwnerID:     int64Ptr(owner.UserID),
			Amount:      decimalPtr(amount),
			Kind:        stringPtr(kind),
		})
		require.NoError(t, err)
		return entry
	}
	create("INCOME", "100")
	create("EXPENSE", "30")
	canceled := create("INCOME", "50")
	require.NoError(t, svc.LedgerEntry.UpdateEntryStatus(ctx, canceled.EntryID, "CANCELED"))

	balance, err = svc.LedgerEntry.GetOwnerBalance(ctx, owner.UserID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(120).Equal(balance), "got %s", balance)
}

func TestLedgerEntryService_FailedUpdateLeavesEntryUntouched(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryServices(t)

	owner, err := svc.User.RegisterUser(ctx, dto.RegisterUserRequest{Name: "Ana", Email: "ana@example.com", Credential: "pw"})
	require.NoError(t, err)
	created, err := svc.LedgerEntry.CreateEntry(ctx, dto.LedgerEntryRequest{
		Description: "Rent",
		Month:       intPtr(2),
		Year:        intPtr(2024),
		OwnerID:     int64Ptr(owner.UserID),
		Amount:      decimalPtr("800"),
		Kind:        stringPtr("EXPENSE"),
	})
	require.NoError(t, err)

	_, err = svc.LedgerEntry.UpdateEntry(ctx, created.EntryID, dto.LedgerEntryRequest{
		Description: "Rent",
		Month:       intPtr(14),
		Year:        intPtr(2024),
		OwnerID:     int64Ptr(owner.UserID),
		Amount:      decimalPtr("900"),
		Kind:        stringPtr("EXPENSE"),
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)

	found, err := svc.LedgerEntry.GetEntryByID(ctx, created.EntryID)
	require.NoError(t, err)
	assert.Equal(t, *created, *found)
}

func TestLedgerEntryService_SearchByUnknownOwner(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryServices(t)

	entries, err := svc.LedgerEntry.SearchEntries(ctx, dto.SearchEntriesParams{OwnerID: int64Ptr(999)})

	assert.Nil(t, entries)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
