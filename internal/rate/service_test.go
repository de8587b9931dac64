package rate

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecbrates/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Testify mocks ---

type MockFeedClient struct{ mock.Mock }

func (m *MockFeedClient) FetchTable(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	table, _ := args.Get(0).(domain.RateTable)
	return table, args.Error(1)
}

type MockValuationCache struct{ mock.Mock }

func (m *MockValuationCache) Get(key string) (float64, bool) {
	args := m.Called(key)
	v, _ := args.Get(0).(float64)
	return v, args.Bool(1)
}

func (m *MockValuationCache) Set(key string, value float64) {
	m.Called(key, value)
}

func (m *MockValuationCache) Clear() {
	m.Called()
}

type MockRateArchive struct{ mock.Mock }

func (m *MockRateArchive) SaveTable(ctx context.Context, table domain.RateTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockRateArchive) LatestTable(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	table, _ := args.Get(0).(domain.RateTable)
	return table, args.Error(1)
}

type MockRefreshListener struct{ mock.Mock }

func (m *MockRefreshListener) OnRefresh(ctx context.Context, table domain.RateTable, err error) {
	m.Called(ctx, table, err)
}

type MockRefresher struct{ mock.Mock }

func (m *MockRefresher) Refresh(ctx context.Context, execID string) (domain.RateTable, error) {
	args := m.Called(ctx, execID)
	table, _ := args.Get(0).(domain.RateTable)
	return table, args.Error(1)
}

var (
	testAsOf      = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	testFetchedAt = time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC)
)

func sampleTable() domain.RateTable {
	return domain.NewRateTable(map[string]float64{"USD": 1.10, "JPY": 160.0}, testAsOf, testFetchedAt)
}

// --- GetByCodes ---

func TestService_GetByCodes_CacheMiss_ValuatesAndStores(t *testing.T) {
	store := NewStore()
	store.Swap(sampleTable())
	mockCache := new(MockValuationCache)
	svc := NewService(store, mockCache, new(MockRefresher), 4)

	key := valuationKey(sampleTable(), domain.RatePair{Base: "USD", Quote: "JPY"}, 4)
	mockCache.On("Get", key).Return(float64(0), false).Once()
	mockCache.On("Set", key, 145.4545).Return().Once()

	view, err := svc.GetByCodes(context.Background(), "USD", "JPY", -1)

	require.NoError(t, err)
	require.Equal(t, "USD", view.Base)
	require.Equal(t, "JPY", view.Quote)
	require.Equal(t, 4, view.Precision)
	require.InDelta(t, 145.4545, view.Value, 1e-9)
	require.Equal(t, testAsOf, view.AsOf)
	require.Equal(t, testFetchedAt, view.FetchedAt)
	mockCache.AssertExpectations(t)
}

func TestService_GetByCodes_UsesCacheHit(t *testing.T) {
	store := NewStore()
	store.Swap(sampleTable())
	mockCache := new(MockValuationCache)
	svc := NewService(store, mockCache, new(MockRefresher), 4)

	key := valuationKey(sampleTable(), domain.RatePair{Base: "JPY", Quote: "USD"}, 2)
	mockCache.On("Get", key).Return(0.42, true).Once()

	view, err := svc.GetByCodes(context.Background(), "JPY", "USD", 2)

	require.NoError(t, err)
	require.Equal(t, 0.42, view.Value)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	mockCache.AssertExpectations(t)
}

func TestService_GetByCodes_LookupMiss(t *testing.T) {
	store := NewStore()
	store.Swap(sampleTable())
	mockCache := new(MockValuationCache)
	svc := NewService(store, mockCache, new(MockRefresher), 4)

	mockCache.On("Get", mock.Anything).Return(float64(0), false).Once()

	_, err := svc.GetByCodes(context.Background(), "XYZ", "USD", 4)

	require.ErrorIs(t, err, domain.ErrCurrencyNotFound)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestService_GetByCodes_NotPopulated(t *testing.T) {
	mockCache := new(MockValuationCache)
	svc := NewService(NewStore(), mockCache, new(MockRefresher), 4)

	mockCache.On("Get", mock.Anything).Return(float64(0), false).Once()

	_, err := svc.GetByCodes(context.Background(), "EUR", "USD", 4)

	require.ErrorIs(t, err, domain.ErrTableNotPopulated)
}

func TestValuationKey_ChangesWithTableGeneration(t *testing.T) {
	pair := domain.RatePair{Base: "USD", Quote: "JPY"}
	older := sampleTable()
	newer := domain.NewRateTable(older.Rates(), testAsOf, testFetchedAt.Add(time.Hour))

	require.NotEqual(t, valuationKey(older, pair, 4), valuationKey(newer, pair, 4))
	require.NotEqual(t, valuationKey(older, pair, 4), valuationKey(older, pair, 2))
}

// --- Table / SupportedCodes ---

func TestService_TableAndSupportedCodes(t *testing.T) {
	store := NewStore()
	svc := NewService(store, new(MockValuationCache), new(MockRefresher), 4)

	require.Equal(t, []string{"EUR"}, svc.SupportedCodes(context.Background()))
	require.False(t, svc.Table(context.Background()).Populated())

	store.Swap(sampleTable())

	require.Equal(t, []string{"EUR", "JPY", "USD"}, svc.SupportedCodes(context.Background()))
	require.True(t, svc.Table(context.Background()).Equal(sampleTable()))
}

// --- Refresh ---

func TestService_Refresh_PassesExecID(t *testing.T) {
	mockRefresher := new(MockRefresher)
	svc := NewService(NewStore(), new(MockValuationCache), mockRefresher, 4)

	var gotExecID string
	mockRefresher.On("Refresh", mock.Anything, mock.AnythingOfType("string")).
		Return(sampleTable(), nil).
		Run(func(args mock.Arguments) { gotExecID = args.String(1) }).
		Once()

	execID, table, err := svc.Refresh(context.Background())

	require.NoError(t, err)
	require.NotEmpty(t, execID)
	require.Equal(t, gotExecID, execID)
	require.True(t, table.Equal(sampleTable()))
	mockRefresher.AssertExpectations(t)
}

func TestService_Refresh_Error(t *testing.T) {
	mockRefresher := new(MockRefresher)
	svc := NewService(NewStore(), new(MockValuationCache), mockRefresher, 4)
	wantErr := errors.New("feed down")

	mockRefresher.On("Refresh", mock.Anything, mock.Anything).Return(domain.EmptyRateTable(), wantErr).Once()

	_, _, err := svc.Refresh(context.Background())

	require.ErrorIs(t, err, wantErr)
	mockRefresher.AssertExpectations(t)
}

func TestNewService_DefaultsPrecision(t *testing.T) {
	svc := NewService(NewStore(), new(MockValuationCache), new(MockRefresher), -3)
	require.Equal(t, DefaultPrecision, svc.defaultPrecision)
}
