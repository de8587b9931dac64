package sensor

import (
	"context"
	"errors"
	"testing"

	"ecbrates/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestRegistry_PublishGetList(t *testing.T) {
	r := NewRegistry()
	v := 1.1

	require.NoError(t, r.Publish(context.Background(), domain.SensorState{UniqueID: "ecb_EUR_USD", State: &v, Available: true}))
	require.NoError(t, r.Publish(context.Background(), domain.SensorState{UniqueID: "ecb_CZK_EUR"}))

	got, err := r.Get("ecb_EUR_USD")
	require.NoError(t, err)
	require.Equal(t, 1.1, *got.State)

	// stored state is independent of the caller's pointer
	v = 2
	got, err = r.Get("ecb_EUR_USD")
	require.NoError(t, err)
	require.Equal(t, 1.1, *got.State)

	list := r.List()
	require.Len(t, list, 2)
	require.Equal(t, "ecb_CZK_EUR", list[0].UniqueID)
}

func TestRegistry_GetUnknown(t *testing.T) {
	_, err := NewRegistry().Get("ecb_XXX_YYY")
	require.ErrorIs(t, err, domain.ErrSensorNotFound)
}

func TestFanOut_PublishesToAllAndAggregatesErrors(t *testing.T) {
	first := new(MockPublisher)
	second := new(MockPublisher)
	third := NewRegistry()
	state := domain.SensorState{UniqueID: "ecb_USD_JPY"}

	first.On("Publish", context.Background(), state).Return(errors.New("first failed")).Once()
	second.On("Publish", context.Background(), state).Return(errors.New("second failed")).Once()

	err := FanOut{first, second, third}.Publish(context.Background(), state)

	require.Error(t, err)
	require.ErrorContains(t, err, "first failed")
	require.ErrorContains(t, err, "second failed")
	_, getErr := third.Get("ecb_USD_JPY")
	require.NoError(t, getErr)
	first.AssertExpectations(t)
	second.AssertExpectations(t)
}

func TestFanOut_NoErrors(t *testing.T) {
	require.NoError(t, FanOut{NewRegistry()}.Publish(context.Background(), domain.SensorState{UniqueID: "x"}))
	require.NoError(t, FanOut{}.Publish(context.Background(), domain.SensorState{UniqueID: "x"}))
}
