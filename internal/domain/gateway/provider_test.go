package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewProvider(t *testing.T) {
	testCases := []struct {
		raw      string
		expected Provider
		wantErr  bool
	}{
		{raw: "ameriabank", expected: ProviderAmeriabank},
		{raw: "arca", expected: ProviderArca},
		{raw: "idram", expected: ProviderIdram},
		{raw: "telcell", expected: ProviderTelcell},
		{raw: "paypal", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			p, err := NewProvider(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownProvider)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p)
		})
	}
}

func TestRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)

	idram := NewMockAdapter(ctrl)
	idram.EXPECT().Provider().Return(ProviderIdram).AnyTimes()
	idram.EXPECT().IsConfigured().Return(true).AnyTimes()

	arca := NewMockAdapter(ctrl)
	arca.EXPECT().Provider().Return(ProviderArca).AnyTimes()
	arca.EXPECT().IsConfigured().Return(false).AnyTimes()

	registry := NewRegistry(idram, arca)

	t.Run("should return registered adapter", func(t *testing.T) {
		a, err := registry.Get(ProviderIdram)
		require.NoError(t, err)
		assert.Equal(t, idram, a)
	})

	t.Run("should fail for missing adapter", func(t *testing.T) {
		_, err := registry.Get(ProviderTelcell)
		assert.ErrorIs(t, err, ErrUnknownProvider)
	})

	t.Run("should list configured providers only", func(t *testing.T) {
		assert.Equal(t, []Provider{ProviderIdram}, registry.Configured())
	})
}
