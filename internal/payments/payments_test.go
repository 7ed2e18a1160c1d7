package payments_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silverhalide/studio-api/internal/config"
	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/models"
	"github.com/silverhalide/studio-api/internal/payments"
)

func TestNew_WithoutTokenIsDisabled(t *testing.T) {
	svc, err := payments.New(&config.Config{})
	require.NoError(t, err)

	assert.False(t, svc.Enabled())
}

func TestPaymentLink_DisabledService(t *testing.T) {
	svc, err := payments.New(&config.Config{})
	require.NoError(t, err)

	_, err = svc.PaymentLink(context.Background(), &models.Job{TotalAmount: 100})

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "payments_not_configured", code)
}

func TestNew_WithTokenIsEnabled(t *testing.T) {
	svc, err := payments.New(&config.Config{MercadoPagoToken: "TEST-token"})
	require.NoError(t, err)

	assert.True(t, svc.Enabled())
}
