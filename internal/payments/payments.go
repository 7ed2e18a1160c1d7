package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	appconfig "github.com/silverhalide/studio-api/internal/config"
	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/models"
)

// Service generates a checkout link for a job's outstanding balance. This is
// the whole payments integration for now; webhooks and reconciliation are a
// follow-on once the studio starts taking card payments for real.
type Service struct {
	prefs preference.Client
}

func New(cfg *appconfig.Config) (*Service, error) {
	if cfg.MercadoPagoToken == "" {
		return &Service{}, nil
	}

	mpCfg, err := mpconfig.New(cfg.MercadoPagoToken)
	if err != nil {
		return nil, err
	}

	return &Service{prefs: preference.NewClient(mpCfg)}, nil
}

func (s *Service) Enabled() bool {
	return s.prefs != nil
}

// PaymentLink creates a payment preference for the unpaid portion of a job.
func (s *Service) PaymentLink(ctx context.Context, j *models.Job) (string, error) {
	if s.prefs == nil {
		return "", httperr.ErrBusiness("payments_not_configured")
	}

	balance := j.TotalAmount - j.PaidAmount
	if balance <= 0 {
		return "", httperr.ErrBusiness("nothing_to_pay")
	}

	res, err := s.prefs.Create(ctx, preference.Request{
		ExternalReference: fmt.Sprintf("job-%d", j.ID),
		Items: []preference.ItemRequest{
			{
				Title:     j.Name,
				Quantity:  1,
				UnitPrice: balance,
			},
		},
	})
	if err != nil {
		return "", err
	}

	return res.InitPoint, nil
}
