package stripe

import (
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/config"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/billing"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/plan"
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/logger"
	"github.com/stripe/stripe-go/v82"
)

// Provider implements the billing collaborator contract on Stripe
type Provider struct {
	cfg    *config.Configuration
	api    *stripe.Client
	logger *logger.Logger
}

var _ billing.Provider = (*Provider)(nil)

// NewProvider creates a Stripe-backed billing provider from the configured
// secret key
func NewProvider(cfg *config.Configuration, logger *logger.Logger) (*Provider, error) {
	if cfg.Stripe.SecretKey == "" {
		return nil, ierr.NewError("stripe secret key not configured").
			WithHint("Billing provider is not configured").
			Mark(ierr.ErrValidation)
	}

	return &Provider{
		cfg:    cfg,
		api:    stripe.NewClient(cfg.Stripe.SecretKey, nil),
		logger: logger,
	}, nil
}

// priceIDFor resolves the Stripe price id for a plan tier from config
func (p *Provider) priceIDFor(pl *plan.Plan) (string, error) {
	priceID, ok := p.cfg.Stripe.PlanPrices[pl.ID.String()]
	if !ok || priceID == "" {
		return "", ierr.NewError("no price configured for plan").
			WithHint("This plan cannot be billed yet").
			WithReportableDetails(map[string]any{
				"plan": pl.ID,
			}).
			Mark(ierr.ErrSystem)
	}
	return priceID, nil
}
