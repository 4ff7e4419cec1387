package session

import (
	"context"
	"encoding/base64"

	"checkout/internal/buildinfo"
	"checkout/internal/clients/listapi"
	"checkout/internal/config"
	"checkout/internal/errors"
	"checkout/internal/logging"
)

// Service creates new payment sessions and returns their List URL
type Service struct {
	client  listapi.Interface
	cfg     config.SessionConfig
	builder *Builder
	logger  *logging.Logger
}

// NewService creates a session service
func NewService(client listapi.Interface, cfg config.SessionConfig) *Service {
	return &Service{
		client:  client,
		cfg:     cfg,
		builder: NewBuilder(),
		logger:  logging.NewDefaultLogger("session"),
	}
}

// DefaultSettings returns settings filled from configuration
func (s *Service) DefaultSettings() Settings {
	settings := Settings{
		OperationType: s.cfg.OperationType,
		Currency:      s.cfg.Currency,
		Country:       s.cfg.Country,
		Language:      s.cfg.Language,
		Division:      s.cfg.Division,
	}
	if s.cfg.Amount > 0 {
		amount := s.cfg.Amount
		settings.Amount = &amount
	}
	return settings
}

// NewListSelfURL creates a list and returns its self URL
func (s *Service) NewListSelfURL(ctx context.Context, settings Settings) (string, error) {
	if err := buildinfo.ValidateMerchantConstants(s.cfg.ListURL, s.cfg.MerchantCode, s.cfg.PaymentToken); err != nil {
		return "", errors.Wrap(err, errors.ErrorTypeConfiguration, "merchant credentials missing")
	}

	body, err := s.builder.Build(settings)
	if err != nil {
		return "", err
	}

	auth := BasicAuth(s.cfg.MerchantCode, s.cfg.PaymentToken)
	list, err := s.client.CreatePaymentSession(ctx, s.cfg.ListURL, auth, body)
	if err != nil {
		return "", sessionError(err)
	}

	selfURL := list.SelfURL()
	if selfURL == "" {
		return "", errors.Wrap(errors.NotFound("self URL"), errors.ErrorTypeExternal,
			"error creating payment session, missing self url")
	}
	s.logger.Info("Created %s list %s", settings.OperationType, selfURL)
	return selfURL, nil
}

func sessionError(err error) error {
	var e *errors.CheckoutError
	switch {
	case listapi.IsUnauthorized(err):
		e = errors.Unauthorized("merchant credentials were rejected by the Payment API")
	case listapi.IsTimeout(err):
		e = errors.Timeout("create payment session")
	default:
		return errors.External("payment session", err)
	}
	e.Cause = err
	return e
}

// BasicAuth returns the Authorization header value for merchant credentials
func BasicAuth(merchantCode, paymentToken string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(merchantCode+":"+paymentToken))
}
