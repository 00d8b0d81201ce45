package payment_gateway

import (
	"context"
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/exceptions"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// stripeService talks to the Stripe PaymentIntents API directly over HTTP.
type stripeService struct {
	BaseUrl    string
	SecretKey  string
	HttpClient *http.Client
}

func NewStripeService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	return &stripeService{
		BaseUrl:    strings.TrimRight(internalConfig.Stripe.BaseUrl, "/"),
		SecretKey:  internalConfig.Stripe.SecretKey,
		HttpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type paymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *stripeService) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinorUnits, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseUrl+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", exceptions.ErrPaymentGatewayRequest(err)
	}
	req.Header.Set("Authorization", "Bearer "+s.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.HttpClient.Do(req)
	if err != nil {
		return "", exceptions.ErrPaymentGatewayRequest(err)
	}
	defer resp.Body.Close()

	var intent paymentIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return "", exceptions.ErrPaymentGatewayRequest(err)
	}

	if resp.StatusCode >= 400 {
		msg := "unexpected status " + resp.Status
		if intent.Error != nil && intent.Error.Message != "" {
			msg = intent.Error.Message
		}
		return "", exceptions.ErrPaymentGatewayRequest(fmt.Errorf("stripe: %s", msg))
	}

	if intent.ClientSecret == "" {
		return "", exceptions.ErrPaymentGatewayRequest(fmt.Errorf("stripe: empty client secret"))
	}

	return intent.ClientSecret, nil
}
