package csob

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// InitPayment registers a new payment. Empty currency, language, return URL and
// return method are taken from the client defaults; merchantId and dttm are
// always set by the client.
func (c *Client) InitPayment(ctx context.Context, req PaymentInitRequest) (*PaymentResponse, error) {
	const name = "payment/init"

	req.MerchantID = c.merchantID
	req.Dttm = c.dttm()
	if req.PayOperation == "" {
		req.PayOperation = PayOperationPayment
	}
	if req.PayMethod == "" {
		req.PayMethod = PayMethodCard
	}
	if req.Currency == "" {
		req.Currency = c.defaults.Currency
	}
	if req.Language == "" {
		req.Language = c.defaults.Language
	}
	if req.ReturnURL == "" {
		req.ReturnURL = c.defaults.ReturnURL
	}
	if req.ReturnMethod == "" {
		req.ReturnMethod = c.defaults.ReturnMethod
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%s failed: %w", name, err)
	}

	sig, err := c.sign(name, req.SignFields())
	if err != nil {
		return nil, err
	}
	req.Signature = sig

	res := &PaymentResponse{}
	err = c.exchange(ctx, operation{name: name, method: http.MethodPost, path: name, body: req}, res)
	if err != nil {
		return nil, err
	}

	log.Info().Str("order_no", req.OrderNo).Str("pay_id", res.PayID).Msg("payment initialized")
	return res, nil
}

func (c *Client) paymentRequest(name, payID string) (PaymentRequest, error) {
	req := PaymentRequest{
		MerchantID: c.merchantID,
		PayID:      payID,
		Dttm:       c.dttm(),
	}

	sig, err := c.sign(name, req.SignFields())
	if err != nil {
		return PaymentRequest{}, err
	}
	req.Signature = sig

	return req, nil
}

func (c *Client) paymentPath(name, payID string) (string, error) {
	req, err := c.paymentRequest(name, payID)
	if err != nil {
		return "", err
	}
	return path(name, []string{req.MerchantID, req.PayID, req.Dttm}, req.Signature), nil
}

// ProcessURL returns the signed link the customer is sent to in order to pay.
// It makes no network call.
func (c *Client) ProcessURL(payID string) (string, error) {
	p, err := c.paymentPath("payment/process", payID)
	if err != nil {
		return "", err
	}
	return c.baseURL + "/" + p, nil
}

// Process requests the process link itself and returns the payment page the
// gateway redirects to.
func (c *Client) Process(ctx context.Context, payID string) (string, error) {
	const name = "payment/process"

	p, err := c.paymentPath(name, payID)
	if err != nil {
		return "", err
	}

	resp, err := c.send(ctx, operation{name: name, method: http.MethodGet, path: p, expect: http.StatusSeeOther})
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", name, err)
	}

	location := resp.Header().Get("Location")
	if location == "" {
		return "", fmt.Errorf("%s failed: %w", name, ErrMissingLocation)
	}

	return location, nil
}

// PaymentStatus returns the current state of a payment. Extensions attached to
// the response are verified one by one.
func (c *Client) PaymentStatus(ctx context.Context, payID string) (*PaymentResponse, error) {
	const name = "payment/status"

	p, err := c.paymentPath(name, payID)
	if err != nil {
		return nil, err
	}

	res := &PaymentResponse{}
	if err = c.exchange(ctx, operation{name: name, method: http.MethodGet, path: p}, res); err != nil {
		return nil, err
	}

	for _, ext := range res.Extensions {
		if err = c.verifyExtension(ext); err != nil {
			return nil, fmt.Errorf("%s failed: %w", name, err)
		}
	}

	return res, nil
}

func (c *Client) verifyExtension(ext Extension) error {
	if !ext.supported() {
		return fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext.Extension)
	}

	ok, err := c.verifier.Verify(ext.SignFields(), ext.Signature)
	if err != nil {
		return fmt.Errorf("%w: extension %s: %v", ErrInvalidSignature, ext.Extension, err)
	}
	if !ok {
		return fmt.Errorf("%w: extension %s", ErrInvalidSignature, ext.Extension)
	}

	return nil
}

// ClosePayment sends a confirmed payment to settlement.
func (c *Client) ClosePayment(ctx context.Context, payID string) (*PaymentResponse, error) {
	return c.updatePayment(ctx, "payment/close", payID)
}

// ReversePayment cancels a payment that has not been settled yet.
func (c *Client) ReversePayment(ctx context.Context, payID string) (*PaymentResponse, error) {
	return c.updatePayment(ctx, "payment/reverse", payID)
}

func (c *Client) updatePayment(ctx context.Context, name, payID string) (*PaymentResponse, error) {
	req, err := c.paymentRequest(name, payID)
	if err != nil {
		return nil, err
	}

	res := &PaymentResponse{}
	if err = c.exchange(ctx, operation{name: name, method: http.MethodPut, path: name, body: req}, res); err != nil {
		return nil, err
	}

	log.Info().Str("operation", name).Str("pay_id", payID).Msg("payment updated")
	return res, nil
}

// RefundPayment refunds a settled payment. A nil amount refunds it in full.
func (c *Client) RefundPayment(ctx context.Context, payID string, amount *int64) (*PaymentResponse, error) {
	const name = "payment/refund"

	if amount != nil && *amount <= 0 {
		return nil, fmt.Errorf("%s failed: amount must be positive", name)
	}

	req := RefundRequest{
		MerchantID: c.merchantID,
		PayID:      payID,
		Dttm:       c.dttm(),
		Amount:     amount,
	}
	sig, err := c.sign(name, req.SignFields())
	if err != nil {
		return nil, err
	}
	req.Signature = sig

	res := &PaymentResponse{}
	if err = c.exchange(ctx, operation{name: name, method: http.MethodPut, path: name, body: req}, res); err != nil {
		return nil, err
	}

	log.Info().Str("pay_id", payID).Msg("payment refunded")
	return res, nil
}

// OneclickInit creates a payment from the stored card of a template payment.
func (c *Client) OneclickInit(ctx context.Context, req OneclickInitRequest) (*PaymentResponse, error) {
	const name = "payment/oneclick/init"

	req.MerchantID = c.merchantID
	req.Dttm = c.dttm()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%s failed: %w", name, err)
	}

	sig, err := c.sign(name, req.SignFields())
	if err != nil {
		return nil, err
	}
	req.Signature = sig

	res := &PaymentResponse{}
	if err = c.exchange(ctx, operation{name: name, method: http.MethodPost, path: name, body: req}, res); err != nil {
		return nil, err
	}

	return res, nil
}

// OneclickStart charges a payment created by OneclickInit.
func (c *Client) OneclickStart(ctx context.Context, payID string) (*PaymentResponse, error) {
	const name = "payment/oneclick/start"

	req, err := c.paymentRequest(name, payID)
	if err != nil {
		return nil, err
	}

	res := &PaymentResponse{}
	if err = c.exchange(ctx, operation{name: name, method: http.MethodPost, path: name, body: req}, res); err != nil {
		return nil, err
	}

	return res, nil
}
