package csob

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/katatrina/eapi-connector/internal/signature"
)

// ReturnParams are the signed parameters the gateway sends along when it
// redirects the customer back to returnUrl.
type ReturnParams struct {
	PayID         string
	Dttm          string
	ResultCode    *int
	ResultMessage string
	PaymentStatus *int
	AuthCode      string
	MerchantData  string
	Signature     string
}

// ParseReturnParams reads the redirect parameters from a query string or a
// submitted form.
func ParseReturnParams(values url.Values) (ReturnParams, error) {
	params := ReturnParams{
		PayID:         values.Get("payId"),
		Dttm:          values.Get("dttm"),
		ResultMessage: values.Get("resultMessage"),
		AuthCode:      values.Get("authCode"),
		MerchantData:  values.Get("merchantData"),
		Signature:     values.Get("signature"),
	}

	var err error
	if params.ResultCode, err = optionalInt(values, "resultCode"); err != nil {
		return ReturnParams{}, err
	}
	if params.PaymentStatus, err = optionalInt(values, "paymentStatus"); err != nil {
		return ReturnParams{}, err
	}

	return params, nil
}

func optionalInt(values url.Values, key string) (*int, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", key, raw)
	}
	return &n, nil
}

func (p ReturnParams) SignFields() signature.Fields {
	return signature.Fields{
		signature.String("payId", p.PayID),
		signature.String("dttm", p.Dttm),
		signature.IntPtr("resultCode", p.ResultCode),
		signature.String("resultMessage", p.ResultMessage),
		signature.IntPtr("paymentStatus", p.PaymentStatus),
		signature.OmitEmpty("authCode", p.AuthCode),
		signature.OmitEmpty("merchantData", p.MerchantData),
	}
}

func (p ReturnParams) signatureValue() string { return p.Signature }
func (p ReturnParams) result() (*int, string) { return p.ResultCode, p.ResultMessage }

// VerifyReturn checks the signature of the redirect parameters and fails when
// they carry a non-zero result code.
func (c *Client) VerifyReturn(params ReturnParams) error {
	if err := c.check(params); err != nil {
		return fmt.Errorf("payment/return failed: %w", err)
	}
	return nil
}
