package csob

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedReturnValues(g *testGateway, resultCode int) url.Values {
	params := ReturnParams{
		PayID:         testPayID,
		Dttm:          "20240101121500",
		ResultCode:    &resultCode,
		ResultMessage: "OK",
		PaymentStatus: intPtr(PaymentStatusAwaitingSettlement),
		AuthCode:      "042760",
		MerchantData:  "b3JkZXI9NTU0Nw==",
	}

	return url.Values{
		"payId":         {params.PayID},
		"dttm":          {params.Dttm},
		"resultCode":    {strconv.Itoa(resultCode)},
		"resultMessage": {params.ResultMessage},
		"paymentStatus": {strconv.Itoa(*params.PaymentStatus)},
		"authCode":      {params.AuthCode},
		"merchantData":  {params.MerchantData},
		"signature":     {g.sign(params.SignFields())},
	}
}

func TestVerifyReturn(t *testing.T) {
	client, g := newTestClient(t, func(g *testGateway, w http.ResponseWriter, r *http.Request) {})

	t.Run("valid", func(t *testing.T) {
		params, err := ParseReturnParams(signedReturnValues(g, ResultOK))
		require.NoError(t, err)
		assert.Equal(t, PaymentStatusAwaitingSettlement, *params.PaymentStatus)
		assert.NoError(t, client.VerifyReturn(params))
	})

	t.Run("tampered status", func(t *testing.T) {
		values := signedReturnValues(g, ResultOK)
		values.Set("paymentStatus", strconv.Itoa(PaymentStatusSettled))

		params, err := ParseReturnParams(values)
		require.NoError(t, err)
		assert.ErrorIs(t, client.VerifyReturn(params), ErrInvalidSignature)
	})

	t.Run("without optional fields", func(t *testing.T) {
		code := ResultOK
		params := ReturnParams{
			PayID:         testPayID,
			Dttm:          "20240101121500",
			ResultCode:    &code,
			ResultMessage: "OK",
			PaymentStatus: intPtr(PaymentStatusCancelled),
		}
		params.Signature = g.sign(params.SignFields())
		assert.NoError(t, client.VerifyReturn(params))
	})

	t.Run("failed payment", func(t *testing.T) {
		params, err := ParseReturnParams(signedReturnValues(g, ResultSessionExpired))
		require.NoError(t, err)

		err = client.VerifyReturn(params)
		assert.True(t, IsResultCode(err, ResultSessionExpired))
		assert.ErrorContains(t, err, "payment/return failed")
	})

	t.Run("missing result code", func(t *testing.T) {
		values := signedReturnValues(g, ResultOK)
		values.Del("resultCode")

		params, err := ParseReturnParams(values)
		require.NoError(t, err)
		assert.ErrorIs(t, client.VerifyReturn(params), ErrMissingResultCode)
	})

	t.Run("missing signature", func(t *testing.T) {
		values := signedReturnValues(g, ResultOK)
		values.Del("signature")

		params, err := ParseReturnParams(values)
		require.NoError(t, err)
		assert.ErrorIs(t, client.VerifyReturn(params), ErrInvalidSignature)
	})
}

func TestParseReturnParamsInvalidNumber(t *testing.T) {
	_, err := ParseReturnParams(url.Values{"resultCode": {"zero"}})
	assert.EqualError(t, err, `invalid resultCode "zero"`)

	_, err = ParseReturnParams(url.Values{"resultCode": {"0"}, "paymentStatus": {"x"}})
	assert.EqualError(t, err, `invalid paymentStatus "x"`)
}
