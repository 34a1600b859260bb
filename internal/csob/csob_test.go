package csob

import (
	"context"
	"errors"
	"net/http"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInitRequest() PaymentInitRequest {
	return PaymentInitRequest{
		OrderNo:     "5547",
		TotalAmount: 1789600,
		Cart:        NewCart("Shopping at ABC", 1789600, 10000),
		Description: "Shopping at ABC (Lenovo ThinkPad Edge E540, Doprava PPL)",
	}
}

func TestInitPayment(t *testing.T) {
	client, g := newTestClient(t, func(g *testGateway, w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, testBasePath+"/payment/init", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var req PaymentInitRequest
		g.decode(r, &req)
		g.assertSigned(req.SignFields(), req.Signature)

		assert.Equal(t, testMerchantID, req.MerchantID)
		assert.Equal(t, "20240101120000", req.Dttm)
		assert.Equal(t, PayOperationPayment, req.PayOperation)
		assert.Equal(t, PayMethodCard, req.PayMethod)
		assert.Equal(t, "CZK", req.Currency)
		assert.Equal(t, "CZ", req.Language)
		assert.Equal(t, "https://shop.example.com/return", req.ReturnURL)
		assert.Equal(t, ReturnMethodPOST, req.ReturnMethod)
		assert.Len(t, req.Cart, 2)

		g.writeJSON(w, http.StatusOK, g.paymentResponse("a1b2c3d4e5f6g7h", ResultOK, "OK", intPtr(PaymentStatusCreated)))
	})

	res, err := client.InitPayment(context.Background(), testInitRequest())
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d4e5f6g7h", res.PayID)
	require.NotNil(t, res.PaymentStatus)
	assert.Equal(t, PaymentStatusCreated, *res.PaymentStatus)
	assert.EqualValues(t, 1, g.calls.Load())
}

func TestInitPaymentValidation(t *testing.T) {
	client, g := newTestClient(t, func(g *testGateway, w http.ResponseWriter, r *http.Request) {
		t.Error("invalid request must not be sent")
	})

	tests := []struct {
		name   string
		modify func(req *PaymentInitRequest)
		field  string
	}{
		{name: "order number with letters", modify: func(req *PaymentInitRequest) { req.OrderNo = "ORD-1" }, field: "orderNo"},
		{name: "order number too long", modify: func(req *PaymentInitRequest) { req.OrderNo = "12345678901" }, field: "orderNo"},
		{name: "zero amount", modify: func(req *PaymentInitRequest) { req.TotalAmount = 0 }, field: "totalAmount"},
		{name: "empty cart", modify: func(req *PaymentInitRequest) { req.Cart = nil }, field: "cart"},
		{name: "three cart items", modify: func(req *PaymentInitRequest) {
			req.Cart = append(req.Cart, CartItem{Name: "Gift", Quantity: 1, Amount: 1})
		}, field: "cart"},
		{name: "bad return method", modify: func(req *PaymentInitRequest) { req.ReturnMethod = "PUT" }, field: "returnMethod"},
		{name: "ttl out of range", modify: func(req *PaymentInitRequest) { req.TTLSec = 60 }, field: "ttlSec"},
		{name: "merchant data not base64", modify: func(req *PaymentInitRequest) { req.MerchantData = "not base64!" }, field: "merchantData"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testInitRequest()
			tt.modify(&req)

			_, err := client.InitPayment(context.Background(), req)
			require.Error(t, err)

			var verrs validation.Errors
			require.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)
			assert.Contains(t, verrs, tt.field)
			assert.Contains(t, err.Error(), "payment/init failed")
		})
	}

	assert.Zero(t, g.calls.Load())
}

func TestCallPipelineFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler func(g *testGateway, w http.ResponseWriter, r *http.Request)
		check   func(t *testing.T, err error)
	}{
		{
			name: "non-200 status",
			handler: func(g *testGateway, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("maintenance"))
			},
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
				assert.Equal(t, "maintenance", statusErr.Body)
				assert.EqualError(t, err, "payment/init failed: http response: 503")
			},
		},
		{
			name: "missing result code",
			handler: func(g *testGateway, w http.ResponseWriter, r *http.Request) {
				g.writeJSON(w, http.StatusOK, map[string]string{
					"payId":         "a1b2c3d4e5f6g7h",
					"dttm":          "20240101120000",
					"resultMessage": "OK",
					"signature":     "c2lnbmF0dXJl",
				})
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMissingResultCode)
				assert.EqualError(t, err, "payment/init failed: missing resultCode")
			},
		},
		{
			name: "tampered response",
			handler: func(g *testGateway, w http.ResponseWriter, r *http.Request) {
				res := g.paymentResponse("a1b2c3d4e5f6g7h", ResultOK, "OK", intPtr(PaymentStatusCreated))
				res.PayID = "tampered0000000"
				g.writeJSON(w, http.StatusOK, res)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidSignature)
				assert.EqualError(t, err, "payment/init failed: unable to verify signature")
			},
		},
		{
			name: "malformed response signature",
			handler: func(g *testGateway, w http.ResponseWriter, r *http.Request) {
				res := g.paymentResponse("a1b2c3d4e5f6g7h", ResultOK, "OK", nil)
				res.Signature = "%%%"
				g.writeJSON(w, http.StatusOK, res)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidSignature)
			},
		},
		{
			name: "non-zero result code",
			handler: func(g *testGateway, w http.ResponseWriter, r *http.Request) {
				g.writeJSON(w, http.StatusOK, g.paymentResponse("", ResultInvalidParameter, "Invalid 'orderNo'", nil))
			},
			check: func(t *testing.T, err error) {
				var resultErr *ResultError
				require.True(t, errors.As(err, &resultErr))
				assert.Equal(t, ResultInvalidParameter, resultErr.Code)
				assert.True(t, IsResultCode(err, ResultInvalidParameter))
				assert.False(t, IsResultCode(err, ResultPaymentNotFound))
				assert.EqualError(t, err, "payment/init failed: reason: Invalid 'orderNo' (resultCode: 110)")
			},
		},
		{
			name: "body is not json",
			handler: func(g *testGateway, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>"))
			},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "payment/init failed: invalid response body")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.handler)

			res, err := client.InitPayment(context.Background(), testInitRequest())
			require.Error(t, err)
			assert.Nil(t, res)
			tt.check(t, err)
		})
	}
}

func TestTransportError(t *testing.T) {
	client, g := newTestClient(t, func(g *testGateway, w http.ResponseWriter, r *http.Request) {})
	g.server.Close()

	_, err := client.Echo(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "echo failed")
}

func TestCanceledContext(t *testing.T) {
	client, _ := newTestClient(t, func(g *testGateway, w http.ResponseWriter, r *http.Request) {
		t.Error("canceled request must not reach the gateway")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.PaymentStatus(ctx, "a1b2c3d4e5f6g7h")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPath(t *testing.T) {
	got := path("payment/status", []string{"M1", "pay id", "20240101120000"}, "ab+c/d==")
	assert.Equal(t, "payment/status/M1/pay%20id/20240101120000/ab%2Bc%2Fd%3D%3D", got)
}
