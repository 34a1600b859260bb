package csob

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/katatrina/eapi-connector/internal/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMerchantID = "M1MIPS0000"
	testBasePath   = "/api/v1.6"
)

var (
	testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	keysOnce    sync.Once
	merchantKey *rsa.PrivateKey
	gatewayKey  *rsa.PrivateKey
	keysErr     error
)

func testKeyPairs(t *testing.T) (*rsa.PrivateKey, *rsa.PrivateKey) {
	t.Helper()
	keysOnce.Do(func() {
		if merchantKey, keysErr = rsa.GenerateKey(rand.Reader, 2048); keysErr != nil {
			return
		}
		gatewayKey, keysErr = rsa.GenerateKey(rand.Reader, 2048)
	})
	require.NoError(t, keysErr)
	return merchantKey, gatewayKey
}

// testGateway plays the gateway: it verifies requests with the merchant's
// public key and signs its responses with its own private key.
type testGateway struct {
	t        *testing.T
	server   *httptest.Server
	signer   *signature.Signer
	verifier *signature.Verifier
	calls    atomic.Int32
}

func newTestClient(t *testing.T, handler func(g *testGateway, w http.ResponseWriter, r *http.Request)) (*Client, *testGateway) {
	t.Helper()
	merchant, gatewayPrivate := testKeyPairs(t)

	gatewaySigner, err := signature.NewSigner(gatewayPrivate, signature.SHA256)
	require.NoError(t, err)
	merchantVerifier, err := signature.NewVerifier(&merchant.PublicKey, signature.SHA256)
	require.NoError(t, err)

	g := &testGateway{t: t, signer: gatewaySigner, verifier: merchantVerifier}
	g.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.calls.Add(1)
		handler(g, w, r)
	}))
	t.Cleanup(g.server.Close)

	signer, err := signature.NewSigner(merchant, signature.SHA256)
	require.NoError(t, err)
	verifier, err := signature.NewVerifier(&gatewayPrivate.PublicKey, signature.SHA256)
	require.NoError(t, err)

	client := NewClient(g.server.URL+testBasePath+"/", testMerchantID, signer, verifier, Defaults{
		Currency:     "CZK",
		Language:     "CZ",
		ReturnURL:    "https://shop.example.com/return",
		ReturnMethod: ReturnMethodPOST,
	})
	client.now = func() time.Time { return testNow }

	return client, g
}

// The helpers below run on the server goroutine, so they report with assert
// rather than require.

// pathParams returns the decoded segments that follow method in the request path.
func (g *testGateway) pathParams(r *http.Request, method string) []string {
	prefix := testBasePath + "/" + method + "/"
	escaped := r.URL.EscapedPath()
	assert.True(g.t, strings.HasPrefix(escaped, prefix), "unexpected path %s", escaped)

	segments := strings.Split(strings.TrimPrefix(escaped, prefix), "/")
	for i, segment := range segments {
		decoded, err := url.PathUnescape(segment)
		assert.NoError(g.t, err)
		segments[i] = decoded
	}
	return segments
}

func (g *testGateway) decode(r *http.Request, v any) {
	assert.NoError(g.t, json.NewDecoder(r.Body).Decode(v))
}

func (g *testGateway) assertSigned(fields signature.Fields, sig string) {
	ok, err := g.verifier.Verify(fields, sig)
	assert.NoError(g.t, err)
	assert.True(g.t, ok, "request signature does not match %q", signature.Join(fields))
}

func (g *testGateway) sign(fields signature.Fields) string {
	sig, err := g.signer.Sign(fields)
	assert.NoError(g.t, err)
	return sig
}

func (g *testGateway) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (g *testGateway) paymentResponse(payID string, resultCode int, message string, status *int) *PaymentResponse {
	res := &PaymentResponse{
		PayID:         payID,
		Dttm:          testNow.Format(DttmLayout),
		ResultCode:    &resultCode,
		ResultMessage: message,
		PaymentStatus: status,
	}
	res.Signature = g.sign(res.SignFields())
	return res
}

func intPtr(n int) *int {
	return &n
}
