package csob

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/katatrina/eapi-connector/internal/signature"
	"github.com/katatrina/eapi-connector/internal/util"
	"github.com/rs/zerolog/log"
	"resty.dev/v3"
)

// Gateway is the set of eAPI methods offered to the rest of the application.
type Gateway interface {
	InitPayment(ctx context.Context, req PaymentInitRequest) (*PaymentResponse, error)
	ProcessURL(payID string) (string, error)
	Process(ctx context.Context, payID string) (string, error)
	PaymentStatus(ctx context.Context, payID string) (*PaymentResponse, error)
	ClosePayment(ctx context.Context, payID string) (*PaymentResponse, error)
	ReversePayment(ctx context.Context, payID string) (*PaymentResponse, error)
	RefundPayment(ctx context.Context, payID string, amount *int64) (*PaymentResponse, error)
	Echo(ctx context.Context) (*EchoResponse, error)
	EchoPost(ctx context.Context) (*EchoResponse, error)
	CustomerInfo(ctx context.Context, customerID string) (*CustomerResponse, error)
	OneclickInit(ctx context.Context, req OneclickInitRequest) (*PaymentResponse, error)
	OneclickStart(ctx context.Context, payID string) (*PaymentResponse, error)
	VerifyReturn(params ReturnParams) error
}

// Defaults fill the payment/init fields a caller leaves empty.
type Defaults struct {
	Currency     string
	Language     string
	ReturnURL    string
	ReturnMethod string
}

// Client calls the gateway. Every call is a single blocking HTTP request;
// nothing is retried.
type Client struct {
	baseURL    string
	merchantID string
	defaults   Defaults
	signer     *signature.Signer
	verifier   *signature.Verifier
	httpClient *resty.Client
	now        func() time.Time
}

func NewClient(baseURL, merchantID string, signer *signature.Signer, verifier *signature.Verifier, defaults Defaults) *Client {
	// Redirects are returned to the caller: payment/process answers with 303.
	httpClient := resty.New().
		SetHeader("Accept", "application/json;charset=UTF-8").
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		merchantID: merchantID,
		defaults:   defaults,
		signer:     signer,
		verifier:   verifier,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// NewClientFromConfig loads the merchant and gateway keys named in config and
// creates a client for the configured gateway.
func NewClientFromConfig(config *util.Config) (*Client, error) {
	algorithm, err := signature.ParseAlgorithm(config.SignatureAlgorithm)
	if err != nil {
		return nil, err
	}

	privateKey, err := signature.ReadPrivateKeyFile(config.MerchantPrivateKeyPath, config.MerchantPrivateKeyPassword)
	if err != nil {
		return nil, err
	}
	publicKey, err := signature.ReadPublicKeyFile(config.GatewayPublicKeyPath)
	if err != nil {
		return nil, err
	}

	signer, err := signature.NewSigner(privateKey, algorithm)
	if err != nil {
		return nil, err
	}
	verifier, err := signature.NewVerifier(publicKey, algorithm)
	if err != nil {
		return nil, err
	}

	return NewClient(config.GatewayURL, config.MerchantID, signer, verifier, Defaults{
		Currency:     config.Currency,
		Language:     config.Language,
		ReturnURL:    config.ReturnURL,
		ReturnMethod: config.ReturnMethod,
	}), nil
}

func (c *Client) dttm() string {
	return c.now().Format(DttmLayout)
}

type operation struct {
	name   string
	method string
	path   string
	body   any
	expect int
}

type signedResponse interface {
	SignFields() signature.Fields
	signatureValue() string
	result() (*int, string)
}

// send performs the HTTP call and fails on anything but the expected status.
func (c *Client) send(ctx context.Context, op operation) (*resty.Response, error) {
	req := c.httpClient.R().SetContext(ctx)
	if op.body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(op.body)
	}

	log.Debug().Str("operation", op.name).Str("http_method", op.method).Msg("calling gateway")

	resp, err := req.Execute(op.method, c.baseURL+"/"+op.path)
	if err != nil {
		return nil, err
	}

	expect := op.expect
	if expect == 0 {
		expect = http.StatusOK
	}
	if resp.StatusCode() != expect {
		return nil, &StatusError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return resp, nil
}

// exchange sends op, decodes the response into out and checks it. Result codes
// listed in accept are not treated as failures.
func (c *Client) exchange(ctx context.Context, op operation, out signedResponse, accept ...int) error {
	resp, err := c.send(ctx, op)
	if err != nil {
		log.Error().Err(err).Str("operation", op.name).Msg("gateway call failed")
		return fmt.Errorf("%s failed: %w", op.name, err)
	}

	if err = json.Unmarshal([]byte(resp.String()), out); err != nil {
		return fmt.Errorf("%s failed: invalid response body: %w", op.name, err)
	}

	if err = c.check(out, accept...); err != nil {
		log.Error().Err(err).Str("operation", op.name).Msg("gateway call rejected")
		return fmt.Errorf("%s failed: %w", op.name, err)
	}

	code, _ := out.result()
	log.Debug().Str("operation", op.name).Int("result_code", *code).Msg("gateway call succeeded")
	return nil
}

func (c *Client) check(res signedResponse, accept ...int) error {
	code, message := res.result()
	if code == nil {
		return ErrMissingResultCode
	}

	ok, err := c.verifier.Verify(res.SignFields(), res.signatureValue())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if !ok {
		return ErrInvalidSignature
	}

	if *code == ResultOK || slices.Contains(accept, *code) {
		return nil
	}
	return &ResultError{Code: *code, Message: message}
}

// path joins the method name with URL path parameters. The signature is the
// last parameter and is form-encoded since base64 may contain '+', '/' and '='.
func path(method string, params []string, sig string) string {
	segments := make([]string, 0, len(params)+2)
	segments = append(segments, method)
	for _, param := range params {
		segments = append(segments, url.PathEscape(param))
	}
	segments = append(segments, url.QueryEscape(sig))

	return strings.Join(segments, "/")
}

func (c *Client) sign(name string, fields signature.Fields) (string, error) {
	sig, err := c.signer.Sign(fields)
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", name, err)
	}
	return sig, nil
}
