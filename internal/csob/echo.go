package csob

import (
	"context"
	"net/http"
)

// Echo checks connectivity and that both sides accept each other's signatures.
func (c *Client) Echo(ctx context.Context) (*EchoResponse, error) {
	const name = "echo"

	req := EchoRequest{MerchantID: c.merchantID, Dttm: c.dttm()}
	sig, err := c.sign(name, req.SignFields())
	if err != nil {
		return nil, err
	}

	res := &EchoResponse{}
	op := operation{
		name:   name,
		method: http.MethodGet,
		path:   path(name, []string{req.MerchantID, req.Dttm}, sig),
	}
	if err = c.exchange(ctx, op, res); err != nil {
		return nil, err
	}

	return res, nil
}

// EchoPost is Echo sent as a signed JSON body.
func (c *Client) EchoPost(ctx context.Context) (*EchoResponse, error) {
	const name = "echo"

	req := EchoRequest{MerchantID: c.merchantID, Dttm: c.dttm()}
	sig, err := c.sign(name, req.SignFields())
	if err != nil {
		return nil, err
	}
	req.Signature = sig

	res := &EchoResponse{}
	if err = c.exchange(ctx, operation{name: name, method: http.MethodPost, path: name, body: req}, res); err != nil {
		return nil, err
	}

	return res, nil
}

// CustomerInfo asks whether a customer has a card stored for oneclick payments.
// The informational result codes 800, 810 and 820 are returned as a response,
// not an error.
func (c *Client) CustomerInfo(ctx context.Context, customerID string) (*CustomerResponse, error) {
	const name = "customer/info"

	req := CustomerRequest{MerchantID: c.merchantID, CustomerID: customerID, Dttm: c.dttm()}
	sig, err := c.sign(name, req.SignFields())
	if err != nil {
		return nil, err
	}

	res := &CustomerResponse{}
	op := operation{
		name:   name,
		method: http.MethodGet,
		path:   path(name, []string{req.MerchantID, req.CustomerID, req.Dttm}, sig),
	}
	err = c.exchange(ctx, op, res, ResultCustomerNotFound, ResultCustomerFoundNoCards, ResultCustomerFoundWithCards)
	if err != nil {
		return nil, err
	}

	return res, nil
}
