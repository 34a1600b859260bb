// Package csobtest provides a testify mock of csob.Gateway.
package csobtest

import (
	"context"

	"github.com/katatrina/eapi-connector/internal/csob"
	"github.com/stretchr/testify/mock"
)

type Gateway struct {
	mock.Mock
}

var _ csob.Gateway = (*Gateway)(nil)

func paymentResponse(args mock.Arguments) (*csob.PaymentResponse, error) {
	res, _ := args.Get(0).(*csob.PaymentResponse)
	return res, args.Error(1)
}

func (m *Gateway) InitPayment(ctx context.Context, req csob.PaymentInitRequest) (*csob.PaymentResponse, error) {
	return paymentResponse(m.Called(ctx, req))
}

func (m *Gateway) ProcessURL(payID string) (string, error) {
	args := m.Called(payID)
	return args.String(0), args.Error(1)
}

func (m *Gateway) Process(ctx context.Context, payID string) (string, error) {
	args := m.Called(ctx, payID)
	return args.String(0), args.Error(1)
}

func (m *Gateway) PaymentStatus(ctx context.Context, payID string) (*csob.PaymentResponse, error) {
	return paymentResponse(m.Called(ctx, payID))
}

func (m *Gateway) ClosePayment(ctx context.Context, payID string) (*csob.PaymentResponse, error) {
	return paymentResponse(m.Called(ctx, payID))
}

func (m *Gateway) ReversePayment(ctx context.Context, payID string) (*csob.PaymentResponse, error) {
	return paymentResponse(m.Called(ctx, payID))
}

func (m *Gateway) RefundPayment(ctx context.Context, payID string, amount *int64) (*csob.PaymentResponse, error) {
	return paymentResponse(m.Called(ctx, payID, amount))
}

func (m *Gateway) Echo(ctx context.Context) (*csob.EchoResponse, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*csob.EchoResponse)
	return res, args.Error(1)
}

func (m *Gateway) EchoPost(ctx context.Context) (*csob.EchoResponse, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*csob.EchoResponse)
	return res, args.Error(1)
}

func (m *Gateway) CustomerInfo(ctx context.Context, customerID string) (*csob.CustomerResponse, error) {
	args := m.Called(ctx, customerID)
	res, _ := args.Get(0).(*csob.CustomerResponse)
	return res, args.Error(1)
}

func (m *Gateway) OneclickInit(ctx context.Context, req csob.OneclickInitRequest) (*csob.PaymentResponse, error) {
	return paymentResponse(m.Called(ctx, req))
}

func (m *Gateway) OneclickStart(ctx context.Context, payID string) (*csob.PaymentResponse, error) {
	return paymentResponse(m.Called(ctx, payID))
}

func (m *Gateway) VerifyReturn(params csob.ReturnParams) error {
	return m.Called(params).Error(0)
}

// PaymentResponse builds a successful response for a payment in the given state.
func PaymentResponse(payID string, status int) *csob.PaymentResponse {
	code := csob.ResultOK
	return &csob.PaymentResponse{
		PayID:         payID,
		Dttm:          "20240101120000",
		ResultCode:    &code,
		ResultMessage: "OK",
		PaymentStatus: &status,
	}
}
