package api

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/eapi-connector/internal/csob"
	"github.com/katatrina/eapi-connector/internal/util"
	"github.com/rs/zerolog/log"
)

type createPaymentRequest struct {
	OrderNo          string `json:"order_no"`
	Amount           string `json:"amount" binding:"required"`
	ShippingAmount   string `json:"shipping_amount"`
	Description      string `json:"description" binding:"required"`
	GoodsDescription string `json:"goods_description"`
	CustomerID       string `json:"customer_id"`
	MerchantData     string `json:"merchant_data"`
	ClosePayment     bool   `json:"close_payment"`
	Language         string `json:"language"`
	TTLSec           int64  `json:"ttl_sec"`
}

type paymentResponse struct {
	PayID         string           `json:"pay_id"`
	OrderNo       string           `json:"order_no,omitempty"`
	ResultCode    int              `json:"result_code"`
	ResultMessage string           `json:"result_message"`
	PaymentStatus *int             `json:"payment_status,omitempty"`
	StatusText    string           `json:"status_text,omitempty"`
	AuthCode      string           `json:"auth_code,omitempty"`
	Amount        string           `json:"amount,omitempty"`
	ProcessURL    string           `json:"process_url,omitempty"`
	Extensions    []csob.Extension `json:"extensions,omitempty"`
}

func newPaymentResponse(res *csob.PaymentResponse) paymentResponse {
	resp := paymentResponse{
		PayID:         res.PayID,
		ResultMessage: res.ResultMessage,
		PaymentStatus: res.PaymentStatus,
		AuthCode:      res.AuthCode,
		Extensions:    res.Extensions,
	}
	if res.ResultCode != nil {
		resp.ResultCode = *res.ResultCode
	}
	if res.PaymentStatus != nil {
		resp.StatusText = csob.PaymentStatusText(*res.PaymentStatus)
	}
	return resp
}

// parseAmounts converts the decimal amounts of a request to hundredths.
func parseAmounts(amount, shipping string) (total, shippingTotal int64, violations []*FieldViolation) {
	total, err := util.ParseAmount(amount)
	if err != nil {
		violations = append(violations, fieldViolation("amount", err))
	}

	if shipping != "" {
		shippingTotal, err = util.ParseAmount(shipping)
		if err != nil {
			violations = append(violations, fieldViolation("shipping_amount", err))
		} else if shippingTotal > total {
			violations = append(violations, fieldViolation("shipping_amount", errors.New("must not exceed amount")))
		}
	}

	return total, shippingTotal, violations
}

//	@Summary		Create a payment
//	@Description	Register a payment at the gateway and return the link the customer pays at
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createPaymentRequest	true	"Create payment request"
//	@Success		200		{object}	paymentResponse			"Created payment"
//	@Failure		400		{object}	FailedValidationResponse
//	@Failure		422		{object}	GatewayErrorResponse
//	@Failure		502		"Gateway failure"
//	@Router			/payments [post]
func (server *Server) createPayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	total, shipping, violations := parseAmounts(req.Amount, req.ShippingAmount)
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}

	if req.OrderNo == "" {
		req.OrderNo = util.GenerateOrderNo()
	}
	goods := req.GoodsDescription
	if goods == "" {
		goods = req.Description
	}

	initReq := csob.PaymentInitRequest{
		OrderNo:      req.OrderNo,
		TotalAmount:  total,
		ClosePayment: req.ClosePayment,
		Cart:         csob.NewCart(goods, total, shipping),
		Description:  req.Description,
		CustomerID:   req.CustomerID,
		Language:     req.Language,
		TTLSec:       req.TTLSec,
	}
	if req.MerchantData != "" {
		initReq.MerchantData = base64.StdEncoding.EncodeToString([]byte(req.MerchantData))
	}

	res, err := server.gateway.InitPayment(c, initReq)
	if err != nil {
		handleGatewayError(c, err)
		return
	}

	processURL, err := server.gateway.ProcessURL(res.PayID)
	if err != nil {
		handleGatewayError(c, err)
		return
	}

	resp := newPaymentResponse(res)
	resp.OrderNo = req.OrderNo
	resp.Amount = util.FormatAmount(total, server.config.Currency)
	resp.ProcessURL = processURL

	log.Info().Str("pay_id", res.PayID).Str("order_no", req.OrderNo).Str("amount", resp.Amount).Msg("payment created")
	c.JSON(http.StatusOK, resp)
}

//	@Summary		Get payment status
//	@Tags			payments
//	@Produce		json
//	@Param			payID	path		string	true	"Payment ID"
//	@Success		200		{object}	paymentResponse
//	@Failure		404		{object}	GatewayErrorResponse
//	@Failure		502		"Gateway failure"
//	@Router			/payments/{payID} [get]
func (server *Server) getPaymentStatus(c *gin.Context) {
	res, err := server.gateway.PaymentStatus(c, c.Param("payID"))
	if err != nil {
		handleGatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPaymentResponse(res))
}

//	@Summary		Redirect to the payment page
//	@Tags			payments
//	@Param			payID	path	string	true	"Payment ID"
//	@Success		303		"Redirect to the gateway"
//	@Router			/payments/{payID}/process [get]
func (server *Server) processPayment(c *gin.Context) {
	processURL, err := server.gateway.ProcessURL(c.Param("payID"))
	if err != nil {
		handleGatewayError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, processURL)
}

//	@Summary		Close a payment
//	@Description	Send a confirmed payment to settlement
//	@Tags			payments
//	@Produce		json
//	@Param			payID	path		string	true	"Payment ID"
//	@Success		200		{object}	paymentResponse
//	@Failure		422		{object}	GatewayErrorResponse
//	@Router			/payments/{payID}/close [patch]
func (server *Server) closePayment(c *gin.Context) {
	res, err := server.gateway.ClosePayment(c, c.Param("payID"))
	if err != nil {
		handleGatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPaymentResponse(res))
}

//	@Summary		Reverse a payment
//	@Tags			payments
//	@Produce		json
//	@Param			payID	path		string	true	"Payment ID"
//	@Success		200		{object}	paymentResponse
//	@Failure		422		{object}	GatewayErrorResponse
//	@Router			/payments/{payID}/reverse [patch]
func (server *Server) reversePayment(c *gin.Context) {
	res, err := server.gateway.ReversePayment(c, c.Param("payID"))
	if err != nil {
		handleGatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPaymentResponse(res))
}

type refundPaymentRequest struct {
	Amount string `json:"amount"`
}

//	@Summary		Refund a payment
//	@Description	Refund a settled payment, partially when an amount is given
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			payID	path		string					true	"Payment ID"
//	@Param			request	body		refundPaymentRequest	false	"Partial refund"
//	@Success		200		{object}	paymentResponse
//	@Failure		400		{object}	FailedValidationResponse
//	@Failure		422		{object}	GatewayErrorResponse
//	@Router			/payments/{payID}/refund [patch]
func (server *Server) refundPayment(c *gin.Context) {
	var req refundPaymentRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
	}

	var amount *int64
	if req.Amount != "" {
		value, err := util.ParseAmount(req.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, failedValidationError([]*FieldViolation{fieldViolation("amount", err)}))
			return
		}
		amount = &value
	}

	res, err := server.gateway.RefundPayment(c, c.Param("payID"), amount)
	if err != nil {
		handleGatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPaymentResponse(res))
}

type createOneclickPaymentRequest struct {
	OrderNo      string `json:"order_no"`
	Amount       string `json:"amount"`
	Description  string `json:"description"`
	MerchantData string `json:"merchant_data"`
}

//	@Summary		Create a oneclick payment
//	@Description	Create a payment charged to the card stored with the template payment
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			payID	path		string							true	"Template payment ID"
//	@Param			request	body		createOneclickPaymentRequest	true	"Oneclick payment"
//	@Success		200		{object}	paymentResponse
//	@Failure		400		{object}	FailedValidationResponse
//	@Failure		422		{object}	GatewayErrorResponse
//	@Router			/payments/{payID}/oneclick [post]
func (server *Server) createOneclickPayment(c *gin.Context) {
	var req createOneclickPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	initReq := csob.OneclickInitRequest{
		OrigPayID:   c.Param("payID"),
		OrderNo:     req.OrderNo,
		Description: req.Description,
	}
	if initReq.OrderNo == "" {
		initReq.OrderNo = util.GenerateOrderNo()
	}
	if req.Amount != "" {
		amount, err := util.ParseAmount(req.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, failedValidationError([]*FieldViolation{fieldViolation("amount", err)}))
			return
		}
		initReq.TotalAmount = amount
		initReq.Currency = server.config.Currency
	}
	if req.MerchantData != "" {
		initReq.MerchantData = base64.StdEncoding.EncodeToString([]byte(req.MerchantData))
	}

	res, err := server.gateway.OneclickInit(c, initReq)
	if err != nil {
		handleGatewayError(c, err)
		return
	}

	resp := newPaymentResponse(res)
	resp.OrderNo = initReq.OrderNo
	c.JSON(http.StatusOK, resp)
}

//	@Summary		Start a oneclick payment
//	@Tags			payments
//	@Produce		json
//	@Param			payID	path		string	true	"Payment ID returned by the oneclick creation"
//	@Success		200		{object}	paymentResponse
//	@Failure		422		{object}	GatewayErrorResponse
//	@Router			/payments/{payID}/oneclick/start [patch]
func (server *Server) startOneclickPayment(c *gin.Context) {
	res, err := server.gateway.OneclickStart(c, c.Param("payID"))
	if err != nil {
		handleGatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPaymentResponse(res))
}
