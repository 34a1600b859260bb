package api

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/eapi-connector/internal/csob"
	"github.com/rs/zerolog/log"
)

type paymentReturnResponse struct {
	PayID         string `json:"pay_id"`
	ResultCode    int    `json:"result_code"`
	ResultMessage string `json:"result_message"`
	PaymentStatus *int   `json:"payment_status,omitempty"`
	StatusText    string `json:"status_text,omitempty"`
	AuthCode      string `json:"auth_code,omitempty"`
	MerchantData  string `json:"merchant_data,omitempty"`
}

//	@Summary		Handle the return from the gateway
//	@Description	Verify the signed parameters the gateway redirects the customer back with
//	@Tags			gateway
//	@Produce		json
//	@Success		200	{object}	paymentReturnResponse
//	@Failure		400	"Invalid or unsigned parameters"
//	@Failure		422	{object}	GatewayErrorResponse
//	@Router			/gateway/return [get]
//	@Router			/gateway/return [post]
func (server *Server) handlePaymentReturn(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	params, err := csob.ParseReturnParams(c.Request.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	err = server.gateway.VerifyReturn(params)
	if errors.Is(err, csob.ErrInvalidSignature) || errors.Is(err, csob.ErrMissingResultCode) {
		log.Warn().Err(err).Str("pay_id", params.PayID).Msg("rejected payment return")
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err != nil {
		handleGatewayError(c, err)
		return
	}

	resp := paymentReturnResponse{
		PayID:         params.PayID,
		ResultMessage: params.ResultMessage,
		PaymentStatus: params.PaymentStatus,
		AuthCode:      params.AuthCode,
	}
	if params.ResultCode != nil {
		resp.ResultCode = *params.ResultCode
	}
	if params.PaymentStatus != nil {
		resp.StatusText = csob.PaymentStatusText(*params.PaymentStatus)
	}
	if data, err := base64.StdEncoding.DecodeString(params.MerchantData); err == nil {
		resp.MerchantData = string(data)
	}

	log.Info().Str("pay_id", params.PayID).Str("status", resp.StatusText).Msg("customer returned from gateway")
	c.JSON(http.StatusOK, resp)
}

type echoResponse struct {
	Dttm          string `json:"dttm"`
	ResultCode    int    `json:"result_code"`
	ResultMessage string `json:"result_message"`
}

//	@Summary		Check the gateway connection
//	@Tags			gateway
//	@Produce		json
//	@Param			method	query		string	false	"Send the echo as GET (default) or POST"	Enums(get, post)
//	@Success		200		{object}	echoResponse
//	@Failure		502		"Gateway failure"
//	@Router			/echo [get]
func (server *Server) echo(c *gin.Context) {
	var (
		res *csob.EchoResponse
		err error
	)
	if c.Query("method") == "post" {
		res, err = server.gateway.EchoPost(c)
	} else {
		res, err = server.gateway.Echo(c)
	}
	if err != nil {
		handleGatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, echoResponse{
		Dttm:          res.Dttm,
		ResultCode:    *res.ResultCode,
		ResultMessage: res.ResultMessage,
	})
}

type customerInfoResponse struct {
	CustomerID    string `json:"customer_id"`
	ResultCode    int    `json:"result_code"`
	ResultMessage string `json:"result_message"`
	HasSavedCards bool   `json:"has_saved_cards"`
}

//	@Summary		Get customer info
//	@Description	Check whether a customer has a card stored for oneclick payments
//	@Tags			customers
//	@Produce		json
//	@Param			customerID	path		string	true	"Customer ID"
//	@Success		200			{object}	customerInfoResponse
//	@Failure		502			"Gateway failure"
//	@Router			/customers/{customerID} [get]
func (server *Server) getCustomerInfo(c *gin.Context) {
	res, err := server.gateway.CustomerInfo(c, c.Param("customerID"))
	if err != nil {
		handleGatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, customerInfoResponse{
		CustomerID:    res.CustomerID,
		ResultCode:    *res.ResultCode,
		ResultMessage: res.ResultMessage,
		HasSavedCards: res.HasSavedCards(),
	})
}
