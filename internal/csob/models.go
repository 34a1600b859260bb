package csob

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/katatrina/eapi-connector/internal/signature"
)

var orderNoPattern = regexp.MustCompile(`^[0-9]{1,10}$`)

// CartItem is one line of the shopping cart shown on the payment page.
// The gateway accepts one or two items.
type CartItem struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
}

func (i CartItem) SignFields() signature.Fields {
	return signature.Fields{
		signature.String("name", i.Name),
		signature.Int("quantity", i.Quantity),
		signature.Int64("amount", i.Amount),
		signature.OmitEmpty("description", i.Description),
	}
}

func (i CartItem) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.RuneLength(1, 20)),
		validation.Field(&i.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&i.Amount, validation.Min(int64(0))),
		validation.Field(&i.Description, validation.RuneLength(0, 40)),
	)
}

// NewCart builds the cart of a purchase: the goods and, when there is one,
// the shipping fee. Amounts are in hundredths of the currency unit and the
// goods line carries totalAmount minus shippingAmount.
func NewCart(goodsDesc string, totalAmount, shippingAmount int64) []CartItem {
	cart := []CartItem{{
		Name:        truncate(goodsDesc, 20),
		Quantity:    1,
		Amount:      totalAmount - shippingAmount,
		Description: truncate(goodsDesc, 40),
	}}
	if shippingAmount > 0 {
		cart = append(cart, CartItem{
			Name:        "Shipping",
			Quantity:    1,
			Amount:      shippingAmount,
			Description: "Shipping fee",
		})
	}
	return cart
}

func truncate(value string, maxRunes int) string {
	runes := []rune(value)
	if len(runes) <= maxRunes {
		return value
	}
	return string(runes[:maxRunes])
}

// PaymentInitRequest is the body of payment/init.
type PaymentInitRequest struct {
	MerchantID         string     `json:"merchantId"`
	OrderNo            string     `json:"orderNo"`
	Dttm               string     `json:"dttm"`
	PayOperation       string     `json:"payOperation"`
	PayMethod          string     `json:"payMethod"`
	TotalAmount        int64      `json:"totalAmount"`
	Currency           string     `json:"currency"`
	ClosePayment       bool       `json:"closePayment"`
	ReturnURL          string     `json:"returnUrl"`
	ReturnMethod       string     `json:"returnMethod"`
	Cart               []CartItem `json:"cart"`
	Description        string     `json:"description"`
	MerchantData       string     `json:"merchantData,omitempty"`
	CustomerID         string     `json:"customerId,omitempty"`
	Language           string     `json:"language"`
	TTLSec             int64      `json:"ttlSec,omitempty"`
	LogoVersion        int64      `json:"logoVersion,omitempty"`
	ColorSchemeVersion int64      `json:"colorSchemeVersion,omitempty"`
	Signature          string     `json:"signature"`
}

func (r PaymentInitRequest) SignFields() signature.Fields {
	fields := signature.Fields{
		signature.String("merchantId", r.MerchantID),
		signature.String("orderNo", r.OrderNo),
		signature.String("dttm", r.Dttm),
		signature.String("payOperation", r.PayOperation),
		signature.String("payMethod", r.PayMethod),
		signature.Int64("totalAmount", r.TotalAmount),
		signature.String("currency", r.Currency),
		signature.Bool("closePayment", r.ClosePayment),
		signature.String("returnUrl", r.ReturnURL),
		signature.String("returnMethod", r.ReturnMethod),
	}
	for _, item := range r.Cart {
		fields = append(fields, item.SignFields()...)
	}

	return append(fields,
		signature.String("description", r.Description),
		signature.OmitEmpty("merchantData", r.MerchantData),
		signature.OmitEmpty("customerId", r.CustomerID),
		signature.String("language", r.Language),
		signature.OmitZero("ttlSec", r.TTLSec),
		signature.OmitZero("logoVersion", r.LogoVersion),
		signature.OmitZero("colorSchemeVersion", r.ColorSchemeVersion),
	)
}

// Validate checks the request against the gateway's field limits before it is signed.
func (r PaymentInitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MerchantID, validation.Required),
		validation.Field(&r.OrderNo, validation.Required, validation.Match(orderNoPattern).Error("must be 1 to 10 digits")),
		validation.Field(&r.Dttm, validation.Required, validation.Date(DttmLayout)),
		validation.Field(&r.PayOperation, validation.Required),
		validation.Field(&r.PayMethod, validation.Required),
		validation.Field(&r.TotalAmount, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Currency, validation.Required, validation.RuneLength(3, 3)),
		validation.Field(&r.ReturnURL, validation.Required, is.URL),
		validation.Field(&r.ReturnMethod, validation.Required, validation.In(ReturnMethodPOST, ReturnMethodGET)),
		validation.Field(&r.Cart, validation.Required, validation.Length(1, 2)),
		validation.Field(&r.Description, validation.Required, validation.RuneLength(1, 255)),
		validation.Field(&r.MerchantData, is.Base64, validation.Length(0, 255)),
		validation.Field(&r.CustomerID, validation.RuneLength(0, 50)),
		validation.Field(&r.Language, validation.Required),
		validation.Field(&r.TTLSec, validation.When(r.TTLSec != 0, validation.Min(int64(300)), validation.Max(int64(1800)))),
	)
}

// PaymentRequest identifies an existing payment. It is used by payment/process,
// payment/status, payment/close, payment/reverse and payment/oneclick/start.
type PaymentRequest struct {
	MerchantID string `json:"merchantId"`
	PayID      string `json:"payId"`
	Dttm       string `json:"dttm"`
	Signature  string `json:"signature"`
}

func (r PaymentRequest) SignFields() signature.Fields {
	return signature.Fields{
		signature.String("merchantId", r.MerchantID),
		signature.String("payId", r.PayID),
		signature.String("dttm", r.Dttm),
	}
}

// RefundRequest is the body of payment/refund. Without Amount the whole
// payment is refunded.
type RefundRequest struct {
	MerchantID string `json:"merchantId"`
	PayID      string `json:"payId"`
	Dttm       string `json:"dttm"`
	Amount     *int64 `json:"amount,omitempty"`
	Signature  string `json:"signature"`
}

func (r RefundRequest) SignFields() signature.Fields {
	return signature.Fields{
		signature.String("merchantId", r.MerchantID),
		signature.String("payId", r.PayID),
		signature.String("dttm", r.Dttm),
		signature.Int64Ptr("amount", r.Amount),
	}
}

type EchoRequest struct {
	MerchantID string `json:"merchantId"`
	Dttm       string `json:"dttm"`
	Signature  string `json:"signature"`
}

func (r EchoRequest) SignFields() signature.Fields {
	return signature.Fields{
		signature.String("merchantId", r.MerchantID),
		signature.String("dttm", r.Dttm),
	}
}

type CustomerRequest struct {
	MerchantID string `json:"merchantId"`
	CustomerID string `json:"customerId"`
	Dttm       string `json:"dttm"`
	Signature  string `json:"signature"`
}

func (r CustomerRequest) SignFields() signature.Fields {
	return signature.Fields{
		signature.String("merchantId", r.MerchantID),
		signature.String("customerId", r.CustomerID),
		signature.String("dttm", r.Dttm),
	}
}

// OneclickInitRequest starts a new payment from a template payment whose card
// the customer allowed to be stored. Amount and currency default to the
// template's when omitted.
type OneclickInitRequest struct {
	MerchantID   string `json:"merchantId"`
	OrigPayID    string `json:"origPayId"`
	OrderNo      string `json:"orderNo"`
	Dttm         string `json:"dttm"`
	TotalAmount  int64  `json:"totalAmount,omitempty"`
	Currency     string `json:"currency,omitempty"`
	Description  string `json:"description,omitempty"`
	MerchantData string `json:"merchantData,omitempty"`
	Signature    string `json:"signature"`
}

func (r OneclickInitRequest) SignFields() signature.Fields {
	return signature.Fields{
		signature.String("merchantId", r.MerchantID),
		signature.String("origPayId", r.OrigPayID),
		signature.String("orderNo", r.OrderNo),
		signature.String("dttm", r.Dttm),
		signature.OmitZero("totalAmount", r.TotalAmount),
		signature.OmitEmpty("currency", r.Currency),
		signature.OmitEmpty("description", r.Description),
		signature.OmitEmpty("merchantData", r.MerchantData),
	}
}

func (r OneclickInitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MerchantID, validation.Required),
		validation.Field(&r.OrigPayID, validation.Required),
		validation.Field(&r.OrderNo, validation.Required, validation.Match(orderNoPattern).Error("must be 1 to 10 digits")),
		validation.Field(&r.Dttm, validation.Required, validation.Date(DttmLayout)),
		validation.Field(&r.TotalAmount, validation.Min(int64(0))),
		validation.Field(&r.Description, validation.RuneLength(0, 255)),
		validation.Field(&r.MerchantData, is.Base64, validation.Length(0, 255)),
	)
}

// PaymentResponse is returned by every payment/* method.
type PaymentResponse struct {
	PayID         string      `json:"payId,omitempty"`
	Dttm          string      `json:"dttm"`
	ResultCode    *int        `json:"resultCode"`
	ResultMessage string      `json:"resultMessage"`
	PaymentStatus *int        `json:"paymentStatus,omitempty"`
	AuthCode      string      `json:"authCode,omitempty"`
	CustomerCode  string      `json:"customerCode,omitempty"`
	Extensions    []Extension `json:"extensions,omitempty"`
	Signature     string      `json:"signature"`
}

func (r *PaymentResponse) SignFields() signature.Fields {
	return signature.Fields{
		signature.OmitEmpty("payId", r.PayID),
		signature.String("dttm", r.Dttm),
		signature.IntPtr("resultCode", r.ResultCode),
		signature.String("resultMessage", r.ResultMessage),
		signature.IntPtr("paymentStatus", r.PaymentStatus),
		signature.OmitEmpty("authCode", r.AuthCode),
		signature.OmitEmpty("customerCode", r.CustomerCode),
	}
}

func (r *PaymentResponse) signatureValue() string { return r.Signature }
func (r *PaymentResponse) result() (*int, string) { return r.ResultCode, r.ResultMessage }

// Extension names the gateway may attach to payment/status responses.
const (
	ExtensionMaskedCard = "maskClnRP"
	ExtensionTrxDates   = "trxDates"
)

// Extension is additional signed data attached to a response. Each extension
// carries its own signature.
type Extension struct {
	Extension      string `json:"extension"`
	Dttm           string `json:"dttm"`
	MaskedCln      string `json:"maskedCln,omitempty"`
	Expiration     string `json:"expiration,omitempty"`
	LongMaskedCln  string `json:"longMaskedCln,omitempty"`
	CreatedDate    string `json:"createdDate,omitempty"`
	AuthDate       string `json:"authDate,omitempty"`
	SettlementDate string `json:"settlementDate,omitempty"`
	Signature      string `json:"signature"`
}

func (e Extension) supported() bool {
	return e.Extension == ExtensionMaskedCard || e.Extension == ExtensionTrxDates
}

func (e Extension) SignFields() signature.Fields {
	fields := signature.Fields{
		signature.String("extension", e.Extension),
		signature.String("dttm", e.Dttm),
	}

	switch e.Extension {
	case ExtensionMaskedCard:
		fields = append(fields,
			signature.OmitEmpty("maskedCln", e.MaskedCln),
			signature.OmitEmpty("expiration", e.Expiration),
			signature.OmitEmpty("longMaskedCln", e.LongMaskedCln),
		)
	case ExtensionTrxDates:
		fields = append(fields,
			signature.OmitEmpty("createdDate", e.CreatedDate),
			signature.OmitEmpty("authDate", e.AuthDate),
			signature.OmitEmpty("settlementDate", e.SettlementDate),
		)
	}

	return fields
}

type EchoResponse struct {
	Dttm          string `json:"dttm"`
	ResultCode    *int   `json:"resultCode"`
	ResultMessage string `json:"resultMessage"`
	Signature     string `json:"signature"`
}

func (r *EchoResponse) SignFields() signature.Fields {
	return signature.Fields{
		signature.String("dttm", r.Dttm),
		signature.IntPtr("resultCode", r.ResultCode),
		signature.String("resultMessage", r.ResultMessage),
	}
}

func (r *EchoResponse) signatureValue() string { return r.Signature }
func (r *EchoResponse) result() (*int, string) { return r.ResultCode, r.ResultMessage }

type CustomerResponse struct {
	CustomerID    string `json:"customerId"`
	Dttm          string `json:"dttm"`
	ResultCode    *int   `json:"resultCode"`
	ResultMessage string `json:"resultMessage"`
	Signature     string `json:"signature"`
}

func (r *CustomerResponse) SignFields() signature.Fields {
	return signature.Fields{
		signature.String("customerId", r.CustomerID),
		signature.String("dttm", r.Dttm),
		signature.IntPtr("resultCode", r.ResultCode),
		signature.String("resultMessage", r.ResultMessage),
	}
}

func (r *CustomerResponse) signatureValue() string { return r.Signature }
func (r *CustomerResponse) result() (*int, string) { return r.ResultCode, r.ResultMessage }

// HasSavedCards reports whether the customer has a card stored for oneclick payments.
func (r *CustomerResponse) HasSavedCards() bool {
	return r.ResultCode != nil && *r.ResultCode == ResultCustomerFoundWithCards
}
