package csob

// Result codes returned by the gateway in resultCode.
const (
	ResultOK                       = 0
	ResultMissingParameter         = 100
	ResultInvalidParameter         = 110
	ResultMerchantBlocked          = 120
	ResultSessionExpired           = 130
	ResultPaymentNotFound          = 140
	ResultPaymentNotInValidState   = 150
	ResultPaymentMethodDisabled    = 160
	ResultPaymentMethodUnavailable = 170
	ResultOperationNotAllowed      = 180
	ResultPaymentMethodError       = 190
	ResultEETRejected              = 500
	ResultCustomerNotFound         = 800
	ResultCustomerFoundNoCards     = 810
	ResultCustomerFoundWithCards   = 820
	ResultInternalError            = 900
)

var resultCodeText = map[int]string{
	ResultOK:                       "OK",
	ResultMissingParameter:         "Missing parameter",
	ResultInvalidParameter:         "Invalid parameter",
	ResultMerchantBlocked:          "Merchant blocked",
	ResultSessionExpired:           "Session expired",
	ResultPaymentNotFound:          "Payment not found",
	ResultPaymentNotInValidState:   "Payment not in valid state",
	ResultPaymentMethodDisabled:    "Payment method disabled",
	ResultPaymentMethodUnavailable: "Payment method unavailable",
	ResultOperationNotAllowed:      "Operation not allowed",
	ResultPaymentMethodError:       "Payment method error",
	ResultEETRejected:              "EET rejected",
	ResultCustomerNotFound:         "Customer not found",
	ResultCustomerFoundNoCards:     "Customer found, no saved card(s)",
	ResultCustomerFoundWithCards:   "Customer found, found saved card(s)",
	ResultInternalError:            "Internal error",
}

// ResultCodeText describes a result code, or returns "Unknown result code".
func ResultCodeText(code int) string {
	if text, ok := resultCodeText[code]; ok {
		return text
	}
	return "Unknown result code"
}

// Payment statuses returned in paymentStatus.
const (
	PaymentStatusCreated            = 1
	PaymentStatusInProgress         = 2
	PaymentStatusCancelled          = 3
	PaymentStatusConfirmed          = 4
	PaymentStatusReversed           = 5
	PaymentStatusDenied             = 6
	PaymentStatusAwaitingSettlement = 7
	PaymentStatusSettled            = 8
	PaymentStatusRefundProcessing   = 9
	PaymentStatusRefunded           = 10
)

var paymentStatusText = map[int]string{
	PaymentStatusCreated:            "Payment created",
	PaymentStatusInProgress:         "Payment in progress",
	PaymentStatusCancelled:          "Payment cancelled",
	PaymentStatusConfirmed:          "Payment confirmed",
	PaymentStatusReversed:           "Payment reversed",
	PaymentStatusDenied:             "Payment denied",
	PaymentStatusAwaitingSettlement: "Payment awaiting settlement",
	PaymentStatusSettled:            "Payment settled",
	PaymentStatusRefundProcessing:   "Refund processing",
	PaymentStatusRefunded:           "Payment refunded",
}

func PaymentStatusText(status int) string {
	if text, ok := paymentStatusText[status]; ok {
		return text
	}
	return "Unknown payment status"
}

const (
	PayOperationPayment = "payment"
	PayMethodCard       = "card"

	ReturnMethodPOST = "POST"
	ReturnMethodGET  = "GET"

	// DttmLayout is the yyyyMMddHHmmss timestamp every signed message carries.
	DttmLayout = "20060102150405"
)
