package cli

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/katatrina/eapi-connector/internal/csob"
	"github.com/katatrina/eapi-connector/internal/util"
	"github.com/spf13/cobra"
)

type initOptions struct {
	file         string
	orderNo      string
	amount       string
	shipping     string
	description  string
	goods        string
	customerID   string
	merchantData string
	language     string
	closePayment bool
	ttlSec       int64
}

func (a *app) newInitCommand() *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a payment",
		Long:  `Register a payment at the gateway and print the link the customer pays at. The request is read from --file or built from flags.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.request()
			if err != nil {
				return err
			}

			config, gateway, err := a.gateway()
			if err != nil {
				return err
			}

			res, err := gateway.InitPayment(cmd.Context(), req)
			if err != nil {
				return err
			}
			processURL, err := gateway.ProcessURL(res.PayID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "orderNo:       %s\n", req.OrderNo)
			fmt.Fprintf(out, "amount:        %s\n", util.FormatAmount(req.TotalAmount, config.Currency))
			printPayment(out, res)
			fmt.Fprintf(out, "processUrl:    %s\n", processURL)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "JSON file with the payment/init request")
	cmd.Flags().StringVar(&opts.orderNo, "order-no", "", "Order number, up to 10 digits (generated when empty)")
	cmd.Flags().StringVarP(&opts.amount, "amount", "a", "", "Total amount, e.g. 1789.60")
	cmd.Flags().StringVar(&opts.shipping, "shipping", "", "Shipping part of the total amount")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Payment description")
	cmd.Flags().StringVar(&opts.goods, "goods", "", "Cart item name (defaults to the description)")
	cmd.Flags().StringVar(&opts.customerID, "customer-id", "", "Customer ID for oneclick payments")
	cmd.Flags().StringVar(&opts.merchantData, "merchant-data", "", "Data returned unchanged by the gateway")
	cmd.Flags().StringVar(&opts.language, "language", "", "Payment page language")
	cmd.Flags().BoolVar(&opts.closePayment, "close", false, "Close the payment right after authorization")
	cmd.Flags().Int64Var(&opts.ttlSec, "ttl", 0, "Payment page lifetime in seconds (300-1800)")
	cmd.MarkFlagsMutuallyExclusive("file", "amount")

	return cmd
}

func (o initOptions) request() (csob.PaymentInitRequest, error) {
	if o.file != "" {
		data, err := os.ReadFile(o.file)
		if err != nil {
			return csob.PaymentInitRequest{}, err
		}

		var req csob.PaymentInitRequest
		if err = json.Unmarshal(data, &req); err != nil {
			return csob.PaymentInitRequest{}, fmt.Errorf("invalid request file %s: %w", o.file, err)
		}
		return req, nil
	}

	if o.amount == "" || o.description == "" {
		return csob.PaymentInitRequest{}, fmt.Errorf("--amount and --description are required without --file")
	}

	total, err := util.ParseAmount(o.amount)
	if err != nil {
		return csob.PaymentInitRequest{}, err
	}
	var shipping int64
	if o.shipping != "" {
		if shipping, err = util.ParseAmount(o.shipping); err != nil {
			return csob.PaymentInitRequest{}, err
		}
		if shipping > total {
			return csob.PaymentInitRequest{}, fmt.Errorf("shipping must not exceed the amount")
		}
	}

	orderNo := o.orderNo
	if orderNo == "" {
		orderNo = util.GenerateOrderNo()
	}
	goods := o.goods
	if goods == "" {
		goods = o.description
	}

	req := csob.PaymentInitRequest{
		OrderNo:      orderNo,
		TotalAmount:  total,
		ClosePayment: o.closePayment,
		Cart:         csob.NewCart(goods, total, shipping),
		Description:  o.description,
		CustomerID:   o.customerID,
		Language:     o.language,
		TTLSec:       o.ttlSec,
	}
	if o.merchantData != "" {
		req.MerchantData = base64.StdEncoding.EncodeToString([]byte(o.merchantData))
	}

	return req, nil
}

func (a *app) newProcessCommand() *cobra.Command {
	var resolve bool

	cmd := &cobra.Command{
		Use:   "process <payId>",
		Short: "Print the payment link",
		Long:  `Print the signed payment/process link. With --resolve the link is requested and the payment page it redirects to is printed.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gateway, err := a.gateway()
			if err != nil {
				return err
			}

			var link string
			if resolve {
				link, err = gateway.Process(cmd.Context(), args[0])
			} else {
				link, err = gateway.ProcessURL(args[0])
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}

	cmd.Flags().BoolVar(&resolve, "resolve", false, "Follow the link and print the payment page URL")
	return cmd
}

// paymentCommand builds a command that runs one gateway method for a payment ID.
func (a *app) paymentCommand(use, short string, call func(cmd *cobra.Command, gateway csob.Gateway, payID string) (*csob.PaymentResponse, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <payId>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gateway, err := a.gateway()
			if err != nil {
				return err
			}

			res, err := call(cmd, gateway, args[0])
			if err != nil {
				return err
			}

			printPayment(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (a *app) newStatusCommand() *cobra.Command {
	return a.paymentCommand("status", "Show the state of a payment", func(cmd *cobra.Command, gateway csob.Gateway, payID string) (*csob.PaymentResponse, error) {
		return gateway.PaymentStatus(cmd.Context(), payID)
	})
}

func (a *app) newCloseCommand() *cobra.Command {
	return a.paymentCommand("close", "Send a confirmed payment to settlement", func(cmd *cobra.Command, gateway csob.Gateway, payID string) (*csob.PaymentResponse, error) {
		return gateway.ClosePayment(cmd.Context(), payID)
	})
}

func (a *app) newReverseCommand() *cobra.Command {
	return a.paymentCommand("reverse", "Cancel a payment before settlement", func(cmd *cobra.Command, gateway csob.Gateway, payID string) (*csob.PaymentResponse, error) {
		return gateway.ReversePayment(cmd.Context(), payID)
	})
}

func (a *app) newOneclickStartCommand() *cobra.Command {
	return a.paymentCommand("oneclick-start", "Charge a oneclick payment", func(cmd *cobra.Command, gateway csob.Gateway, payID string) (*csob.PaymentResponse, error) {
		return gateway.OneclickStart(cmd.Context(), payID)
	})
}

func (a *app) newRefundCommand() *cobra.Command {
	var amount string

	cmd := a.paymentCommand("refund", "Refund a settled payment", func(cmd *cobra.Command, gateway csob.Gateway, payID string) (*csob.PaymentResponse, error) {
		if amount == "" {
			return gateway.RefundPayment(cmd.Context(), payID, nil)
		}

		value, err := util.ParseAmount(amount)
		if err != nil {
			return nil, err
		}
		return gateway.RefundPayment(cmd.Context(), payID, util.Int64Pointer(value))
	})

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Partial refund amount (full refund when empty)")
	return cmd
}

func (a *app) newOneclickInitCommand() *cobra.Command {
	var (
		orderNo     string
		amount      string
		description string
	)

	cmd := &cobra.Command{
		Use:   "oneclick-init <origPayId>",
		Short: "Create a payment from a stored card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := csob.OneclickInitRequest{
				OrigPayID:   args[0],
				OrderNo:     orderNo,
				Description: description,
			}
			if req.OrderNo == "" {
				req.OrderNo = util.GenerateOrderNo()
			}

			config, gateway, err := a.gateway()
			if err != nil {
				return err
			}

			if amount != "" {
				if req.TotalAmount, err = util.ParseAmount(amount); err != nil {
					return err
				}
				req.Currency = config.Currency
			}

			res, err := gateway.OneclickInit(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "orderNo:       %s\n", req.OrderNo)
			printPayment(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&orderNo, "order-no", "", "Order number, up to 10 digits (generated when empty)")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount (the template payment's when empty)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Payment description")
	return cmd
}
