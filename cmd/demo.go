package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/ink-rpc/pkg/errors"
	"github.com/theapemachine/ink-rpc/pkg/jsonrpc"
)

var (
	demoCmd = &cobra.Command{
		Use:          "demo",
		Short:        "Run a demonstration of JSON-RPC 2.0 envelope construction",
		Long:         longDemo,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetReportCaller(true)
			log.SetCallerOffset(0)
			log.SetLevel(log.DebugLevel)

			account := viper.GetString("demo.account")
			counterparty := viper.GetString("demo.counterparty")
			currency := viper.GetString("demo.currency")
			balance := viper.GetFloat64("demo.balance")

			// Example 1: simple request with null parameters.
			log.Info("simple request with null parameters")

			info := jsonrpc.NewRequest().SetMethod("get_server_info")

			fmt.Printf("Request:\n%s\n\n", info)

			infoResp := jsonrpc.NewResponse(info.ID())
			infoResp.SetResult(map[string]any{
				"server":  "ink-rpc-server",
				"version": "1.0.0",
				"uptime":  3600,
			})

			fmt.Printf("Response:\n%s\n\n", infoResp)

			// Example 2: request with complex parameters and a success reply.
			log.Info("request with complex parameters")

			transfer := jsonrpc.NewRequest().
				SetMethod("transfer_funds").
				SetParams(map[string]any{
					"from_account": account,
					"to_account":   counterparty,
					"amount":       250.75,
					"currency":     currency,
					"memo":         "Payment for invoice #INV-2026-001",
				})

			fmt.Printf("Request:\n%s\n\n", transfer)

			transferResp := jsonrpc.NewResponse(transfer.ID())
			transferResp.SetResult(map[string]any{
				"transaction_id": "txn_" + uuid.NewString(),
				"status":         "completed",
				"final_balance":  balance,
			})

			fmt.Printf("Response:\n%s\n\n", transferResp)

			// Example 3: request that results in an error reply.
			log.Info("request that results in an error")

			withdraw := jsonrpc.NewRequest().
				SetMethod("withdraw_funds").
				SetParams(map[string]any{
					"account": account,
					"amount":  5000.0,
				})

			fmt.Printf("Request:\n%s\n\n", withdraw)

			withdrawResp := jsonrpc.NewResponse(withdraw.ID())
			withdrawResp.SetError(errors.ErrInsufficientFunds.WithData(map[string]any{
				"requested_amount":  5000.0,
				"available_balance": balance,
				"account":           account,
			}))

			fmt.Printf("Error Response:\n%s\n\n", withdrawResp)

			// Example 4: a batch is just a sequence of independently built
			// envelopes. There is no first-class batch type.
			log.Info("batch of independent requests")

			batch := []*jsonrpc.Request{
				jsonrpc.NewRequest().
					SetMethod("get_balance").
					SetParams(map[string]any{"account": account}),
				jsonrpc.NewRequest().
					SetMethod("get_transaction_history").
					SetParams(map[string]any{"account": account, "limit": 5}),
				jsonrpc.NewRequest().
					SetMethod("get_account_info").
					SetParams(map[string]any{"account": account}),
			}

			for i, req := range batch {
				fmt.Printf("Batch Request %d:\n%s\n", i+1, req)
			}

			results := []any{
				map[string]any{"balance": balance, "currency": currency},
				map[string]any{"transactions": []any{}},
				map[string]any{"account_id": account, "status": "active"},
			}

			for i, req := range batch {
				resp := jsonrpc.NewResponse(req.ID())
				resp.SetResult(results[i])
				fmt.Printf("Batch Response %d:\n%s\n", i+1, resp)
			}

			log.Info("demo complete")
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

var longDemo = `
Builds JSON-RPC 2.0 request and response envelopes and prints them as they
would appear on the wire: a simple call, a call with structured parameters,
an error reply, and a batch of independently built messages.
`
