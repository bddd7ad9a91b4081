package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/ghost-wallet/internal/core/application"
	"github.com/urfave/cli/v2"
)

var swap = cli.Command{
	Name:  "swap",
	Usage: "simulate a swap between two tokens of the wallet",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "from",
			Usage: "the symbol or id of the token to sell",
			Value: "GHOSTX",
		},
		&cli.StringFlag{
			Name:  "to",
			Usage: "the symbol or id of the token to buy",
			Value: "USDC",
		},
		&cli.StringFlag{
			Name:     "amount",
			Usage:    "the amount of token to sell",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "slippage",
			Usage: "the slippage tolerance in percentage",
			Value: "0.5",
		},
	},
	Action: swapAction,
}

func swapAction(ctx *cli.Context) error {
	amount, err := decimal.NewFromString(ctx.String("amount"))
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	slippage, err := decimal.NewFromString(ctx.String("slippage"))
	if err != nil {
		return fmt.Errorf("invalid slippage: %w", err)
	}

	session, network, cleanup, err := getInitializedSession(ctx.Context)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := session.FetchBalances(ctx.Context); err != nil {
		return err
	}

	simulator, err := application.NewSwapSimulator(session, network)
	if err != nil {
		return err
	}

	quote, err := simulator.Quote(
		ctx.Context, ctx.String("from"), ctx.String("to"), amount,
	)
	if err != nil {
		return err
	}
	fmt.Printf(
		"Exchange rate: 1 %s = %s %s\n",
		quote.From.Symbol, quote.Rate.StringFixed(6), quote.To.Symbol,
	)

	result, err := simulator.Execute(ctx.Context, quote, slippage)
	if err != nil {
		return err
	}

	fmt.Println(result.Message())
	if !result.Success {
		return fmt.Errorf("swap failed")
	}
	fmt.Printf("Slippage: %s%%\n", result.Slippage)
	return nil
}
