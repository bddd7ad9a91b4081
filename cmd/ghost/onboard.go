package main

import (
	"errors"
	"fmt"

	"github.com/tdex-network/ghost-wallet/internal/config"
	"github.com/tdex-network/ghost-wallet/internal/core/application"
	"github.com/urfave/cli/v2"
)

var onboard = cli.Command{
	Name:   "onboard",
	Usage:  "create a new wallet step by step",
	Action: onboardAction,
}

func onboardAction(ctx *cli.Context) error {
	session, network, cleanup, err := getSession()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := session.InitializeWallet(ctx.Context); err != nil {
		return err
	}
	if session.IsInitialized() {
		return fmt.Errorf("a wallet already exists: run 'ghost logout' first")
	}

	bio, err := config.GetBiometric()
	if err != nil {
		return err
	}
	onboarding, err := application.NewOnboarding(session, bio, network)
	if err != nil {
		return err
	}

	for onboarding.Step() != application.StepDashboard {
		if err := onboardStep(ctx, onboarding); err != nil {
			if errors.Is(err, application.ErrBiometricAttemptsExceeded) {
				fmt.Println(err)
				continue
			}
			if onboarding.Step() == application.StepSuccess {
				return err
			}
			fmt.Printf("%s, try again\n", err)
		}
	}

	state := session.State()
	fmt.Println()
	fmt.Printf("Wallet %s created\n", state.Alias)
	fmt.Printf("Public key: %s\n", state.PublicKey)
	fmt.Printf("Biometric enabled: %t\n", state.BiometricEnabled)
	return nil
}

func onboardStep(ctx *cli.Context, onboarding *application.Onboarding) error {
	switch onboarding.Step() {
	case application.StepAlias:
		alias, err := readLine("Choose an alias: ")
		if err != nil {
			return err
		}
		return onboarding.SubmitAlias(ctx.Context, alias)

	case application.StepPasskey:
		passkey, err := readPasskey("Enter passkey: ")
		if err != nil {
			return err
		}
		fmt.Printf("Strength: %s\n", application.PasswordStrength(passkey))
		confirmation, err := readPasskey("Confirm passkey: ")
		if err != nil {
			return err
		}
		enableBiometric, err := confirm("Enable biometric access?")
		if err != nil {
			return err
		}
		return onboarding.SubmitPasskey(
			ctx.Context, passkey, confirmation, enableBiometric,
		)

	case application.StepBiometric:
		skip, err := confirm("Skip biometric setup?")
		if err != nil {
			return err
		}
		if skip {
			return onboarding.SkipBiometric()
		}
		return onboarding.ConfirmBiometric(ctx.Context)

	case application.StepSuccess:
		return onboarding.Complete(ctx.Context)
	}
	return nil
}
