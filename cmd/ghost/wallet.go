package main

import (
	"fmt"

	"github.com/tdex-network/ghost-wallet/internal/config"
	"github.com/tdex-network/ghost-wallet/internal/core/application"
	"github.com/tdex-network/ghost-wallet/internal/core/domain"
	"github.com/urfave/cli/v2"
)

var create = cli.Command{
	Name:  "create",
	Usage: "create a new wallet with the given alias and passkey",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "alias",
			Usage:    "the alias of the wallet (3-20 letters, numbers or underscores)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "passkey",
			Usage: "the passkey used to encrypt the private key, prompted if omitted",
		},
		&cli.BoolFlag{
			Name:  "biometric",
			Usage: "enable biometric access",
		},
	},
	Action: createAction,
}

var status = cli.Command{
	Name:   "status",
	Usage:  "show the status of the wallet",
	Action: statusAction,
}

var unlock = cli.Command{
	Name:  "unlock",
	Usage: "check the passkey against the wallet",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "passkey",
			Usage: "the wallet passkey, prompted if omitted",
		},
	},
	Action: unlockAction,
}

var biometric = cli.Command{
	Name:  "biometric",
	Usage: "enable or disable biometric access",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "enable",
			Usage: "enable biometric access, disable if false",
			Value: true,
		},
	},
	Action: biometricAction,
}

var logout = cli.Command{
	Name:   "logout",
	Usage:  "delete the wallet and all its data",
	Action: logoutAction,
}

func createAction(ctx *cli.Context) error {
	alias := ctx.String("alias")
	if err := domain.ValidateAlias(alias); err != nil {
		return err
	}

	passkey := ctx.String("passkey")
	if !ctx.IsSet("passkey") {
		var err error
		if passkey, err = promptNewPasskey(); err != nil {
			return err
		}
	}
	if err := domain.ValidatePasskey(passkey); err != nil {
		return err
	}

	session, _, cleanup, err := getSession()
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

	if err := session.CreateWallet(
		ctx.Context, alias, passkey, ctx.Bool("biometric"),
	); err != nil {
		return err
	}

	state := session.State()
	fmt.Println()
	fmt.Printf("Wallet %s created\n", state.Alias)
	fmt.Printf("Public key: %s\n", state.PublicKey)
	return nil
}

func statusAction(ctx *cli.Context) error {
	session, _, cleanup, err := getSession()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := session.InitializeWallet(ctx.Context); err != nil {
		return err
	}

	state := session.State()
	printJSON(map[string]interface{}{
		"initialized":       state.IsInitialized,
		"alias":             state.Alias,
		"public_key":        state.PublicKey,
		"biometric_enabled": state.BiometricEnabled,
		"store":             config.GetString(config.StoreTypeKey),
		"datadir":           config.GetDatadir(),
	})
	return nil
}

func unlockAction(ctx *cli.Context) error {
	passkey := ctx.String("passkey")
	if !ctx.IsSet("passkey") {
		var err error
		if passkey, err = readPasskey("Enter passkey: "); err != nil {
			return err
		}
	}

	session, _, cleanup, err := getSession()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := session.Unlock(ctx.Context, passkey); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Wallet is unlocked")
	return nil
}

func biometricAction(ctx *cli.Context) error {
	session, _, cleanup, err := getInitializedSession(ctx.Context)
	if err != nil {
		return err
	}
	defer cleanup()

	bio, err := config.GetBiometric()
	if err != nil {
		return err
	}

	enable := ctx.Bool("enable")
	if err := application.ToggleBiometric(
		ctx.Context, session, bio, enable,
	); err != nil {
		return err
	}

	if enable {
		fmt.Println("Biometric authentication has been activated successfully")
		return nil
	}
	fmt.Println("Biometric authentication has been disabled")
	return nil
}

func logoutAction(ctx *cli.Context) error {
	session, _, cleanup, err := getSession()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := session.Logout(ctx.Context); err != nil {
		return err
	}

	fmt.Println("Logged out, all wallet data has been deleted")
	return nil
}

func promptNewPasskey() (string, error) {
	passkey, err := readPasskey("Enter passkey: ")
	if err != nil {
		return "", err
	}
	fmt.Printf("Strength: %s\n", application.PasswordStrength(passkey))

	confirmation, err := readPasskey("Confirm passkey: ")
	if err != nil {
		return "", err
	}
	if err := domain.ValidatePasskeyConfirmation(passkey, confirmation); err != nil {
		return "", err
	}
	return passkey, nil
}
