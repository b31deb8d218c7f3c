package session

import (
	goerrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/tyler-smith/go-bip39"

	"github.com/status-im/status-ergo-go/pkg/format"
)

var (
	validate = validator.New()
)

func init() {
	for tag, fn := range map[string]validator.Func{
		"mnemonic": isMnemonic,
		"bip32":    isBIP32Path,
	} {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

func validateRequest(v interface{}) error {
	err := validate.Struct(v)
	if err != nil {
		var errs validator.ValidationErrors
		if !goerrors.As(err, &errs) {
			return err
		}
		joined := make([]error, 0, len(errs))
		for _, e := range errs {
			joined = append(joined, e)
		}
		return goerrors.Join(joined...)
	}
	return nil
}

// Custom validation function to check if a string is a list of space-separated words
func isMnemonic(fl validator.FieldLevel) bool {
	mnemonic := fl.Field().String()
	return bip39.IsMnemonicValid(mnemonic)
}

func isBIP32Path(fl validator.FieldLevel) bool {
	_, err := format.ParsePath(fl.Field().String())
	return err == nil
}
