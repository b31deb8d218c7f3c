package flow

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/pkg/address"
	"github.com/status-im/status-ergo-go/pkg/format"
	"github.com/status-im/status-ergo-go/pkg/stx"
)

func badState(err error) error {
	return errors.Wrap(internal.ErrBadState, err.Error())
}

func tokenTitle(title *format.Buffer, pos int) {
	title.Set(fmt.Sprintf(tokenTitleFormat, pos+1))
}

func tokenID(text *format.Buffer, tokens *stx.TokensTable, index int) error {
	if index < 0 || index >= tokens.Len() {
		return internal.ErrBadTokenIndex
	}
	id, err := format.Base58Elided(tokens.Tokens[index][:])
	if err != nil {
		return errors.Wrap(internal.ErrBadTokenID, err.Error())
	}
	text.Set(id)
	return nil
}

// renderTxField draws one field of a transaction confirmation. The flat and
// the navigated engines both go through it.
func renderTxField(f Field, amounts *stx.Amounts, digits int, title, text *format.Buffer) error {
	switch f.Kind {
	case FieldTxValue:
		title.Set(titleTxAmount)
		text.Set(format.FixedPoint(amounts.Value, digits))
	case FieldTxFee:
		title.Set(titleTxFee)
		text.Set(format.FixedPoint(amounts.Fee, digits))
	case FieldTokenID, FieldTokenValue:
		index, ok := amounts.NonZeroTokenIndex(f.Token)
		if !ok {
			return internal.ErrBadTokenIndex
		}
		tokenTitle(title, f.Token)
		if f.Kind == FieldTokenID {
			return tokenID(text, &amounts.Tokens, index)
		}
		amount := amounts.TokenAmounts[index]
		if amount < 0 {
			text.Set(prefixBurning + format.Uint64(uint64(-amount)))
		} else {
			text.Set(prefixMinting + format.Uint64(uint64(amount)))
		}
	default:
		return badState(errors.Errorf("unexpected transaction field %s", f.Kind))
	}
	return nil
}

func renderOutputInfo(output *stx.OutputInfo, network address.Network, title, text *format.Buffer) error {
	switch output.Kind {
	case stx.OutputChange:
		title.Set(titleChange)
		path, err := format.Path(output.BIP32Path)
		if err != nil {
			return errors.Wrap(internal.ErrBIP32FormattingFailed, err.Error())
		}
		text.Set(path)
	case stx.OutputAddress:
		title.Set(titleAddress)
		raw, err := address.FromCompressedPubKey(network, output.PublicKey)
		if err != nil {
			return errors.Wrap(internal.ErrAddressGenerationFailed, err.Error())
		}
		s, err := format.Base58Elided(raw[:])
		if err != nil {
			return errors.Wrap(internal.ErrAddressFormattingFailed, err.Error())
		}
		text.Set(s)
	case stx.OutputScript:
		title.Set(titleScript)
		s, err := format.Base58Elided(output.TreeHash[:])
		if err != nil {
			return errors.Wrap(internal.ErrAddressFormattingFailed, err.Error())
		}
		text.Set(s)
	case stx.OutputMinersFee:
		title.Set(titleFee)
		text.Set(textMinersFee)
	default:
		return badState(errors.Errorf("unexpected output kind %d", output.Kind))
	}
	return nil
}

func renderOutputField(f Field, output *stx.OutputInfo, network address.Network, digits int, title, text *format.Buffer) error {
	switch f.Kind {
	case FieldOutputInfo:
		return renderOutputInfo(output, network, title, text)
	case FieldOutputValue:
		title.Set(titleOutputValue)
		text.Set(format.FixedPoint(output.Value, digits))
	case FieldTokenID, FieldTokenValue:
		index, ok := output.UsedTokenIndex(f.Token)
		if !ok {
			return internal.ErrBadTokenIndex
		}
		tokenTitle(title, f.Token)
		if f.Kind == FieldTokenID {
			return tokenID(text, output.Tokens, index)
		}
		text.Set(prefixTokenValue + format.Uint64(output.TokenAmount(index)))
	default:
		return badState(errors.Errorf("unexpected output field %s", f.Kind))
	}
	return nil
}
