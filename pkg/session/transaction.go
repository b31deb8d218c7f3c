package session

import (
	"github.com/pkg/errors"

	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/pkg/format"
	"github.com/status-im/status-ergo-go/pkg/stx"
	"github.com/status-im/status-ergo-go/pkg/utils"
)

type TokenAmount struct {
	ID utils.HexString `json:"id" validate:"len=32"`
	// Amount is positive for minted tokens and negative for burned ones.
	Amount int64 `json:"amount"`
}

type OutputToken struct {
	Index  int    `json:"index" validate:"min=0"`
	Amount uint64 `json:"amount"`
}

type Output struct {
	Kind      string          `json:"kind" validate:"required,oneof=change address script fee"`
	Value     uint64          `json:"value"`
	Path      string          `json:"path" validate:"omitempty,bip32"`
	PublicKey utils.HexString `json:"publicKey" validate:"omitempty,len=33"`
	TreeHash  utils.HexString `json:"treeHash" validate:"omitempty,len=32"`
	Tokens    []OutputToken   `json:"tokens" validate:"dive"`
}

type LoadTransactionRequest struct {
	Session uint8         `json:"session" validate:"required"`
	Value   uint64        `json:"value"`
	Fee     uint64        `json:"fee"`
	Change  uint64        `json:"change"`
	Tokens  []TokenAmount `json:"tokens" validate:"max=20,dive"`
	Outputs []Output      `json:"outputs" validate:"dive"`
}

func parsePath(s string) ([]uint32, error) {
	path, err := format.ParsePath(s)
	if err != nil {
		return nil, errors.Wrap(internal.ErrBIP32FormattingFailed, err.Error())
	}
	return path, nil
}

func (r *LoadTransactionRequest) toTransaction() (stx.Amounts, []stx.OutputInfo, error) {
	amounts := stx.Amounts{
		Value:        r.Value,
		Fee:          r.Fee,
		Change:       r.Change,
		Tokens:       stx.TokensTable{Tokens: make([]stx.TokenID, len(r.Tokens))},
		TokenAmounts: make([]int64, len(r.Tokens)),
	}
	for i, t := range r.Tokens {
		if err := t.ID.CopyTo(amounts.Tokens.Tokens[i][:]); err != nil {
			return amounts, nil, errors.Wrapf(err, "token %d", i)
		}
		amounts.TokenAmounts[i] = t.Amount
	}

	outputs := make([]stx.OutputInfo, len(r.Outputs))
	for i, o := range r.Outputs {
		out, err := o.toOutput(len(r.Tokens))
		if err != nil {
			return amounts, nil, errors.Wrapf(err, "output %d", i)
		}
		outputs[i] = out
	}
	return amounts, outputs, nil
}

func (o *Output) toOutput(tokens int) (stx.OutputInfo, error) {
	kind, ok := stx.ParseOutputKind(o.Kind)
	if !ok {
		return stx.OutputInfo{}, errors.Errorf("unknown output kind %q", o.Kind)
	}

	out := stx.OutputInfo{
		Kind:         kind,
		Value:        o.Value,
		TokenAmounts: make([]uint64, tokens),
		TokenUsed:    make([]bool, tokens),
	}

	var err error
	switch kind {
	case stx.OutputChange:
		out.BIP32Path, err = parsePath(o.Path)
	case stx.OutputAddress:
		err = o.PublicKey.CopyTo(out.PublicKey[:])
	case stx.OutputScript:
		err = o.TreeHash.CopyTo(out.TreeHash[:])
	}
	if err != nil {
		return out, err
	}

	for _, t := range o.Tokens {
		if t.Index >= tokens {
			return out, errors.Wrapf(internal.ErrBadTokenIndex, "index %d of %d", t.Index, tokens)
		}
		out.TokenUsed[t.Index] = true
		out.TokenAmounts[t.Index] = t.Amount
	}
	return out, nil
}
