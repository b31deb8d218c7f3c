package session

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/status-im/status-ergo-go/pkg/address"
	"github.com/status-im/status-ergo-go/pkg/device"
	"github.com/status-im/status-ergo-go/pkg/grants"
	"github.com/status-im/status-ergo-go/pkg/keystore"
)

var (
	errErgoServiceNotStarted = errors.New("ergo service not started")
	errErgoServiceStarted    = errors.New("ergo service already started")
)

type ErgoService struct {
	device   *device.Device
	keystore *keystore.Keystore
	grants   *grants.Store
}

type StartRequest struct {
	Network        string `json:"network" validate:"omitempty,oneof=mainnet testnet"`
	FractionDigits *int   `json:"fractionDigits" validate:"omitempty,min=0,max=19"`
	PageWidth      int    `json:"pageWidth" validate:"omitempty,min=8"`
	GrantsFilePath string `json:"grantsFilePath"`
	LogEnabled     bool   `json:"logEnabled"`
	LogFilePath    string `json:"logFilePath"`
}

func (s *ErgoService) Start(args *StartRequest, reply *struct{}) error {
	if s.device != nil {
		return errErgoServiceStarted
	}
	if err := validateRequest(args); err != nil {
		return err
	}

	network := address.Mainnet
	if args.Network != "" {
		var err error
		if network, err = address.ParseNetwork(args.Network); err != nil {
			return err
		}
	}

	store, err := grants.NewStore(args.GrantsFilePath)
	if err != nil {
		return errors.Wrap(err, "failed to create grants store")
	}

	opts := []device.Option{
		device.WithLogging(args.LogEnabled, args.LogFilePath),
		device.WithNetwork(network),
		device.WithGrants(store),
	}
	if args.FractionDigits != nil {
		opts = append(opts, device.WithFractionDigits(*args.FractionDigits))
	}
	if args.PageWidth > 0 {
		opts = append(opts, device.WithPageWidth(args.PageWidth))
	}

	ks := keystore.New()
	opts = append(opts, device.WithKeystore(ks))

	d, err := device.New(opts...)
	if err != nil {
		return err
	}

	s.device, s.keystore, s.grants = d, ks, store
	zap.L().Info("ergo service started", zap.Stringer("network", network))
	return nil
}

func (s *ErgoService) Stop(args *struct{}, reply *struct{}) error {
	if s.keystore != nil {
		s.keystore.Clear()
	}
	s.device, s.keystore, s.grants = nil, nil, nil
	return nil
}

// GetStatus should not be really used, as Status is pushed with `status-changed` signal.
// But it's handy to have for debugging purposes.
func (s *ErgoService) GetStatus(args *struct{}, reply *device.Status) error {
	if s.device == nil {
		return errErgoServiceNotStarted
	}

	*reply = s.device.Status()
	return nil
}

type LoadMnemonicRequest struct {
	Mnemonic   string `json:"mnemonic" validate:"required,mnemonic"`
	Passphrase string `json:"passphrase"`
}

func (s *ErgoService) LoadMnemonic(args *LoadMnemonicRequest, reply *struct{}) error {
	if s.device == nil {
		return errErgoServiceNotStarted
	}
	if err := validateRequest(args); err != nil {
		return err
	}
	return s.keystore.LoadMnemonic(args.Mnemonic, args.Passphrase)
}

type GenerateMnemonicRequest struct {
	Length int `json:"length" validate:"omitempty,oneof=12 15 18 21 24"`
}

type GenerateMnemonicResponse struct {
	Mnemonic string `json:"mnemonic"`
}

func (s *ErgoService) GenerateMnemonic(args *GenerateMnemonicRequest, reply *GenerateMnemonicResponse) error {
	if err := validateRequest(args); err != nil {
		return err
	}

	length := args.Length
	if length == 0 {
		length = 24
	}
	mnemonic, err := keystore.GenerateMnemonic(length / 3 * 32)
	if err != nil {
		return err
	}
	reply.Mnemonic = mnemonic
	return nil
}

type PressRequest struct {
	Button string `json:"button" validate:"required,oneof=left right both"`
}

func (s *ErgoService) Press(args *PressRequest, reply *device.Status) error {
	if s.device == nil {
		return errErgoServiceNotStarted
	}
	if err := validateRequest(args); err != nil {
		return err
	}
	if err := s.device.Press(device.Button(args.Button)); err != nil {
		return err
	}
	*reply = s.device.Status()
	return nil
}

type StartSigningRequest struct {
	AppToken uint32 `json:"appToken"`
}

type StartSigningResponse struct {
	Session uint8 `json:"session"`
}

// StartSigning shows the session confirmation. The session id in the reply
// is only usable once the holder approved it; the approval itself arrives
// as a `response` signal.
func (s *ErgoService) StartSigning(args *StartSigningRequest, reply *StartSigningResponse) error {
	if s.device == nil {
		return errErgoServiceNotStarted
	}

	session, err := s.device.StartSigning(args.AppToken)
	if err != nil {
		return err
	}
	reply.Session = session
	return nil
}

func (s *ErgoService) LoadTransaction(args *LoadTransactionRequest, reply *struct{}) error {
	if s.device == nil {
		return errErgoServiceNotStarted
	}
	if err := validateRequest(args); err != nil {
		return err
	}

	amounts, outputs, err := args.toTransaction()
	if err != nil {
		return err
	}
	return s.device.LoadTransaction(args.Session, amounts, outputs)
}

type ConfirmOutputRequest struct {
	Session uint8 `json:"session" validate:"required"`
	Index   int   `json:"index" validate:"min=0"`
}

func (s *ErgoService) ConfirmOutput(args *ConfirmOutputRequest, reply *struct{}) error {
	if s.device == nil {
		return errErgoServiceNotStarted
	}
	if err := validateRequest(args); err != nil {
		return err
	}
	return s.device.ConfirmOutput(args.Session, args.Index)
}

type ConfirmTransactionRequest struct {
	Session uint8 `json:"session" validate:"required"`
	// Output, when set, is shown in front of the transaction totals.
	Output *int `json:"output" validate:"omitempty,min=0"`
	Legacy bool `json:"legacy"`
}

func (s *ErgoService) ConfirmTransaction(args *ConfirmTransactionRequest, reply *struct{}) error {
	if s.device == nil {
		return errErgoServiceNotStarted
	}
	if err := validateRequest(args); err != nil {
		return err
	}

	if args.Legacy {
		if args.Output != nil {
			return errors.New("legacy confirmation cannot show an output")
		}
		return s.device.ConfirmLegacyTransaction(args.Session)
	}

	output := -1
	if args.Output != nil {
		output = *args.Output
	}
	return s.device.ConfirmTransaction(args.Session, output)
}

type ConfirmAddressRequest struct {
	Path string `json:"path" validate:"required,bip32"`
}

func (s *ErgoService) ConfirmAddress(args *ConfirmAddressRequest, reply *struct{}) error {
	if s.device == nil {
		return errErgoServiceNotStarted
	}
	if err := validateRequest(args); err != nil {
		return err
	}

	path, err := parsePath(args.Path)
	if err != nil {
		return err
	}
	return s.device.ConfirmAddress(path)
}

type ListGrantsResponse struct {
	Grants []grants.Grant `json:"grants"`
}

func (s *ErgoService) ListGrants(args *struct{}, reply *ListGrantsResponse) error {
	if s.grants == nil {
		return errErgoServiceNotStarted
	}
	reply.Grants = s.grants.List()
	return nil
}

type RevokeGrantRequest struct {
	AppToken uint32 `json:"appToken" validate:"required"`
}

func (s *ErgoService) RevokeGrant(args *RevokeGrantRequest, reply *struct{}) error {
	if s.grants == nil {
		return errErgoServiceNotStarted
	}
	if err := validateRequest(args); err != nil {
		return err
	}
	return s.grants.Delete(args.AppToken)
}
