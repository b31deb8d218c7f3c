package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/status-ergo-go/pkg/device"
	"github.com/status-im/status-ergo-go/signal"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

type rpcClient struct {
	t      *testing.T
	server *rpc.Server
}

func newClient(t *testing.T) *rpcClient {
	server, err := createRPCServer(&ErgoService{})
	require.NoError(t, err)
	return &rpcClient{t: t, server: server}
}

func (c *rpcClient) call(method string, params interface{}, result interface{}) error {
	if params == nil {
		params = struct{}{}
	}
	body, err := json.Marshal(map[string]interface{}{
		"method": "ergo." + method,
		"params": []interface{}{params},
		"id":     1,
	})
	require.NoError(c.t, err)

	req := httptest.NewRequest("POST", "/rpc", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	c.server.ServeHTTP(rr, req)

	var resp struct {
		Result json.RawMessage `json:"result"`
		Error  interface{}     `json:"error"`
	}
	require.NoError(c.t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	if resp.Error != nil {
		return fmt.Errorf("%v", resp.Error)
	}
	if result != nil {
		require.NoError(c.t, json.Unmarshal(resp.Result, result))
	}
	return nil
}

func (c *rpcClient) pressUntil(title string) device.Status {
	var st device.Status
	require.NoError(c.t, c.call("GetStatus", nil, &st))
	for i := 0; i < 24 && st.Screen.Title != title; i++ {
		require.NoError(c.t, c.call("Press", PressRequest{Button: "right"}, &st))
	}
	require.Equal(c.t, title, st.Screen.Title)
	return st
}

type signals struct {
	types     []string
	responses []device.Response
}

func captureSignals(t *testing.T) *signals {
	s := &signals{}
	signal.SetSignalHandler(func(data []byte) {
		var env struct {
			Type  string          `json:"type"`
			Event json.RawMessage `json:"event"`
		}
		require.NoError(t, json.Unmarshal(data, &env))
		s.types = append(s.types, env.Type)
		if env.Type == device.ResponseSent {
			var r device.Response
			require.NoError(t, json.Unmarshal(env.Event, &r))
			s.responses = append(s.responses, r)
		}
	})
	t.Cleanup(func() { signal.SetSignalHandler(nil) })
	return s
}

func TestNotStarted(t *testing.T) {
	c := newClient(t)
	err := c.call("GetStatus", nil, &device.Status{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not started")
}

func TestStartValidation(t *testing.T) {
	c := newClient(t)
	assert.Error(t, c.call("Start", StartRequest{Network: "regtest"}, nil))

	require.NoError(t, c.call("Start", StartRequest{Network: "testnet"}, nil))
	assert.Error(t, c.call("Start", StartRequest{}, nil))
	assert.Error(t, c.call("LoadMnemonic", LoadMnemonicRequest{Mnemonic: "not a mnemonic"}, nil))
	assert.Error(t, c.call("Press", PressRequest{Button: "up"}, &device.Status{}))
	assert.Error(t, c.call("ConfirmAddress", ConfirmAddressRequest{Path: "44'/429'"}, nil))
}

func TestGenerateMnemonic(t *testing.T) {
	c := newClient(t)

	var resp GenerateMnemonicResponse
	require.NoError(t, c.call("GenerateMnemonic", GenerateMnemonicRequest{Length: 12}, &resp))
	assert.Len(t, strings.Fields(resp.Mnemonic), 12)

	assert.Error(t, c.call("GenerateMnemonic", GenerateMnemonicRequest{Length: 13}, &resp))
}

func TestSigningOverRPC(t *testing.T) {
	sig := captureSignals(t)
	c := newClient(t)
	digits := 8
	grantsPath := filepath.Join(t.TempDir(), "grants.json")
	require.NoError(t, c.call("Start", StartRequest{FractionDigits: &digits, GrantsFilePath: grantsPath}, nil))

	var started StartSigningResponse
	require.NoError(t, c.call("StartSigning", StartSigningRequest{AppToken: 0xCAFE}, &started))
	c.pressUntil("Approve")
	require.NoError(t, c.call("Press", PressRequest{Button: "both"}, &device.Status{}))

	require.Len(t, sig.responses, 1)
	assert.Equal(t, "0x9000", sig.responses[0].Code)
	assert.Equal(t, []byte{started.Session}, []byte(sig.responses[0].Data))
	assert.Contains(t, sig.types, device.ScreenChanged)
	assert.Contains(t, sig.types, device.StatusChanged)

	var grantList ListGrantsResponse
	require.NoError(t, c.call("ListGrants", nil, &grantList))
	require.Len(t, grantList.Grants, 1)
	assert.Equal(t, uint32(0xCAFE), grantList.Grants[0].Token)

	id := strings.Repeat("aa", 32)
	load := fmt.Sprintf(`{"session":%d,"value":150000000,"fee":1000000,
		"tokens":[{"id":"%s","amount":5}],
		"outputs":[{"kind":"change","value":100,"path":"m/44'/429'/0'/1/0","tokens":[{"index":0,"amount":5}]}]}`,
		started.Session, id)
	var req LoadTransactionRequest
	require.NoError(t, json.Unmarshal([]byte(load), &req))
	require.NoError(t, c.call("LoadTransaction", req, nil))

	output := 0
	require.NoError(t, c.call("ConfirmTransaction", ConfirmTransactionRequest{Session: started.Session, Output: &output}, nil))

	var st device.Status
	require.NoError(t, c.call("Press", PressRequest{Button: "right"}, &st))
	assert.Equal(t, "Change", st.Screen.Title)
	assert.Equal(t, "m/44'/429'/0'/1/0", st.Screen.Text)

	st = c.pressUntil("Transaction Amount")
	assert.Equal(t, "1.5", st.Screen.Text)

	c.pressUntil("Reject")
	require.NoError(t, c.call("Press", PressRequest{Button: "both"}, &st))
	require.Len(t, sig.responses, 2)
	assert.Equal(t, "0x6985", sig.responses[1].Code)
	assert.Equal(t, uint8(0), st.Session)

	require.Error(t, c.call("RevokeGrant", RevokeGrantRequest{}, nil))
	require.NoError(t, c.call("RevokeGrant", RevokeGrantRequest{AppToken: 0xCAFE}, nil))
	require.NoError(t, c.call("ListGrants", nil, &grantList))
	assert.Empty(t, grantList.Grants)
}

func TestConfirmAddressOverRPC(t *testing.T) {
	sig := captureSignals(t)
	c := newClient(t)
	require.NoError(t, c.call("Start", StartRequest{Network: "testnet"}, nil))
	require.NoError(t, c.call("LoadMnemonic", LoadMnemonicRequest{Mnemonic: testMnemonic}, nil))

	require.NoError(t, c.call("ConfirmAddress", ConfirmAddressRequest{Path: "m/44'/429'/0'/0/0"}, nil))
	c.pressUntil("Approve")
	require.NoError(t, c.call("Press", PressRequest{Button: "both"}, &device.Status{}))

	require.Len(t, sig.responses, 1)
	assert.Equal(t, "0x9000", sig.responses[0].Code)
	assert.Len(t, sig.responses[0].Data, 38)
}

func TestLoadTransactionConversion(t *testing.T) {
	req := LoadTransactionRequest{
		Session: 1,
		Tokens:  []TokenAmount{{ID: make([]byte, 32), Amount: -2}},
		Outputs: []Output{{Kind: "fee", Tokens: []OutputToken{{Index: 1, Amount: 1}}}},
	}
	require.NoError(t, validateRequest(&req))
	_, _, err := req.toTransaction()
	assert.Error(t, err)

	req.Outputs[0].Tokens[0].Index = 0
	amounts, outputs, err := req.toTransaction()
	require.NoError(t, err)
	assert.Equal(t, 1, amounts.NonZeroTokensCount())
	assert.Nil(t, outputs[0].Tokens)
	outputs[0].Tokens = &amounts.Tokens
	assert.Equal(t, 1, outputs[0].UsedTokensCount())

	req.Outputs = []Output{{Kind: "address"}}
	_, _, err = req.toTransaction()
	assert.Error(t, err)

	req.Outputs = []Output{{Kind: "address", PublicKey: make([]byte, 20)}}
	assert.Error(t, validateRequest(&req))
}

func TestLoadTransactionRequestSurvivesJSON(t *testing.T) {
	req := LoadTransactionRequest{
		Session: 1,
		Value:   150000000,
		Fee:     1000000,
		Tokens:  []TokenAmount{{ID: make([]byte, 32), Amount: 5}},
		Outputs: []Output{
			{Kind: "fee", Value: 1000000},
			{Kind: "change", Value: 100, Path: "m/44'/429'/0'/1/0", Tokens: []OutputToken{{Index: 0, Amount: 5}}},
			{Kind: "address", Value: 10, PublicKey: make([]byte, 33)},
		},
	}

	body, err := json.Marshal(req)
	require.NoError(t, err)
	var decoded LoadTransactionRequest
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.NoError(t, validateRequest(&decoded))

	_, outputs, err := decoded.toTransaction()
	require.NoError(t, err)
	require.Len(t, outputs, 3)

	var raw LoadTransactionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"session":1,"outputs":[{"kind":"fee","publicKey":null,"treeHash":null}]}`), &raw))
	require.NoError(t, validateRequest(&raw))
}
