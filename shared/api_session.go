package main

import "C"
import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"

	"github.com/gorilla/rpc"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/status-im/status-ergo-go/pkg/session"
)

var (
	globalRPCServer *rpc.Server
)

func marshalError(err error) *C.char {
	response := struct {
		Error string `json:"error"`
	}{
		Error: "",
	}
	if err != nil {
		response.Error = err.Error()
	}
	responseBytes, _ := json.Marshal(response)
	return C.CString(string(responseBytes))
}

func logPanic() {
	err := recover()
	if err != nil {
		fmt.Printf("Panic: %v\n", err)
	}
}

//export ErgoInitializeRPC
func ErgoInitializeRPC() *C.char {
	defer logPanic()

	if globalRPCServer != nil {
		return marshalError(errors.New("RPC server already initialized"))
	}

	rpcServer, err := session.CreateRPCServer()
	if err != nil {
		return marshalError(err)
	}
	globalRPCServer = rpcServer

	zap.L().Info("ErgoInitializeRPC - ok")
	return marshalError(nil)
}

//export ErgoCallRPC
func ErgoCallRPC(payload *C.char) *C.char {
	defer logPanic()

	if globalRPCServer == nil {
		return marshalError(errors.New("RPC server not initialized"))
	}

	body, err := callRPC(globalRPCServer, []byte(C.GoString(payload)))
	if err != nil {
		return marshalError(err)
	}
	return C.CString(string(body))
}

// callRPC serves payload as if it was posted to the /rpc endpoint.
func callRPC(server *rpc.Server, payload []byte) ([]byte, error) {
	req := httptest.NewRequest("POST", "/rpc", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	server.ServeHTTP(rr, req)

	resp := rr.Result()
	defer resp.Body.Close()

	zap.L().Debug("rpc call served", zap.String("status", resp.Status))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "internal error reading response body")
	}
	return body, nil
}
