package session

import (
	"github.com/gorilla/rpc"
	gorillajson "github.com/gorilla/rpc/json"
)

var globalErgoService ErgoService

func CreateRPCServer() (*rpc.Server, error) {
	return createRPCServer(&globalErgoService)
}

func createRPCServer(service *ErgoService) (*rpc.Server, error) {
	rpcServer := rpc.NewServer()
	rpcServer.RegisterCodec(gorillajson.NewCodec(), "application/json")
	err := rpcServer.RegisterTCPService(service, "ergo")
	return rpcServer, err
}
