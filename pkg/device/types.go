package device

import (
	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/pkg/utils"
	"github.com/status-im/status-ergo-go/pkg/ux"
)

// Signal types sent by the device.
const (
	ScreenChanged = "screen-changed"
	StatusChanged = "status-changed"
	ResponseSent  = "response"
)

type Button string

const (
	ButtonLeft  Button = "left"
	ButtonRight Button = "right"
	ButtonBoth  Button = "both"
)

// Response is what the device answers a confirmation request with once the
// holder decided, or a render fault aborted it.
type Response struct {
	SW   internal.SW     `json:"-"`
	Code string          `json:"sw"`
	Data utils.HexString `json:"data,omitempty"`
}

func newResponse(sw internal.SW, data []byte) Response {
	return Response{SW: sw, Code: sw.String(), Data: data}
}

type Status struct {
	Busy       bool      `json:"busy"`
	AppSession uint32    `json:"appSession"`
	Session    uint8     `json:"session"`
	State      string    `json:"state"`
	Screen     ux.Screen `json:"screen"`
}
