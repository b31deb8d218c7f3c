package main

/*
#include <stdlib.h>

typedef void (*signalCallback)(const char *);

static void callSignalCallback(void *cb, const char *data) {
	((signalCallback)cb)(data);
}
*/
import "C"

import (
	"unsafe"

	"github.com/status-im/status-ergo-go/signal"
)

// setSignalCallback delivers every signal to a C function taking the JSON
// envelope. A nil callback drops signals.
func setSignalCallback(cb unsafe.Pointer) {
	if cb == nil {
		signal.SetSignalHandler(nil)
		return
	}

	signal.SetSignalHandler(func(data []byte) {
		str := C.CString(string(data))
		defer C.free(unsafe.Pointer(str))
		C.callSignalCallback(cb, str)
	})
}
