package flow

import (
	"go.uber.org/zap"

	"github.com/status-im/status-ergo-go/pkg/ux"
)

// ApproveReject returns the two terminal steps of a confirmation. Whichever
// is selected first runs onDecision; later selections of either are ignored.
func ApproveReject(logger *zap.Logger, onDecision func(approved bool)) (approve, reject ux.Step) {
	decided := false
	decide := func(approved bool) func() {
		return func() {
			if decided {
				logger.Debug("decision already taken", zap.Bool("approved", approved))
				return
			}
			decided = true
			onDecision(approved)
		}
	}

	approve = ux.ActionStep(ux.IconValidate, titleApprove, "", decide(true))
	reject = ux.ActionStep(ux.IconCrossmark, titleReject, "", decide(false))
	return approve, reject
}
