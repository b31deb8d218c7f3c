package device

import (
	"go.uber.org/zap"

	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/pkg/ux"
)

const (
	menuReady = "is ready"
	menuAbout = "About"
	menuQuit  = "Quit"
	menuInfo  = internal.AppName + " App"
	menuVer   = "Version"
	menuBack  = "Back"
)

func (d *Device) showScreens(steps ...ux.Step) error {
	d.buf.Reset()
	for _, s := range steps {
		if err := d.buf.AddScreen(s); err != nil {
			return err
		}
	}
	if err := d.engine.DisplayScreens(&d.buf, d.rt); err != nil {
		return err
	}
	d.busy = false
	d.publishStatus()
	return nil
}

func (d *Device) mainMenu() error {
	return d.showScreens(
		ux.TextStep(ux.IconApp, internal.AppName, menuReady),
		ux.ActionStep(ux.IconCertificate, menuAbout, "", d.menuAction(d.aboutMenu)),
		ux.ActionStep(ux.IconDashboard, menuQuit, "", d.quit),
	)
}

func (d *Device) aboutMenu() error {
	return d.showScreens(
		ux.TextStep(ux.IconNone, menuInfo, internal.Copyright),
		ux.TextStep(ux.IconNone, menuVer, internal.AppVersion),
		ux.ActionStep(ux.IconBack, menuBack, "", d.menuAction(d.mainMenu)),
	)
}

func (d *Device) menuAction(show func() error) func() {
	return func() {
		if err := show(); err != nil {
			d.logger.Error("failed to show menu", zap.Error(err))
		}
	}
}

func (d *Device) quit() {
	d.logger.Info("quit selected")
	d.exit()
}
