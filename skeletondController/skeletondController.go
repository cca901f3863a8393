package skeletondController

import "github.com/godbus/dbus"

const (
	dbusPath   = "/org/openkinetics/skeletond"
	dbusDest   = "org.openkinetics.skeletond"
	methodBase = "org.openkinetics.skeletond"
)

func getDbusObj() (dbus.BusObject, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, err
	}
	obj := conn.Object(dbusDest, dbusPath)
	return obj, nil
}

// SetSeatedMode controls whether the sensor daemon tracks upper-body
// joints only. Seated mode leaves leg joints untracked which defeats
// leg based height estimation, so it is turned off before measuring.
func SetSeatedMode(seated bool) error {
	obj, err := getDbusObj()
	if err != nil {
		return err
	}
	return obj.Call(methodBase+".SetSeatedMode", 0, seated).Store()
}

// Recalibrate asks the sensor daemon to rerun its floor plane
// detection.
func Recalibrate() error {
	obj, err := getDbusObj()
	if err != nil {
		return err
	}
	return obj.Call(methodBase+".Recalibrate", 0).Store()
}
