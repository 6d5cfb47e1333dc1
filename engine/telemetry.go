package engine

import (
	"fmt"
	"strings"
)

// CaughtNotice is appended to the telemetry once the tower holds the booster
const CaughtNotice = "Booster Caught!"

// Telemetry renders the panel text for a snapshot
func Telemetry(s Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Time: %.2f s\n", s.Time)
	fmt.Fprintf(&b, "Rocket Altitude: %.2f m\n", s.Rocket.Pos.Y())
	fmt.Fprintf(&b, "Velocity: %.2f m/s\n", s.Rocket.Vel.Y())
	fmt.Fprintf(&b, "Fuel: %.1f%%", s.DisplayFuel())
	if s.Caught() {
		b.WriteString("\n" + CaughtNotice)
	}
	return b.String()
}
