package game

import (
	"fmt"

	"fpsctl/internal/locomotion"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// hudLines formats the debug overlay for one controller.
func hudLines(ctl *locomotion.Controller, now float64) []string {
	st := ctl.State()
	step := ctl.LastStep()
	v := ctl.Body().Velocity()
	look := ctl.Look()
	h := rl.Vector3Length(rl.Vector3{X: v.X, Z: v.Z})

	slope := "none"
	if st.SlopeAngle != locomotion.NoSlope {
		slope = fmt.Sprintf("%.1f deg", st.SlopeAngle)
	}
	lines := []string{
		fmt.Sprintf("Contact: %s", ctl.Contact()),
		fmt.Sprintf("Slope:   %s", slope),
		fmt.Sprintf("Speed:   %.2f m/s (vy %.2f)", h, v.Y),
		fmt.Sprintf("Jumps:   %d", st.JumpsRemaining),
		fmt.Sprintf("Look:    pitch %.1f yaw %.1f", look.Pitch, look.Yaw),
	}
	if step.ExtraGravity {
		lines = append(lines, "Extra gravity")
	}
	if step.Clamped {
		lines = append(lines, "Speed clamped")
	}
	if since := now - st.LastJumpTime; since >= 0 && since < 0.5 {
		lines = append(lines, "Jump!")
	}
	return lines
}

func drawHUD(lines []string, x, y int32) {
	for i, l := range lines {
		rl.DrawText(l, x, y+int32(i)*18, 16, rl.Lime)
	}
}
