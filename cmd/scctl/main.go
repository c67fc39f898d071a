// scctl is an interactive operator control surface for a Settings record:
// a REPL that tokenizes whitespace- and quote-aware command lines with
// shlex and dispatches them to Set/Get/UpdateAxisJerk/Reset, performing the
// mm/min <-> mm/s boundary conversions operators expect at the prompt.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/google/shlex"

	"github.com/eghasemy/scurve-kernel/scurve"
)

var paramsByName = map[string]scurve.ParamTag{
	"jerk_xy":                   scurve.ParamJerkXY,
	"jerk_z":                    scurve.ParamJerkZ,
	"jerk_e":                    scurve.ParamJerkE,
	"jerk_multiplier":           scurve.ParamJerkMultiplier,
	"corner_factor":             scurve.ParamCornerFactor,
	"adaptive_enable":           scurve.ParamAdaptiveEnable,
	"junction_velocity_factor":  scurve.ParamJunctionVelocityFactor,
	"junction_jerk_multiplier":  scurve.ParamJunctionJerkMultiplier,
	"smooth_junction_angle":     scurve.ParamSmoothJunctionAngle,
	"enable_path_blending":      scurve.ParamEnablePathBlending,
	"blend_tolerance":           scurve.ParamBlendTolerance,
	"max_blend_radius":          scurve.ParamMaxBlendRadius,
	"min_blend_velocity":        scurve.ParamMinBlendVelocity,
	"blend_jerk_factor":         scurve.ParamBlendJerkFactor,
	"lookahead_blocks":          scurve.ParamLookaheadBlocks,
	"min_stop_velocity":         scurve.ParamMinStopVelocity,
	"final_decel_jerk_mult":     scurve.ParamFinalDecelJerkMultiplier,
	"stop_threshold_distance":   scurve.ParamStopThresholdDistance,
}

// velocityParams converts at the mm/min (operator) <-> mm/s (kernel)
// boundary; every other parameter is already in the kernel's native units.
var velocityParams = map[scurve.ParamTag]bool{
	scurve.ParamMinBlendVelocity: true,
	scurve.ParamMinStopVelocity:  true,
}

var axesByName = map[string]scurve.Axis{
	"x": scurve.AxisX,
	"y": scurve.AxisY,
	"z": scurve.AxisZ,
	"e": scurve.AxisE,
}

func main() {
	settings := scurve.NewSettings()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("scctl - settings control surface. Type 'help' for commands, 'quit' to exit.")
	for {
		fmt.Print("scctl> ")
		if !scanner.Scan() {
			return
		}
		fields, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}
		if len(fields) == 0 {
			continue
		}
		if !dispatch(settings, fields) {
			return
		}
	}
}

func dispatch(settings *scurve.Settings, fields []string) bool {
	var err error
	switch fields[0] {
	case "quit", "exit":
		return false
	case "help":
		printHelp()
	case "reset":
		settings.Reset()
		fmt.Println("ok")
	case "get":
		err = cmdGet(settings, fields[1:])
	case "set":
		err = cmdSet(settings, fields[1:])
	case "axis":
		err = cmdAxis(settings, fields[1:])
	default:
		err = scurve.Error("unknown command: " + fields[0])
	}
	if err != nil {
		fmt.Println("error:", err)
	}
	return true
}

func cmdGet(settings *scurve.Settings, args []string) error {
	if len(args) != 1 {
		return scurve.Error("usage: get <param>")
	}
	tag, ok := paramsByName[args[0]]
	if !ok {
		return scurve.Error("unknown parameter: " + args[0])
	}
	value := settings.Get(tag)
	if velocityParams[tag] {
		value = scurve.MMPerSecToMMPerMin(value)
	}
	fmt.Printf("%s = %g\n", args[0], value)
	return nil
}

func cmdSet(settings *scurve.Settings, args []string) error {
	if len(args) != 2 {
		return scurve.Error("usage: set <param> <value>")
	}
	tag, ok := paramsByName[args[0]]
	if !ok {
		return scurve.Error("unknown parameter: " + args[0])
	}
	value, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return scurve.Error("invalid value: " + args[1])
	}
	v := float32(value)
	if velocityParams[tag] {
		v = scurve.MMPerMinToMMPerSec(v)
	}
	if !settings.Set(tag, v) {
		return scurve.Error("rejected: " + args[0] + " out of range")
	}
	fmt.Println("ok")
	return nil
}

func cmdAxis(settings *scurve.Settings, args []string) error {
	if len(args) != 2 {
		return scurve.Error("usage: axis <x|y|z|e> <jerk_mm_per_min3>")
	}
	axis, ok := axesByName[args[0]]
	if !ok {
		return scurve.Error("unknown axis: " + args[0])
	}
	value, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return scurve.Error("invalid value: " + args[1])
	}
	jerk := scurve.MMPerMin3ToMMPerSec3(float32(value))
	if !settings.UpdateAxisJerk(axis, jerk) {
		return scurve.Error("rejected: axis " + args[0] + " jerk out of range")
	}
	fmt.Println("ok")
	return nil
}

func printHelp() {
	fmt.Println(`commands:
  get <param>               print a parameter's current value
  set <param> <value>       set a parameter
  axis <x|y|z|e> <jerk>     set an axis jerk limit (mm/min^3)
  reset                     restore documented defaults
  quit                      exit`)
}
