package sh

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/engine"
	"github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/protocol"
)

var commands = []*ishell.Cmd{
	&SpeedCmd,
	&DirCmd,
	&BellCmd,
	&HornCmd,
	&SmokeCmd,
	&PowerCmd,
	&SelectCmd,
	&WhistleCmd,
	&StatusCmd,
	&ResetCmd,
	&RawCmd,
}

// sendCommand formats and sends one CMD line.
func sendCommand(c *ishell.Context, typ protocol.Type, eng int, value uint16) {
	s := ShellFrom(c)
	if err := s.Send(fmt.Sprintf("%s%d:%d:%d", protocol.CommandPrefix, typ, eng, value)); err != nil {
		c.Err(err)
	}
}

func parseEngine(c *ishell.Context, arg string) (int, bool) {
	eng, err := strconv.Atoi(arg)
	if err != nil || eng < 0 || eng >= engine.MaxEngines {
		c.Err(fmt.Errorf("engine must be 0-%d", engine.MaxEngines-1))
		return 0, false
	}
	return eng, true
}

func parseOnOff(c *ishell.Context, arg string) (uint16, bool) {
	switch strings.ToLower(arg) {
	case "on", "1":
		return 1, true
	case "off", "0":
		return 0, true
	}
	c.Err(fmt.Errorf("expected on or off, got %q", arg))
	return 0, false
}

// onOffCommand builds a command taking ENGINE on|off arguments.
func onOffCommand(typ protocol.Type) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if len(c.Args) != 2 {
			c.Err(fmt.Errorf("usage: %s ENGINE on|off", c.Cmd.Name))
			return
		}
		eng, ok := parseEngine(c, c.Args[0])
		if !ok {
			return
		}
		val, ok := parseOnOff(c, c.Args[1])
		if !ok {
			return
		}
		sendCommand(c, typ, eng, val)
	}
}

var (
	// SpeedCmd sets engine speed.
	SpeedCmd = ishell.Cmd{
		Name:    "speed",
		Aliases: []string{"s"},
		Help:    "ENGINE SPEED(0-31)",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(fmt.Errorf("usage: speed ENGINE SPEED"))
				return
			}
			eng, ok := parseEngine(c, c.Args[0])
			if !ok {
				return
			}
			speed, err := strconv.ParseUint(c.Args[1], 10, 16)
			if err != nil || speed > protocol.MaxSpeed {
				c.Err(fmt.Errorf("speed must be 0-%d", protocol.MaxSpeed))
				return
			}
			sendCommand(c, protocol.TypeSpeed, eng, uint16(speed))
		},
	}

	// DirCmd sets engine direction.
	DirCmd = ishell.Cmd{
		Name:    "dir",
		Aliases: []string{"d"},
		Help:    "ENGINE f|r",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(fmt.Errorf("usage: dir ENGINE f|r"))
				return
			}
			eng, ok := parseEngine(c, c.Args[0])
			if !ok {
				return
			}
			var val uint16
			switch strings.ToLower(c.Args[1]) {
			case "f", "forward":
				val = 1
			case "r", "reverse":
				val = 0
			default:
				c.Err(fmt.Errorf("expected f or r, got %q", c.Args[1]))
				return
			}
			sendCommand(c, protocol.TypeDirection, eng, val)
		},
	}

	// BellCmd switches the bell via the function sub-command.
	BellCmd = ishell.Cmd{
		Name: "bell",
		Help: "ENGINE on|off",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(fmt.Errorf("usage: bell ENGINE on|off"))
				return
			}
			eng, ok := parseEngine(c, c.Args[0])
			if !ok {
				return
			}
			val, ok := parseOnOff(c, c.Args[1])
			if !ok {
				return
			}
			sub := protocol.FuncBellOff
			if val > 0 {
				sub = protocol.FuncBellOn
			}
			sendCommand(c, protocol.TypeFunction, eng, sub)
		},
	}

	// HornCmd sounds the horn via the function sub-command.
	HornCmd = ishell.Cmd{
		Name: "horn",
		Help: "ENGINE",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("usage: horn ENGINE"))
				return
			}
			eng, ok := parseEngine(c, c.Args[0])
			if !ok {
				return
			}
			sendCommand(c, protocol.TypeFunction, eng, protocol.FuncHorn)
		},
	}

	// SmokeCmd switches the smoke unit.
	SmokeCmd = ishell.Cmd{
		Name: "smoke",
		Help: "ENGINE on|off",
		Func: onOffCommand(protocol.TypeSmoke),
	}

	// PowerCmd switches engine power.
	PowerCmd = ishell.Cmd{
		Name: "power",
		Help: "ENGINE on|off",
		Func: onOffCommand(protocol.TypeEnginePower),
	}

	// SelectCmd selects the engine on the control surface.
	SelectCmd = ishell.Cmd{
		Name: "select",
		Help: "ENGINE",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("usage: select ENGINE"))
				return
			}
			eng, ok := parseEngine(c, c.Args[0])
			if !ok {
				return
			}
			sendCommand(c, protocol.TypeEngineSelect, eng, 1)
		},
	}

	// WhistleCmd drives the prototype whistle.
	WhistleCmd = ishell.Cmd{
		Name: "whistle",
		Help: "ENGINE on|off",
		Func: onOffCommand(protocol.TypeWhistle),
	}

	// StatusCmd requests a status dump.
	StatusCmd = ishell.Cmd{
		Name: "status",
		Func: func(c *ishell.Context) {
			if err := ShellFrom(c).Send(protocol.LineStatus); err != nil {
				c.Err(err)
			}
		},
	}

	// ResetCmd requests a state reset.
	ResetCmd = ishell.Cmd{
		Name: "reset",
		Func: func(c *ishell.Context) {
			if err := ShellFrom(c).Send(protocol.LineReset); err != nil {
				c.Err(err)
			}
		},
	}

	// RawCmd sends a raw protocol line.
	RawCmd = ishell.Cmd{
		Name: "raw",
		Help: "LINE",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(fmt.Errorf("usage: raw LINE"))
				return
			}
			if err := ShellFrom(c).Send(strings.Join(c.Args, " ")); err != nil {
				c.Err(err)
			}
		},
	}
)
