package console

import (
	"errors"
	"fmt"
	"strings"
)

func (c *Console) registerBuiltins() {
	c.RegisterFunc("help", "List commands", c.cmdHelp)
	c.RegisterFunc("clear", "Clear the scrollback", func([]string) (string, error) {
		c.ClearLines()
		return "", nil
	})
	c.RegisterFunc("vars", "Show all watched values", c.cmdVars)
	c.RegisterFunc("inspect", "inspect <name>: show one value", c.cmdInspect)
	c.RegisterFunc("watch", "watch <name>: pin a value to the overlay", func(args []string) (string, error) {
		return c.setWatched(args, true)
	})
	c.RegisterFunc("unwatch", "unwatch <name>: unpin a value", func(args []string) (string, error) {
		return c.setWatched(args, false)
	})
	c.RegisterFunc("history", "Show submitted commands", func([]string) (string, error) {
		lines := c.recall.Items()
		for i := range lines {
			lines[i] = fmt.Sprintf("%3d  %s", i+1, lines[i])
		}
		return strings.Join(lines, "\n"), nil
	})
}

func (c *Console) cmdHelp([]string) (string, error) {
	for _, spec := range c.Commands() {
		c.Printf("%-10s %s", spec.Name, spec.Description)
	}
	return "", nil
}

func (c *Console) cmdVars([]string) (string, error) {
	all := c.watches.All()
	if len(all) == 0 {
		return "no variables", nil
	}
	for _, v := range all {
		mark := " "
		if v.Watched {
			mark = "*"
		}
		c.Printf("%s %s = %s", mark, v.Name, Format(v.Value))
	}
	return "", nil
}

func (c *Console) cmdInspect(args []string) (string, error) {
	if len(args) != 1 {
		return "usage: inspect <name>", nil
	}
	v, ok := c.watches.Get(args[0])
	if !ok {
		return fmt.Sprintf("no variable named %q", args[0]), nil
	}
	return args[0] + " = " + Format(v), nil
}

// setWatched reports configuration problems as normal output, not errors.
func (c *Console) setWatched(args []string, on bool) (string, error) {
	if len(args) != 1 {
		return "usage: watch|unwatch <name>", nil
	}
	var err error
	if on {
		err = c.watches.Watch(args[0])
	} else {
		err = c.watches.Unwatch(args[0])
	}
	if errors.Is(err, ErrUnknownVariable) {
		return fmt.Sprintf("no variable named %q", args[0]), nil
	}
	if on {
		return "watching " + args[0], nil
	}
	return "stopped watching " + args[0], nil
}
