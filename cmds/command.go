package cmds

import (
	"fmt"
	"reflect"
)

// Command is a word on the command line. Func consumes the following words as its
// arguments, Subs become available to the words after it.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

var errorType = reflect.TypeFor[error]()

func Func(fn any) *Command {
	value := reflect.ValueOf(fn)
	if value.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	switch typ := value.Type(); {
	case typ.NumOut() > 1:
		panic(fmt.Errorf("must return 0 or 1 value, got %v", typ))
	case typ.NumOut() == 1 && typ.Out(0) != errorType:
		panic(fmt.Errorf("must return error, got %v", typ))
	}
	return &Command{
		Func: value,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}
