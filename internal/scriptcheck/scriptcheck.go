// Package scriptcheck validates the syntax of script code embedded in dialog
// actions before it is written to an export.
package scriptcheck

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Checker reports syntax problems in a script. A nil error means the script
// compiles or the language is not checked.
type Checker interface {
	Check(name string, code string) error
}

// ForLanguage returns the checker for a project's script language, or nil when
// the language has none.
func ForLanguage(lang string) Checker {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "lua":
		return Lua{}
	default:
		return nil
	}
}

// Lua compiles scripts in a bare VM without running them.
type Lua struct{}

func (Lua) Check(name string, code string) error {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	if _, err := L.LoadString(code); err != nil {
		return fmt.Errorf("script %s: %w", name, err)
	}
	return nil
}
