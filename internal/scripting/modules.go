package scripting

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/cory-johannsen/montyhall/internal/game/door"
)

// RegisterModules registers the doors table into L.
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: doors.count, doors.STAY and doors.SWITCH are defined in L.
func RegisterModules(L *lua.LState) {
	doors := L.NewTable()
	L.SetField(doors, "count", lua.LNumber(door.Count))
	L.SetField(doors, "STAY", lua.LString("stay"))
	L.SetField(doors, "SWITCH", lua.LString("switch"))
	L.SetGlobal("doors", doors)
}
