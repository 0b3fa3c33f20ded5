package scripting

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/montyhall/internal/game/montyhall"
)

// decideHook is the Lua global every policy script must define:
//
//	function decide(first_choice, revealed_door) return doors.SWITCH end
//
// Doors are passed zero-based. The hook may return "stay"/"switch" or a
// boolean where true means switch. The prize door is never exposed.
const decideHook = "decide"

// Policy is a montyhall.Policy backed by a Lua script.
//
// Policy is safe for concurrent Decide calls; the single LState is serialized
// by a mutex.
type Policy struct {
	mu        sync.Mutex
	L         *lua.LState
	label     string
	instLimit int
	logger    *zap.Logger
}

// LoadPolicy executes the script at path in a fresh sandbox and binds its
// decide hook. The label is the script's global "label" string if set,
// otherwise "script <file name>".
//
// Precondition: path names a readable Lua file; logger must be non-nil.
// Postcondition: Returns a ready Policy or a non-nil error. The caller must
// Close the Policy.
func LoadPolicy(path string, instLimit int, logger *zap.Logger) (*Policy, error) {
	L := NewSandboxedState(instLimit)
	RegisterModules(L)

	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("scripting: loading %q: %w", path, err)
	}
	if fn, ok := L.GetGlobal(decideHook).(*lua.LFunction); !ok || fn == nil {
		L.Close()
		return nil, fmt.Errorf("scripting: %q does not define function %s(first_choice, revealed_door)", path, decideHook)
	}

	label := "script " + strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if s, ok := L.GetGlobal("label").(lua.LString); ok && s != "" {
		label = string(s)
	}

	return &Policy{
		L:         L,
		label:     label,
		instLimit: instLimit,
		logger:    logger,
	}, nil
}

// Label implements montyhall.Policy.
func (p *Policy) Label() string { return p.label }

// Decide calls the script's decide hook. Lua runtime errors and unrecognized
// return values are logged at Warn level and resolve to Stay; they are never
// propagated.
func (p *Policy) Decide(t montyhall.Trial) montyhall.Strategy {
	p.mu.Lock()
	defer p.mu.Unlock()

	cancel := limitInstructions(p.L, p.instLimit)
	defer cancel()

	if err := p.L.CallByParam(lua.P{
		Fn:      p.L.GetGlobal(decideHook),
		NRet:    1,
		Protect: true,
	}, lua.LNumber(t.FirstChoice), lua.LNumber(t.RevealedDoor)); err != nil {
		p.logger.Warn("scripting: Lua runtime error",
			zap.String("policy", p.label),
			zap.String("hook", decideHook),
			zap.Error(err),
		)
		return montyhall.Stay
	}

	ret := p.L.Get(-1)
	p.L.Pop(1)

	switch v := ret.(type) {
	case lua.LBool:
		if bool(v) {
			return montyhall.Switch
		}
		return montyhall.Stay
	case lua.LString:
		if s, err := montyhall.ParseStrategy(string(v)); err == nil {
			return s
		}
	}
	p.logger.Warn("scripting: unrecognized decision",
		zap.String("policy", p.label),
		zap.String("value", ret.String()),
	)
	return montyhall.Stay
}

// Close releases the Lua state.
func (p *Policy) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.L.Close()
}
