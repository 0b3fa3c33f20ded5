package scripting_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/montyhall/internal/game/door"
	"github.com/cory-johannsen/montyhall/internal/game/montyhall"
	"github.com/cory-johannsen/montyhall/internal/scripting"
)

func writeTempLua(t testing.TB, filename, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), filename)
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func loadPolicy(t testing.TB, src string, instLimit int) (*scripting.Policy, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	path := writeTempLua(t, "policy.lua", src)
	p, err := scripting.LoadPolicy(path, instLimit, zap.New(core))
	require.NoError(t, err)
	t.Cleanup(p.Close)
	return p, logs
}

var sampleTrial = montyhall.Trial{PrizeDoor: 0, FirstChoice: 1, RevealedDoor: 2}

func TestLoadPolicy_StringDecision(t *testing.T) {
	p, logs := loadPolicy(t, `
		function decide(first, revealed)
			return doors.SWITCH
		end
	`, 0)
	assert.Equal(t, montyhall.Switch, p.Decide(sampleTrial))
	assert.Zero(t, logs.Len())
}

func TestLoadPolicy_BoolDecision(t *testing.T) {
	p, _ := loadPolicy(t, `
		function decide(first, revealed)
			return first == 0
		end
	`, 0)
	assert.Equal(t, montyhall.Stay, p.Decide(sampleTrial))
	assert.Equal(t, montyhall.Switch, p.Decide(montyhall.Trial{PrizeDoor: 1, FirstChoice: 0, RevealedDoor: 2}))
}

func TestLoadPolicy_ReceivesZeroBasedDoors(t *testing.T) {
	p, _ := loadPolicy(t, `
		function decide(first, revealed)
			if first == 1 and revealed == 2 and doors.count == 3 then
				return "switch"
			end
			return "stay"
		end
	`, 0)
	assert.Equal(t, montyhall.Switch, p.Decide(sampleTrial))
}

func TestLoadPolicy_LabelFromGlobal(t *testing.T) {
	p, _ := loadPolicy(t, `
		label = "coin flip"
		function decide() return "stay" end
	`, 0)
	assert.Equal(t, "coin flip", p.Label())
}

func TestLoadPolicy_LabelFromFileName(t *testing.T) {
	p, _ := loadPolicy(t, `function decide() return "stay" end`, 0)
	assert.Equal(t, "script policy", p.Label())
}

func TestLoadPolicy_MissingHook(t *testing.T) {
	path := writeTempLua(t, "empty.lua", `-- no functions`)
	_, err := scripting.LoadPolicy(path, 0, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decide")
}

func TestLoadPolicy_SyntaxError(t *testing.T) {
	path := writeTempLua(t, "broken.lua", `function decide(`)
	_, err := scripting.LoadPolicy(path, 0, zap.NewNop())
	assert.Error(t, err)
}

func TestLoadPolicy_MissingFile(t *testing.T) {
	_, err := scripting.LoadPolicy(filepath.Join(t.TempDir(), "nope.lua"), 0, zap.NewNop())
	assert.Error(t, err)
}

func TestPolicy_RuntimeError_FallsBackToStay(t *testing.T) {
	p, logs := loadPolicy(t, `
		function decide()
			error("boom")
		end
	`, 0)
	assert.Equal(t, montyhall.Stay, p.Decide(sampleTrial))
	assert.Equal(t, 1, logs.FilterMessage("scripting: Lua runtime error").Len())
}

func TestPolicy_UnrecognizedDecision_FallsBackToStay(t *testing.T) {
	p, logs := loadPolicy(t, `function decide() return 42 end`, 0)
	assert.Equal(t, montyhall.Stay, p.Decide(sampleTrial))
	assert.Equal(t, 1, logs.FilterMessage("scripting: unrecognized decision").Len())
}

func TestPolicy_InstructionLimit_PerDecision(t *testing.T) {
	p, logs := loadPolicy(t, `
		function decide(first)
			if first == 0 then
				while true do end
			end
			return "switch"
		end
	`, 1000)
	assert.Equal(t, montyhall.Stay, p.Decide(montyhall.Trial{PrizeDoor: 1, FirstChoice: 0, RevealedDoor: 2}))
	assert.Equal(t, 1, logs.FilterMessage("scripting: Lua runtime error").Len())

	// A fresh budget is installed for every decision.
	for i := 0; i < 20; i++ {
		require.Equal(t, montyhall.Switch, p.Decide(sampleTrial))
	}
}

func TestPolicy_DrivesRunner(t *testing.T) {
	p, _ := loadPolicy(t, `function decide() return doors.SWITCH end`, 0)
	eng := montyhall.NewEngine(door.NewLoggedPicker(door.NewSeededSource(8), zap.NewNop()))
	scripted, err := montyhall.NewRunner(eng, zap.NewNop()).Run(p, 500)
	require.NoError(t, err)

	eng = montyhall.NewEngine(door.NewLoggedPicker(door.NewSeededSource(8), zap.NewNop()))
	builtin, err := montyhall.NewRunner(eng, zap.NewNop()).Run(montyhall.Switch, 500)
	require.NoError(t, err)

	assert.Equal(t, builtin.Wins, scripted.Wins, "always-switch script must match the built-in strategy")
}

func TestPolicy_Property_StrategyMatchesScript(t *testing.T) {
	p, _ := loadPolicy(t, `
		function decide(first, revealed)
			return (first + revealed) % 2 == 0
		end
	`, 0)
	rapid.Check(t, func(rt *rapid.T) {
		first := door.Door(rapid.IntRange(0, door.Count-1).Draw(rt, "first"))
		revealed := door.Door(rapid.IntRange(0, door.Count-1).Filter(func(d int) bool {
			return door.Door(d) != first
		}).Draw(rt, "revealed"))

		want := montyhall.Stay
		if (int(first)+int(revealed))%2 == 0 {
			want = montyhall.Switch
		}
		got := p.Decide(montyhall.Trial{PrizeDoor: first, FirstChoice: first, RevealedDoor: revealed})
		assert.Equal(rt, want, got)
	})
}
