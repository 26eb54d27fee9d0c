package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/fightcore/ecs/component"
	"github.com/milk9111/fightcore/logger"
)

// ScriptHitRule runs a tengo script after a base rule. The script sees the
// hit through globals and may rewrite the frame counts or ask for both
// attributions to be cancelled:
//
//	phase        "attack" or "damage"
//	attack_kind  kind of the attacking volume
//	damage_kind  kind of the struck volume
//	damage       attack damage, 0 for throws
//	air, traded  as on Hit
//	hitstop      frames, -1 when unset; writable
//	knockback    frames, -1 when unset; writable in the damage phase
//	cancel       set true to cancel
type ScriptHitRule struct {
	name     string
	base     HitRule
	compiled *tengo.Compiled
}

var scriptGlobals = map[string]any{
	"phase":       "",
	"attack_kind": "",
	"damage_kind": "",
	"damage":      0,
	"air":         false,
	"traded":      false,
	"hitstop":     -1,
	"knockback":   -1,
	"cancel":      false,
}

// NewScriptHitRule compiles src once. base defaults to StandardHitRule.
func NewScriptHitRule(name string, src []byte, base HitRule) (*ScriptHitRule, error) {
	if base == nil {
		base = StandardHitRule{}
	}
	script := tengo.NewScript(src)
	for k, v := range scriptGlobals {
		if err := script.Add(k, v); err != nil {
			return nil, fmt.Errorf("system: hit rule %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("system: hit rule %s: %w", name, err)
	}
	return &ScriptHitRule{name: name, base: base, compiled: compiled}, nil
}

func (r *ScriptHitRule) AttackUpdate(info *component.HitInfo, hit Hit) []Cancellation {
	cancels := r.base.AttackUpdate(info, hit)
	return append(cancels, r.run("attack", info, hit)...)
}

func (r *ScriptHitRule) DamageUpdate(info *component.HitInfo, hit Hit) []Cancellation {
	cancels := r.base.DamageUpdate(info, hit)
	return append(cancels, r.run("damage", info, hit)...)
}

func (r *ScriptHitRule) run(phase string, info *component.HitInfo, hit Hit) []Cancellation {
	vars := map[string]any{
		"phase":       phase,
		"attack_kind": hit.Attack.Type.Kind.String(),
		"damage_kind": hit.Damage.Type.Kind.String(),
		"damage":      hit.Attack.Type.Attack.Damage,
		"air":         hit.Air,
		"traded":      hit.Traded,
		"hitstop":     frameVar(info.Hitstop),
		"knockback":   frameVar(info.Knockback),
		"cancel":      false,
	}
	for k, v := range vars {
		if !r.compiled.IsDefined(k) {
			continue
		}
		if err := r.compiled.Set(k, v); err != nil {
			logger.L().Warn("judge: hit rule script", "script", r.name, "err", err)
			return nil
		}
	}
	if err := r.compiled.Run(); err != nil {
		logger.L().Warn("judge: hit rule script", "script", r.name, "phase", phase, "err", err)
		return nil
	}

	if r.compiled.IsDefined("hitstop") {
		info.Hitstop = frameCount(r.compiled.Get("hitstop").Int())
	}
	if phase == "damage" && r.compiled.IsDefined("knockback") {
		info.Knockback = frameCount(r.compiled.Get("knockback").Int())
	}
	if !r.compiled.IsDefined("cancel") || !r.compiled.Get("cancel").Bool() {
		return nil
	}
	return []Cancellation{
		{Target: hit.Attacker, Owner: uint64(hit.Victim)},
		{Target: hit.Victim, Owner: uint64(hit.Attacker)},
	}
}

func frameVar(c component.FrameCount) int {
	if !c.Set {
		return -1
	}
	return c.Frames
}

func frameCount(n int) component.FrameCount {
	if n < 0 {
		return component.FrameCount{}
	}
	return component.Frames(n)
}
