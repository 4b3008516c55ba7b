package system

import (
	"fmt"
	"math"
	"path"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/prefabs"
)

const (
	floatPeriod    = 4 * time.Second
	floatAmplitude = 1.0
)

// NavFloatSystem drives the idle bob of the nav spheres. The offset comes
// from a tengo script per node; nodes without a working script use
// DefaultFloat.
//
// A float script sees three functions: elapsed() and delay() return seconds
// since the node spawned and the node's start delay, set_offset(y) writes
// the vertical offset.
type NavFloatSystem struct {
	scripts map[string]*floatScript
	failed  map[string]bool
}

type floatScript struct {
	compiled *tengo.Compiled
	elapsed  float64
	delay    float64
	offset   float64
}

func NewNavFloatSystem() *NavFloatSystem {
	return &NavFloatSystem{
		scripts: map[string]*floatScript{},
		failed:  map[string]bool{},
	}
}

func (s *NavFloatSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	now := ecs.Elapsed(w)
	ecs.ForEach(w, component.NavNodeComponent.Kind(), func(e ecs.Entity, n *component.NavNode) {
		age := now - n.Spawned
		rt := s.runtime(n.Script)
		if rt == nil {
			n.FloatOffset = DefaultFloat(age, n.FloatDelay)
			return
		}
		off, err := rt.eval(age, n.FloatDelay)
		if err != nil {
			fmt.Printf("navfloat: entity=%d script %q error: %v\n", e, n.Script, err)
			s.failed[scriptKey(n.Script)] = true
			delete(s.scripts, scriptKey(n.Script))
			n.FloatOffset = DefaultFloat(age, n.FloatDelay)
			return
		}
		n.FloatOffset = off
	})
}

// Reload drops the compiled copy of the script at name so the next frame
// loads it again.
func (s *NavFloatSystem) Reload(name string) {
	key := scriptKey(name)
	delete(s.scripts, key)
	delete(s.failed, key)
}

// DefaultFloat is a sine-eased rise of one unit and back every four
// seconds, starting after delay.
func DefaultFloat(age, delay time.Duration) float64 {
	if age < delay {
		return 0
	}
	phase := float64(age-delay) / float64(floatPeriod)
	return floatAmplitude * (1 - math.Cos(phase*2*math.Pi)) / 2
}

func scriptKey(name string) string {
	return path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
}

func (s *NavFloatSystem) runtime(name string) *floatScript {
	key := scriptKey(name)
	if key == "" || key == "." || s.failed[key] {
		return nil
	}
	if rt, ok := s.scripts[key]; ok {
		return rt
	}
	rt, err := loadFloatScript(key)
	if err != nil {
		fmt.Printf("navfloat: load script %q error: %v\n", key, err)
		s.failed[key] = true
		return nil
	}
	s.scripts[key] = rt
	return rt
}

// CheckFloatScript compiles the named float script without running it.
func CheckFloatScript(name string) error {
	_, err := loadFloatScript(scriptKey(name))
	return err
}

func loadFloatScript(name string) (*floatScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	rt := &floatScript{}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	_ = script.Add("elapsed", &tengo.UserFunction{Name: "elapsed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: rt.elapsed}, nil
	}})
	_ = script.Add("delay", &tengo.UserFunction{Name: "delay", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: rt.delay}, nil
	}})
	_ = script.Add("set_offset", &tengo.UserFunction{Name: "set_offset", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		v, ok := tengo.ToFloat64(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		rt.offset = v
		return tengo.TrueValue, nil
	}})

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	rt.compiled = compiled
	return rt, nil
}

func (rt *floatScript) eval(age, delay time.Duration) (float64, error) {
	rt.elapsed = age.Seconds()
	rt.delay = delay.Seconds()
	rt.offset = 0
	if err := rt.compiled.Run(); err != nil {
		return 0, err
	}
	return rt.offset, nil
}
