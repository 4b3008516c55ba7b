package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/milk9111/stargate/ecs/component"
)

type verb struct {
	Name string
	Run  func(c *Console)
}

type registry struct {
	verbs map[string]verb
}

func newRegistry() *registry {
	return &registry{verbs: make(map[string]verb)}
}

func (r *registry) register(v verb) error {
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		return fmt.Errorf("console registry: empty verb name")
	}
	if v.Run == nil {
		return fmt.Errorf("console registry: %q has no handler", v.Name)
	}
	if _, ok := r.verbs[v.Name]; ok {
		return fmt.Errorf("console registry: duplicate verb %q", v.Name)
	}
	r.verbs[v.Name] = v
	return nil
}

func (r *registry) resolve(name string) (verb, bool) {
	v, ok := r.verbs[name]
	return v, ok
}

func (r *registry) names() []string {
	out := make([]string, 0, len(r.verbs))
	for name := range r.verbs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func navVerb(name, message string, node component.NodeName) verb {
	return verb{Name: name, Run: func(c *Console) {
		c.Append(message, Info)
		c.navigate(node)
	}}
}

func defaultVerbs() *registry {
	r := newRegistry()
	verbs := []verb{
		{Name: "help", Run: func(c *Console) {
			for _, line := range c.text.Help {
				c.Append(line, Normal)
			}
		}},
		navVerb("projects", "Loading projects...", component.NodeProjects),
		navVerb("experience", "Loading experience...", component.NodeExperience),
		navVerb("contact", "Loading contact info...", component.NodeContact),
		navVerb("home", "Returning to home view...", component.NodeHome),
		{Name: "resume", Run: runResume},
		{Name: "clear", Run: func(c *Console) { c.Clear() }},
	}
	for _, v := range verbs {
		if err := r.register(v); err != nil {
			panic(err)
		}
	}
	return r
}

func runResume(c *Console) {
	c.Append("Initiating resume download...", Info)
	if c.handlers.ExportResume == nil {
		c.Append("Error: resume export unavailable.", Error)
		return
	}
	dst, err := c.handlers.ExportResume()
	if err != nil {
		c.Append(fmt.Sprintf("Error: resume download failed: %v", err), Error)
		return
	}
	if dst != "" {
		c.Append("Saved to "+dst, Normal)
	}
	c.Append("Resume download initiated.", Info)
}

// Verbs lists the recognised verbs.
func (c *Console) Verbs() []string {
	return c.verbs.names()
}
