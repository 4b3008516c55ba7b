// prefabcheck validates the experience and console prefabs and compiles
// every float script, printing one line per problem.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/milk9111/stargate/ecs/system"
	"github.com/milk9111/stargate/prefabs"
)

func main() {
	configDir := flag.String("config", "prefabs", "directory checked for prefab overrides")
	flag.Parse()
	prefabs.SetDir(*configDir)

	failed := 0
	report := func(what string, err error) {
		if err == nil {
			fmt.Printf("ok   %s\n", what)
			return
		}
		fmt.Printf("FAIL %s: %v\n", what, err)
		failed++
	}

	spec, err := prefabs.LoadExperienceSpec()
	report(prefabs.ExperienceFile, err)
	_, err = prefabs.LoadConsoleSpec()
	report(prefabs.ConsoleFile, err)

	scripts := map[string]bool{}
	if spec != nil && spec.Nodes.Script != "" {
		scripts[path.Base(spec.Nodes.Script)] = true
	}
	_ = fs.WalkDir(prefabs.ScriptsFS, "scripts", func(p string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() && prefabs.IsScriptFile(p) {
			scripts[path.Base(p)] = true
		}
		return nil
	})
	for name := range scripts {
		report("scripts/"+name, system.CheckFloatScript(name))
	}

	if failed > 0 {
		os.Exit(1)
	}
}
