package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	YAML   bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("FOAMDICT_DEBUG_TOKENS")
	d.Parse = boolEnv("FOAMDICT_DEBUG_PARSE")
	d.YAML = boolEnv("FOAMDICT_DEBUG_YAML")
	d.Eval = boolEnv("FOAMDICT_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func YAML() bool {
	return d.YAML
}
func Eval() bool {
	return d.Eval
}
