package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Lex    bool
	Parse  bool
	Config bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("SCHEMER_DEBUG_LEX")
	d.Parse = boolEnv("SCHEMER_DEBUG_PARSE")
	d.Config = boolEnv("SCHEMER_DEBUG_CONFIG")
	d.LSP = boolEnv("SCHEMER_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Config() bool {
	return d.Config
}
func LSP() bool {
	return d.LSP
}
