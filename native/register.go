//go:build !noglueruntime

package native

import "github.com/gogpu/glue"

func init() {
	if err := glue.RegisterRuntime(defaultRuntime); err != nil {
		glue.Logger().Warn("native runtime not registered", "err", err)
	}
}
