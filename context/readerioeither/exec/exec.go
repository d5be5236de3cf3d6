package exec

import (
	"context"

	RIOE "github.com/sourya7/go-eff/context/readerioeither"
	"github.com/sourya7/go-eff/exec"
	F "github.com/sourya7/go-eff/function"
	GE "github.com/sourya7/go-eff/internal/exec"
	IOE "github.com/sourya7/go-eff/ioeither"
)

var (
	// Command executes a cancelable command
	Command = F.Curry3(command)
)

func command(name string, args []string, in []byte) RIOE.ReaderIOEither[exec.CommandOutput] {
	return func(ctx context.Context) IOE.IOEither[error, exec.CommandOutput] {
		return IOE.TryCatchError(func() (exec.CommandOutput, error) {
			return GE.Exec(ctx, name, args, in)
		})
	}
}
