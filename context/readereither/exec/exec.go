package exec

import (
	"context"

	RE "github.com/sourya7/go-eff/context/readereither"
	E "github.com/sourya7/go-eff/either"
	"github.com/sourya7/go-eff/exec"
	F "github.com/sourya7/go-eff/function"
	GE "github.com/sourya7/go-eff/internal/exec"
)

var (
	// Command executes a command
	// use this version if the command does not produce any side effect, i.e. if the output is uniquely determined by by the input
	// typically you'd rather use the ReaderIOEither version of the command
	Command = F.Curry3(command)
)

func command(name string, args []string, in []byte) RE.ReaderEither[exec.CommandOutput] {
	return func(ctx context.Context) E.Either[error, exec.CommandOutput] {
		return E.TryCatchError(func() (exec.CommandOutput, error) {
			return GE.Exec(ctx, name, args, in)
		})
	}
}
