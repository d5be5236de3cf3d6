package generic

import (
	"context"

	ET "github.com/sourya7/go-eff/either"
	"github.com/sourya7/go-eff/exec"
	GE "github.com/sourya7/go-eff/internal/exec"
)

// Command executes a command
func Command[GA ~func() ET.Either[error, exec.CommandOutput]](name string, args []string, in []byte) GA {
	return TryCatchError[GA](func() (exec.CommandOutput, error) {
		return GE.Exec(context.Background(), name, args, in)
	})
}
