package file

import (
	"context"
	"fmt"

	RIO "github.com/sourya7/go-eff/context/readerio"
	R "github.com/sourya7/go-eff/context/readerioeither"
	"github.com/sourya7/go-eff/errors"
	F "github.com/sourya7/go-eff/function"
	IO "github.com/sourya7/go-eff/io"
	J "github.com/sourya7/go-eff/json"
)

type RecordType struct {
	Data string `json:"data"`
}

func getData(r RecordType) string {
	return r.Data
}

func ExampleReadFile() {

	data := F.Pipe4(
		ReadFile("./data/file.json"),
		R.ChainEitherK(J.Unmarshal[RecordType]),
		R.ChainFirstIOK(IO.Logf[RecordType]("Log: %v")),
		R.Map(getData),
		R.GetOrElse(F.Flow2(
			errors.ToString,
			RIO.Of[string],
		)),
	)

	result := data(context.Background())

	fmt.Println(result())

	// Output: Carsten
}
